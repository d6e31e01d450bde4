package payee

import (
	"regexp"
	"strings"
	"unicode"
)

// Unknown is returned when no plausible payee can be recovered from a
// description.
const Unknown = "Unknown"

// payeePrefixes are labels whose remainder names the payee directly. The
// order is a priority ranking and is load-bearing: the first prefix found
// anywhere in the description wins, bypassing chunk scoring entirely.
var payeePrefixes = []string{
	"Transaction:",
	"Direct Deposit:",
	"PreApproved Payment Bill User Payment:",
	"Payment to:",
	"Payment from:",
}

// chunkSplitPattern breaks a description into candidate payee chunks on
// wide whitespace runs and separator glyphs.
var chunkSplitPattern = regexp.MustCompile(`\s{2,}|[|•]`)

// locationPatterns boost chunks that carry a "City, ST" or "ST 12345"
// shape — merchant descriptors often end with one.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`),
	regexp.MustCompile(`\b[A-Z]{2}\s*\d{5}\b`),
}

// merchantPatterns boost chunks that look like merchant identifiers:
// adjacent capitalized tokens, invoice references, "#1234" references.
var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]+\s+[A-Z]+`),
	regexp.MustCompile(`\bI-n\d+\b`),
	regexp.MustCompile(`\b#\d+\b`),
}

// Extract returns the best-guess merchant name for a transaction
// description. It never returns an empty string: when nothing plausible
// survives cleaning it returns Unknown.
func Extract(description string) string {
	if strings.TrimSpace(description) == "" {
		return Unknown
	}

	if p := extractAfterPrefix(description); p != "" {
		return p
	}
	return extractByScore(description)
}

// extractAfterPrefix recovers the payee from text following a known
// transaction-type label, or "" when no prefix yields a usable name.
func extractAfterPrefix(text string) string {
	lower := strings.ToLower(text)
	for _, prefix := range payeePrefixes {
		idx := strings.Index(lower, strings.ToLower(prefix))
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(text[idx+len(prefix):])
		if cleaned := Clean(rest); cleaned != "" {
			return cleaned
		}
	}
	return ""
}

// extractByScore splits the description into chunks, scores each cleaned
// chunk and returns the winner. Ties go to the earliest chunk in the
// description. When nothing scores above zero, the cleaned description
// itself (capped at 80 characters) is the fallback.
func extractByScore(description string) string {
	var (
		best      string
		bestScore int
	)
	for _, chunk := range chunkSplitPattern.Split(description, -1) {
		chunk = Clean(chunk)
		if chunk == "" {
			continue
		}
		if score := scoreChunk(chunk); score > bestScore {
			bestScore = score
			best = chunk
		}
	}
	if best != "" {
		return best
	}

	if cleaned := Clean(description); cleaned != "" {
		return truncate(cleaned, 80)
	}
	return Unknown
}

// scoreChunk rates how much a cleaned chunk looks like a merchant name.
// There is no lookup table; only shape heuristics — length, capitalization,
// location suffixes, reference tokens and noise-word density.
func scoreChunk(chunk string) int {
	runes := []rune(chunk)
	if len(runes) < 3 {
		return 0
	}

	score := 0
	switch {
	case len(runes) > 10:
		score += 5
	case len(runes) > 5:
		score += 2
	}

	if unicode.IsUpper(runes[0]) {
		score += 3
	}

	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if upper >= 3 {
		score += 4
	}

	for _, p := range locationPatterns {
		if p.MatchString(chunk) {
			score += 6
			break
		}
	}
	for _, p := range merchantPatterns {
		if p.MatchString(chunk) {
			score += 3
			break
		}
	}

	for _, w := range strings.Fields(strings.ToLower(chunk)) {
		if noiseKeywords[w] {
			score -= 2
		}
	}
	return score
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
