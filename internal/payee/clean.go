package payee

import (
	"regexp"
	"strings"
)

// noiseKeywords are generic statement vocabulary rather than anything that
// identifies a merchant. Matched case-insensitively, whole word only.
var noiseKeywords = map[string]bool{
	"paypal":              true,
	"balance":             true,
	"usd":                 true,
	"id:":                 true,
	"ref id:":             true,
	"individual id:":      true,
	"general":             true,
	"mastercard":          true,
	"debit":               true,
	"preapproved payment": true,
	"bill user payment":   true,
}

// idLabelPattern matches "ID:", "Ref ID:" and "Individual ID:" labels
// together with the value that follows them.
var idLabelPattern = regexp.MustCompile(`(?i)\b(?:ID|Ref ID|Individual ID):\s*\S+`)

// Clean strips monetary tokens, ID-label tokens and noise keywords from a
// text fragment and normalizes whitespace. A fragment made entirely of noise
// collapses to the empty string. Clean is idempotent: cleaning an
// already-clean fragment returns it unchanged.
func Clean(text string) string {
	cleaned := amountPattern.ReplaceAllString(text, "")
	cleaned = idLabelPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.Trim(cleaned, " |,.-•")

	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}

	allNoise := true
	for _, w := range words {
		if !noiseKeywords[strings.ToLower(w)] {
			allNoise = false
			break
		}
	}
	if allNoise {
		return ""
	}

	kept := make([]string, 0, len(words))
	for _, w := range words {
		if !noiseKeywords[strings.ToLower(w)] {
			kept = append(kept, w)
		}
	}
	// Re-trim: dropping an edge word can expose separator characters.
	return strings.Trim(strings.Join(kept, " "), " |,.-•")
}
