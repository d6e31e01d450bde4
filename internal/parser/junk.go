package parser

import "regexp"

// junkRules match statement boilerplate: balance summaries, ID labels,
// category/tender labels, empty prefix lines, lone bullets and blanks.
// Rules are evaluated in order, first match discards the line; they must
// run before date-anchor detection so boilerplate never opens a spurious
// transaction.
var junkRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)PayPal Balance`),
	regexp.MustCompile(`(?i)ID:`),
	regexp.MustCompile(`(?i)Individual ID:`),
	regexp.MustCompile(`(?i)Ref ID:`),
	regexp.MustCompile(`(?i)^General PayPal Debit Mastercard\s*$`),
	regexp.MustCompile(`(?i)^PreApproved Payment Bill User Payment:\s*$`),
	regexp.MustCompile(`(?i)^General\s*$`),
	regexp.MustCompile(`(?i)^Transaction:?\s*$`),
	regexp.MustCompile(`(?i)^Direct Deposit:?\s*$`),
	regexp.MustCompile(`^[-•]\s*$`),
	regexp.MustCompile(`^\s*$`),
}

// IsJunk reports whether a line is boilerplate to discard outright.
func IsJunk(line string) bool {
	for _, rule := range junkRules {
		if rule.MatchString(line) {
			return true
		}
	}
	return false
}
