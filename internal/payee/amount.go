package payee

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches monetary tokens: optional sign, optional dollar
// symbol, an integer part that is either a plain digit run or grouped with
// thousands separators, and a mandatory two-digit fraction.
// Examples: -25.00, 1500.00, $1,234.56
var amountPattern = regexp.MustCompile(`[-+]?\$?\d+(?:,\d{3})*\.\d{2}`)

// Amounts returns all monetary tokens in the line, left to right.
func Amounts(line string) []string {
	return amountPattern.FindAllString(line, -1)
}

// LastAmount returns the rightmost monetary token in the line, or "" when
// the line contains none. Trailing totals beat earlier embedded figures, so
// the last match is the one callers want.
func LastAmount(line string) string {
	matches := amountPattern.FindAllString(line, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

// StripAmounts removes every monetary token from the line.
func StripAmounts(line string) string {
	return amountPattern.ReplaceAllString(line, "")
}

// NormalizeAmount converts a matched token into the stored decimal string:
// separators and currency symbols stripped, sign preserved, always two
// fractional digits ("$1,500.00" -> "1500.00").
func NormalizeAmount(token string) string {
	s := strings.NewReplacer(",", "", "$", "", "+", "").Replace(token)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.StringFixed(2)
}
