package payee

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_NeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"0.00",
		"ID: 8AB123",
		"PayPal Balance USD",
		"Payment to: Acme Corp",
		"• | •",
		"completely ordinary text",
	}

	for _, input := range inputs {
		assert.NotEmpty(t, Extract(input), "Extract(%q) returned an empty payee", input)
	}
}

func TestExtract_UnknownFallback(t *testing.T) {
	assert.Equal(t, Unknown, Extract(""))
	assert.Equal(t, Unknown, Extract("   "))
	assert.Equal(t, Unknown, Extract("ID: 8AB123"))
	assert.Equal(t, Unknown, Extract("PayPal Balance USD"))
}

func TestExtract_Prefixes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"payment to", "Payment to: Acme Corp", "Acme Corp"},
		{"payment from", "Payment from: Jane Smith", "Jane Smith"},
		{"direct deposit", "Direct Deposit: ACME PAYROLL SERVICES LLC", "ACME PAYROLL SERVICES LLC"},
		{"case insensitive", "payment to: corner bakery", "corner bakery"},
		{"prefix mid-text", "Completed Payment to: Acme Corp", "Acme Corp"},
		{"prefix strips amount", "Payment to: Island Vibes Lounge -25.00", "Island Vibes Lounge"},
		{"bill payment label", "PreApproved Payment Bill User Payment: Stream Service Co", "Stream Service Co"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.input))
		})
	}
}

// The prefix path wins unconditionally, even when another fragment of the
// description would outscore the prefixed payee.
func TestExtract_PrefixBeatsScoring(t *testing.T) {
	desc := "RANDOM MERCHANT LLC Portland, OR 97205  Payment to: Acme Corp"
	assert.Equal(t, "Acme Corp", Extract(desc))
}

func TestExtract_ChunkScoring(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"picks capitalized merchant", "xyz  ISLAND VIBES LOUNGE  ab", "ISLAND VIBES LOUNGE"},
		{"location boost", "misc note here  Corner Cafe Portland, OR", "Corner Cafe Portland, OR"},
		{"noise chunk excluded", "PayPal Balance USD  Acme Store", "Acme Store"},
		{"separator glyph split", "debit entry|BLUE BOTTLE COFFEE", "BLUE BOTTLE COFFEE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extract(tt.input))
		})
	}
}

// Equal scores resolve to the chunk that occurs earliest in the description.
func TestExtract_TieBreakEarliest(t *testing.T) {
	assert.Equal(t, "Alpha One", Extract("Alpha One  Bravo Two"))
}

func TestExtract_FallbackTruncates(t *testing.T) {
	// Short lowercase chunks all score zero, so the cleaned full description
	// is returned, capped at 80 characters.
	assert.Equal(t, "abc def", Extract("abc  def"))

	long := strings.TrimSpace(strings.Repeat("abc  ", 30))
	got := Extract(long)
	assert.Len(t, []rune(got), 80)
}
