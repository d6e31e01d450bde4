package payee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips amounts", "Island Vibes Lounge -25.00", "Island Vibes Lounge"},
		{"strips id labels", "Acme Corp Ref ID: 8AB123X", "Acme Corp"},
		{"strips individual id", "Individual ID: 99X Acme", "Acme"},
		{"drops noise words", "General Acme Store Debit", "Acme Store"},
		{"all noise collapses", "PayPal Balance USD", ""},
		{"lone id label collapses", "ID: 8AB123", ""},
		{"trims separators", "| Acme Store, ", "Acme Store"},
		{"normalizes whitespace", "Acme   Payroll    Services", "Acme Payroll Services"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"Island Vibes Lounge -25.00",
		"General Acme Store Debit",
		"Acme - PayPal",
		"| Acme Store, ",
		"PayPal Balance USD",
		"Direct Deposit: ACME PAYROLL SERVICES LLC",
		"",
	}

	for _, input := range inputs {
		once := Clean(input)
		assert.Equal(t, once, Clean(once), "clean(clean(%q)) differs from clean(%q)", input, input)
	}
}
