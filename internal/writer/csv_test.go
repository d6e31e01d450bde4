package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/paypal-statement-converter/internal/models"
)

func TestCSVWriter_Write(t *testing.T) {
	txns := []models.Transaction{
		{
			Date:        "12/01/2025",
			Description: "Payment to: Island Vibes Lounge -25.00",
			Currency:    "USD",
			Amount:      "-25.00",
			Fees:        "0.00",
			Total:       "-25.00",
		},
		{
			Date:        "12/03/2025",
			Description: "Direct Deposit: ACME PAYROLL SERVICES LLC",
			Currency:    "USD",
			Amount:      "1500.00",
			Fees:        "0.00",
			Total:       "1500.00",
		},
	}

	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, txns))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Date,Full Description,Currency,Amount,Fees,Total,Clean Transaction/Payee", lines[0])
	assert.Equal(t, "12/01/2025,Payment to: Island Vibes Lounge -25.00,USD,-25.00,0.00,-25.00,Island Vibes Lounge", lines[1])
	assert.Equal(t, "12/03/2025,Direct Deposit: ACME PAYROLL SERVICES LLC,USD,1500.00,0.00,1500.00,ACME PAYROLL SERVICES LLC", lines[2])
}

func TestCSVWriter_UnknownPayee(t *testing.T) {
	txns := []models.Transaction{
		{Date: "12/05/2025", Description: "", Currency: "USD", Amount: "0.00", Fees: "0.00", Total: "0.00"},
	}

	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, txns))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], ",Unknown"), "empty description must render the Unknown sentinel: %q", lines[1])
}

func TestCSVWriter_HeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, strings.Join(Header, ","), lines[0])
}
