package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/insightdelivered/paypal-statement-converter/internal/models"
	"github.com/insightdelivered/paypal-statement-converter/internal/payee"
)

// Header holds the output column literals, in row order.
var Header = []string{
	"Date",
	"Full Description",
	"Currency",
	"Amount",
	"Fees",
	"Total",
	"Clean Transaction/Payee",
}

// CSVWriter serializes transactions as a UTF-8 comma-delimited table: one
// header row, then one row per transaction in encounter order. The clean
// payee column is computed from the description at write time so it can
// never go stale.
type CSVWriter struct{}

// WriteToFile writes the table to a file at the given path.
func (w *CSVWriter) WriteToFile(path string, txns []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, txns)
}

// Write writes the table to the given writer.
func (w *CSVWriter) Write(out io.Writer, txns []models.Transaction) error {
	writer := csv.NewWriter(out)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range txns {
		row := []string{
			txn.Date,
			txn.Description,
			txn.Currency,
			txn.Amount,
			txn.Fees,
			txn.Total,
			payee.Extract(txn.Description),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
