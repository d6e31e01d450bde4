package api

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/insightdelivered/paypal-statement-converter/internal/extractor"
	"github.com/insightdelivered/paypal-statement-converter/internal/models"
	"github.com/insightdelivered/paypal-statement-converter/internal/parser"
	"github.com/insightdelivered/paypal-statement-converter/internal/payee"
	"github.com/insightdelivered/paypal-statement-converter/internal/writer"
)

// TransactionView is a transaction plus its computed clean payee, for the
// JSON response.
type TransactionView struct {
	models.Transaction
	CleanPayee string `json:"cleanPayee"`
}

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success      bool              `json:"success"`
	Error        string            `json:"error,omitempty"`
	Transactions []TransactionView `json:"transactions"`
	CSV          string            `json:"csv,omitempty"`
	Count        int               `json:"count"`
	TotalCredit  string            `json:"totalCredit"`
	TotalDebit   string            `json:"totalDebit"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20,
	})
	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)
	return app
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

// HandleConvert accepts a multipart PDF upload, parses the statement and
// returns the transactions together with the rendered CSV text.
func HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
	}

	tmpFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to create temp file.")
	}
	defer os.Remove(tmpFile.Name())
	tmpFile.Close()

	if err := c.SaveFile(fileHeader, tmpFile.Name()); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to save uploaded file.")
	}

	pages, err := extractor.ExtractText(tmpFile.Name())
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("PDF extraction failed: %v", err))
	}

	txns := parser.Parse(pages)

	var csvBuf bytes.Buffer
	w := &writer.CSVWriter{}
	if err := w.Write(&csvBuf, txns); err != nil {
		return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	views := make([]TransactionView, 0, len(txns))
	totalCredit := decimal.Zero
	totalDebit := decimal.Zero
	for _, txn := range txns {
		views = append(views, TransactionView{
			Transaction: txn,
			CleanPayee:  payee.Extract(txn.Description),
		})
		amt, err := decimal.NewFromString(txn.Amount)
		if err != nil {
			continue
		}
		if amt.IsNegative() {
			totalDebit = totalDebit.Add(amt.Neg())
		} else {
			totalCredit = totalCredit.Add(amt)
		}
	}

	return c.JSON(ConvertResponse{
		Success:      true,
		Transactions: views,
		CSV:          csvBuf.String(),
		Count:        len(views),
		TotalCredit:  totalCredit.StringFixed(2),
		TotalDebit:   totalDebit.StringFixed(2),
	})
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		Error:        msg,
		Transactions: []TransactionView{},
		TotalCredit:  "0.00",
		TotalDebit:   "0.00",
	})
}
