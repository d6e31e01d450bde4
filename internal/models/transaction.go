package models

// DefaultCurrency is used for every transaction; PayPal statements do not
// carry a per-line currency column.
const DefaultCurrency = "USD"

const zeroAmount = "0.00"

// Transaction represents a single statement line item. Amount, Fees and
// Total are decimal strings with two fractional digits — money is never
// held as a float.
type Transaction struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Amount      string `json:"amount"`
	Fees        string `json:"fees"`
	Total       string `json:"total"`
}

// New returns a transaction anchored at the given date with the default
// currency and zeroed amounts.
func New(date string) Transaction {
	return Transaction{
		Date:     date,
		Currency: DefaultCurrency,
		Amount:   zeroAmount,
		Fees:     zeroAmount,
		Total:    zeroAmount,
	}
}
