package parser

import (
	"regexp"
	"strings"

	"github.com/insightdelivered/paypal-statement-converter/internal/models"
	"github.com/insightdelivered/paypal-statement-converter/internal/payee"
)

// datePattern anchors a transaction: one-or-two-digit month and day with a
// four-digit year, at the start of the line. The matched substring is kept
// verbatim as the transaction date; it is never reformatted or validated
// for calendar correctness.
var datePattern = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4})`)

// leadingBulletPattern strips a single bullet or dash marker from a
// continuation line.
var leadingBulletPattern = regexp.MustCompile(`^[-•]\s*`)

// Parse walks extracted page text in order and assembles transactions.
//
// The machine has two states: no transaction open, or accumulating into the
// current one. A date-anchored line closes any open transaction and opens a
// new one; every other non-junk line extends the open transaction. Lines
// seen before the first anchor are dropped. The first monetary token
// discovered wins; later ones are ignored — except that within a single
// line the rightmost token is taken, favoring a trailing total over an
// embedded fee. An open transaction is finalized at end of input, so a
// transaction is never emitted without a date.
func Parse(pages []string) []models.Transaction {
	var (
		transactions []models.Transaction
		current      *models.Transaction
		descParts    []string
		amountSet    bool
	)

	finalize := func() {
		if current == nil {
			return
		}
		current.Description = joinFragments(descParts)
		transactions = append(transactions, *current)
	}

	setAmount := func(line string) {
		if amountSet {
			return
		}
		if amt := payee.LastAmount(line); amt != "" {
			current.Amount = payee.NormalizeAmount(amt)
			current.Total = current.Amount
			amountSet = true
		}
	}

	for _, page := range pages {
		for _, raw := range strings.Split(page, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" || IsJunk(line) {
				continue
			}

			if m := datePattern.FindStringSubmatch(line); m != nil {
				finalize()
				txn := models.New(m[1])
				current = &txn
				descParts = nil
				amountSet = false

				rest := strings.TrimSpace(line[len(m[0]):])
				if rest != "" {
					descParts = append(descParts, rest)
					setAmount(rest)
				}
				continue
			}

			if current == nil {
				// pre-anchor noise
				continue
			}

			setAmount(line)

			text := strings.TrimSpace(payee.StripAmounts(line))
			text = leadingBulletPattern.ReplaceAllString(text, "")
			if len(text) > 2 {
				descParts = append(descParts, text)
			}
		}
	}

	finalize()
	return transactions
}

// joinFragments joins description fragments with single spaces and
// collapses internal whitespace runs.
func joinFragments(parts []string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
