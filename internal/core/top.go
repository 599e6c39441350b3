package core

import "sort"

// DefaultTopLimit is the number of rows the dashboard shows.
const DefaultTopLimit = 5

// TopTransaction is one entry of the top debit list.
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// TopTransactions returns up to limit debit rows ordered by absolute payment
// amount descending. The sort is stable: rows with equal amounts keep their
// input order. Dates are formatted as DD.MM.YYYY.
func TopTransactions(txns []Transaction, limit int) []TopTransaction {
	debits := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.IsDebit() {
			debits = append(debits, t)
		}
	}
	sort.SliceStable(debits, func(i, j int) bool {
		return debits[i].Amount.Abs().GreaterThan(debits[j].Amount.Abs())
	})
	if len(debits) > limit {
		debits = debits[:limit]
	}

	out := make([]TopTransaction, 0, len(debits))
	for _, t := range debits {
		out = append(out, TopTransaction{
			Date:        t.Timestamp.Format(DayLayout),
			Amount:      t.Amount.Abs().InexactFloat64(),
			Category:    t.Category,
			Description: t.Description,
		})
	}
	return out
}
