package core

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// AnchorLayout is the wire format for anchor instants.
	AnchorLayout = "2006-01-02 15:04:05"
	// OperationLayout is the day-first timestamp format used by the source
	// spreadsheets.
	OperationLayout = "02.01.2006 15:04:05"
	// DayLayout formats dates in report output.
	DayLayout = "02.01.2006"
)

// Transaction is one bank operation as loaded from a source.
// Amount is the signed payment amount: negative values are debits.
type Transaction struct {
	Timestamp   time.Time
	Card        string // masked card number, "" when the source has none
	Category    string
	Description string
	Amount      decimal.Decimal
	Cashback    decimal.Decimal
}

// IsDebit reports whether money left the account.
func (t Transaction) IsDebit() bool {
	return t.Amount.IsNegative()
}

// FormatError reports a malformed anchor date string.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return "invalid date format, expected YYYY-MM-DD HH:MM:SS"
}

// ParseAnchor parses an anchor instant in AnchorLayout. An empty string
// defaults to the current time.
func ParseAnchor(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(AnchorLayout, s)
	if err != nil {
		return time.Time{}, &FormatError{Input: s}
	}
	return t, nil
}
