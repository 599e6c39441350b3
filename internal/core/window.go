package core

import "time"

// WindowMode selects how the report window start is derived from the anchor.
type WindowMode string

const (
	// MonthToDate starts at the first day of the anchor's month, 00:00:00.
	MonthToDate WindowMode = "month-to-date"
	// Trailing90Days starts 90 days before the anchor.
	Trailing90Days WindowMode = "trailing-90-days"
)

// WindowStart returns the inclusive lower bound of the window ending at
// anchor.
func WindowStart(anchor time.Time, mode WindowMode) time.Time {
	switch mode {
	case Trailing90Days:
		return anchor.Add(-90 * 24 * time.Hour)
	default:
		return time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	}
}

// FilterWindow returns the rows whose timestamp lies in the closed interval
// [WindowStart(anchor, mode), anchor], preserving input order.
func FilterWindow(txns []Transaction, anchor time.Time, mode WindowMode) []Transaction {
	start := WindowStart(anchor, mode)
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Timestamp.Before(start) || t.Timestamp.After(anchor) {
			continue
		}
		out = append(out, t)
	}
	return out
}
