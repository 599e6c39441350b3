package core

import (
	"log/slog"
	"regexp"
)

// Search returns the rows whose category or description matches the
// pattern, case-insensitively, in input order. The pattern is interpreted
// as a regular expression, so a plain substring works unchanged and an
// empty pattern matches every row. An invalid pattern is logged and yields
// no matches.
func Search(txns []Transaction, pattern string) []Transaction {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		slog.Warn("Invalid search pattern", "pattern", pattern, "error", err)
		return []Transaction{}
	}

	out := make([]Transaction, 0)
	for _, t := range txns {
		if re.MatchString(t.Category) || re.MatchString(t.Description) {
			out = append(out, t)
		}
	}
	return out
}
