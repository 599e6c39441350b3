package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"finview/internal/core"
)

// Column names expected in spreadsheet sources. Column order is free; the
// header row decides the mapping.
const (
	ColTimestamp   = "timestamp"
	ColCard        = "card_number"
	ColCategory    = "category"
	ColDescription = "description"
	ColAmount      = "payment_amount"
	ColCashback    = "cashback"
)

// MapHeader builds a column index from a header row. Matching is
// case-insensitive. Card and cashback columns are optional; the rest are
// required.
func MapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{ColTimestamp, ColCategory, ColDescription, ColAmount} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q in header %v", required, header)
		}
	}
	return cols, nil
}

// ParseRow converts one textual spreadsheet row into a Transaction using
// the column index from MapHeader. An absent card number maps to the empty
// string, an absent or malformed cashback to zero.
func ParseRow(cols map[string]int, row []string) (core.Transaction, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ts, err := time.Parse(core.OperationLayout, get(ColTimestamp))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse timestamp %q: %w", get(ColTimestamp), err)
	}
	amount, err := decimal.NewFromString(normalizeNumber(get(ColAmount)))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse payment amount %q: %w", get(ColAmount), err)
	}
	cashback := decimal.Zero
	if v := get(ColCashback); v != "" {
		if cb, err := decimal.NewFromString(normalizeNumber(v)); err == nil {
			cashback = cb
		}
	}

	return core.Transaction{
		Timestamp:   ts,
		Card:        get(ColCard),
		Category:    get(ColCategory),
		Description: get(ColDescription),
		Amount:      amount,
		Cashback:    cashback,
	}, nil
}

// normalizeNumber accepts decimal commas from locale-formatted exports.
func normalizeNumber(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}
