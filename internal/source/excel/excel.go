// Package excel loads transactions from an xlsx workbook.
package excel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"finview/internal/core"
	"finview/internal/source"
)

// Source reads one workbook from disk per request so that each report sees
// a fresh copy of the file.
type Source struct {
	path  string
	sheet string
}

var _ source.TransactionReader = (*Source)(nil)

// New creates a loader for the workbook at path. An empty sheet name
// selects the workbook's first sheet.
func New(path, sheet string) *Source {
	return &Source{path: path, sheet: sheet}
}

// ReadTransactions implements source.TransactionReader. Rows that fail to
// parse are logged and skipped rather than aborting the whole load.
func (s *Source) ReadTransactions(ctx context.Context) ([]core.Transaction, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []core.Transaction{}, nil
	}

	cols, err := source.MapHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	out := make([]core.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		txn, err := source.ParseRow(cols, row)
		if err != nil {
			slog.WarnContext(ctx, "Skipping unparseable row", "sheet", sheet, "row", i+2, "error", err)
			continue
		}
		out = append(out, txn)
	}
	return out, nil
}
