// Package storage persists transactions in SQLite. Amounts are stored as
// decimal strings so values round-trip exactly.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"finview/internal/core"
	"finview/internal/source"
)

type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ source.TransactionReader = (*SQLiteRepository)(nil)
	_ source.TransactionWriter = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadTransactions implements source.TransactionReader. Rows come back in
// insertion order, which mirrors the order of the imported spreadsheet.
func (r *SQLiteRepository) ReadTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT occurred_at, card_number, category, description, payment_amount, cashback
		FROM transactions
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var occurredAt, card, category, description, amountStr, cashbackStr string
		if err := rows.Scan(&occurredAt, &card, &category, &description, &amountStr, &cashbackStr); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parse stored timestamp %q: %w", occurredAt, err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored amount %q: %w", amountStr, err)
		}
		cashback, err := decimal.NewFromString(cashbackStr)
		if err != nil {
			return nil, fmt.Errorf("parse stored cashback %q: %w", cashbackStr, err)
		}
		out = append(out, core.Transaction{
			Timestamp:   ts,
			Card:        card,
			Category:    category,
			Description: description,
			Amount:      amount,
			Cashback:    cashback,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	if out == nil {
		out = []core.Transaction{}
	}
	return out, nil
}

// WriteTransactions implements source.TransactionWriter. All rows are
// inserted in one database transaction.
func (r *SQLiteRepository) WriteTransactions(ctx context.Context, txns []core.Transaction) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (occurred_at, card_number, category, description, payment_amount, cashback)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txns {
		_, err := stmt.ExecContext(ctx,
			t.Timestamp.Format(time.RFC3339),
			t.Card,
			t.Category,
			t.Description,
			t.Amount.String(),
			t.Cashback.String(),
		)
		if err != nil {
			return 0, fmt.Errorf("insert transaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	slog.InfoContext(ctx, "Transactions saved to SQLite", "count", len(txns))
	return len(txns), nil
}
