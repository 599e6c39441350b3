package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finview/internal/core"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "finview.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	in := []core.Transaction{
		{
			Timestamp:   time.Date(2021, 12, 30, 16, 44, 0, 0, time.UTC),
			Card:        "*7197",
			Category:    "Groceries",
			Description: "Local store",
			Amount:      decimal.RequireFromString("-160.89"),
			Cashback:    decimal.Zero,
		},
		{
			Timestamp:   time.Date(2021, 12, 3, 22, 24, 47, 0, time.UTC),
			Card:        "*5091",
			Category:    "Utilities",
			Description: "Rent",
			Amount:      decimal.RequireFromString("-496.51"),
			Cashback:    decimal.RequireFromString("4.97"),
		},
	}

	n, err := repo.WriteTransactions(ctx, in)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if n != 2 {
		t.Fatalf("got %d written, want 2", n)
	}

	out, err := repo.ReadTransactions(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d rows, want 2", len(out))
	}
	// Rows come back in insertion order with amounts intact.
	if !out[0].Timestamp.Equal(in[0].Timestamp) || out[0].Card != "*7197" {
		t.Errorf("row 0: %+v", out[0])
	}
	if out[0].Amount.String() != "-160.89" {
		t.Errorf("row 0 amount: got %s", out[0].Amount)
	}
	if out[1].Cashback.String() != "4.97" {
		t.Errorf("row 1 cashback: got %s", out[1].Cashback)
	}
}

func TestSQLiteRepository_EmptyRead(t *testing.T) {
	repo := newTestRepository(t)

	out, err := repo.ReadTransactions(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("got %v, want empty slice", out)
	}
}

func TestSQLiteRepository_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finview.db")

	first, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	first.Close()

	second, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	second.Close()
}
