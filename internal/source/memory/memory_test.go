package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"finview/internal/core"
)

func TestStore(t *testing.T) {
	seed := []core.Transaction{
		{Card: "*7197", Amount: decimal.RequireFromString("-160.89")},
		{Card: "*5091", Amount: decimal.RequireFromString("-496.51")},
	}
	s := New(seed)

	got, err := s.ReadTransactions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Card != "*7197" {
		t.Fatalf("unexpected rows: %v", got)
	}

	// The returned slice is a copy; mutating it must not touch the store.
	got[0].Card = "mutated"
	again, err := s.ReadTransactions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again[0].Card != "*7197" {
		t.Fatalf("store mutated through returned slice: %v", again)
	}

	n, err := s.WriteTransactions(context.Background(), []core.Transaction{
		{Card: "*0001", Amount: decimal.RequireFromString("-1.00")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("got %d written, want 1", n)
	}
	all, err := s.ReadTransactions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 || all[2].Card != "*0001" {
		t.Fatalf("append order broken: %v", all)
	}
}
