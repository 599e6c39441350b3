package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTopTransactions(t *testing.T) {
	t.Run("top five debits sorted by absolute amount", func(t *testing.T) {
		txns := []Transaction{
			txnAt(t, "2021-12-30 16:44:00", "", "-160.89"),
			txnAt(t, "2021-12-25 19:03:48", "", "-309.0"),
			txnAt(t, "2021-12-15 22:24:47", "", "-496.51"),
			txnAt(t, "2021-12-10 14:43:37", "", "-105.84"),
			txnAt(t, "2021-12-05 18:20:33", "", "-200.50"),
			txnAt(t, "2021-12-02 09:00:00", "", "-50.00"),
		}
		got := TopTransactions(txns, DefaultTopLimit)
		if len(got) != 5 {
			t.Fatalf("got %d rows, want 5", len(got))
		}
		wantDates := []string{"15.12.2021", "25.12.2021", "05.12.2021", "30.12.2021", "10.12.2021"}
		wantAmounts := []float64{496.51, 309.0, 200.5, 160.89, 105.84}
		for i := range wantDates {
			if got[i].Date != wantDates[i] {
				t.Errorf("row %d date: got %q, want %q", i, got[i].Date, wantDates[i])
			}
			if got[i].Amount != wantAmounts[i] {
				t.Errorf("row %d amount: got %v, want %v", i, got[i].Amount, wantAmounts[i])
			}
		}
		for i := 1; i < len(got); i++ {
			if got[i].Amount > got[i-1].Amount {
				t.Fatalf("rows not sorted descending at %d: %v", i, got)
			}
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		txns := []Transaction{
			{Timestamp: mustTime(t, "2021-12-01 10:00:00"), Description: "first", Amount: decimal.RequireFromString("-100.00")},
			{Timestamp: mustTime(t, "2021-12-02 10:00:00"), Description: "second", Amount: decimal.RequireFromString("-100.00")},
			{Timestamp: mustTime(t, "2021-12-03 10:00:00"), Description: "third", Amount: decimal.RequireFromString("-100.00")},
		}
		got := TopTransactions(txns, DefaultTopLimit)
		if len(got) != 3 {
			t.Fatalf("got %d rows, want 3", len(got))
		}
		for i, want := range []string{"first", "second", "third"} {
			if got[i].Description != want {
				t.Errorf("row %d: got %q, want %q", i, got[i].Description, want)
			}
		}
	})

	t.Run("fewer rows than the limit", func(t *testing.T) {
		txns := []Transaction{
			txnAt(t, "2021-12-01 10:00:00", "", "-10.00"),
			txnAt(t, "2021-12-02 10:00:00", "", "-20.00"),
		}
		if got := TopTransactions(txns, DefaultTopLimit); len(got) != 2 {
			t.Fatalf("got %d rows, want 2", len(got))
		}
	})

	t.Run("credits are excluded", func(t *testing.T) {
		txns := []Transaction{
			txnAt(t, "2021-12-01 10:00:00", "", "999.99"),
			txnAt(t, "2021-12-02 10:00:00", "", "-20.00"),
		}
		got := TopTransactions(txns, DefaultTopLimit)
		if len(got) != 1 || got[0].Amount != 20.0 {
			t.Fatalf("got %v, want single 20.00 row", got)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := TopTransactions(nil, DefaultTopLimit); len(got) != 0 {
			t.Fatalf("got %v, want empty", got)
		}
	})
}
