package core

import (
	"errors"
	"testing"
	"time"
)

func TestParseAnchor(t *testing.T) {
	t.Run("valid anchor", func(t *testing.T) {
		got, err := ParseAnchor("2021-12-31 16:44:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2021, 12, 31, 16, 44, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("malformed anchor", func(t *testing.T) {
		_, err := ParseAnchor("2023-10")
		if err == nil {
			t.Fatal("expected error for malformed anchor")
		}
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("expected *FormatError, got %T", err)
		}
		if formatErr.Error() != "invalid date format, expected YYYY-MM-DD HH:MM:SS" {
			t.Fatalf("unexpected message: %q", formatErr.Error())
		}
	})

	t.Run("empty anchor defaults to now", func(t *testing.T) {
		before := time.Now().UTC()
		got, err := ParseAnchor("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after := time.Now().UTC()
		if got.Before(before) || got.After(after) {
			t.Fatalf("default anchor %v not between %v and %v", got, before, after)
		}
	})
}
