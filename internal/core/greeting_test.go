package core

import (
	"testing"
	"time"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		anchor string
		want   string
	}{
		{"2023-10-01 07:15:00", "Good morning"},
		{"2023-10-01 13:30:00", "Good afternoon"},
		{"2023-10-01 19:45:00", "Good evening"},
		{"2023-10-01 02:20:00", "Good night"},
		// Interval boundaries are half-open.
		{"2023-10-01 06:00:00", "Good morning"},
		{"2023-10-01 12:00:00", "Good afternoon"},
		{"2023-10-01 18:00:00", "Good evening"},
		{"2023-10-01 00:00:00", "Good night"},
		{"2023-10-01 05:59:59", "Good night"},
		{"2023-10-01 23:59:58", "Good evening"},
	}
	for _, tt := range tests {
		t.Run(tt.anchor, func(t *testing.T) {
			at, err := time.Parse(AnchorLayout, tt.anchor)
			if err != nil {
				t.Fatalf("parse anchor: %v", err)
			}
			if got := Greeting(at); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}

	// 23:59:59 sits outside every interval. The gap is part of the
	// contract and must stay open.
	t.Run("23:59:59 is unmapped", func(t *testing.T) {
		at, err := time.Parse(AnchorLayout, "2023-10-01 23:59:59")
		if err != nil {
			t.Fatalf("parse anchor: %v", err)
		}
		if got := Greeting(at); got != "" {
			t.Fatalf("got %q, want empty string", got)
		}
	})
}
