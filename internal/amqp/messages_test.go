package amqp

import (
	"testing"
	"time"
)

func TestNewReportBuiltMessage(t *testing.T) {
	anchor := time.Date(2021, 12, 31, 16, 44, 0, 0, time.UTC)

	msg := NewReportBuiltMessage(anchor)
	if !msg.Anchor.Equal(anchor) {
		t.Errorf("Anchor = %v, want %v", msg.Anchor, anchor)
	}
	if msg.GeneratedAt.IsZero() {
		t.Error("GeneratedAt should not be zero")
	}
	if time.Since(msg.GeneratedAt) > time.Second {
		t.Error("GeneratedAt should be recent")
	}
}

func TestReportBuiltMessage_JSON(t *testing.T) {
	msg := &ReportBuiltMessage{
		Anchor:      time.Date(2021, 12, 31, 16, 44, 0, 0, time.UTC),
		GeneratedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := ReportBuiltMessageFromJSON(data)
	if err != nil {
		t.Fatalf("ReportBuiltMessageFromJSON() error = %v", err)
	}
	if !parsed.Anchor.Equal(msg.Anchor) {
		t.Errorf("Anchor = %v, want %v", parsed.Anchor, msg.Anchor)
	}
	if !parsed.GeneratedAt.Equal(msg.GeneratedAt) {
		t.Errorf("GeneratedAt = %v, want %v", parsed.GeneratedAt, msg.GeneratedAt)
	}
}

func TestReportBuiltMessage_InvalidJSON(t *testing.T) {
	if _, err := ReportBuiltMessageFromJSON([]byte(`{"anchor": 123`)); err == nil {
		t.Error("ReportBuiltMessageFromJSON() should fail with invalid JSON")
	}
}
