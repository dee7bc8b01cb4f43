package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestProductionLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	log.LeadSubmitted("lead-1", "buyer@example.com", "hot", 18, "qualify-form")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "lead_submitted" || entry["category"] != "hot" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["score"] != float64(18) {
		t.Fatalf("expected score 18, got %v", entry["score"])
	}
}

func TestWithContextAddsRequestAndLeadIDs(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-9")
	ctx = context.WithValue(ctx, LeadIDKey, "lead-7")
	log.WithContext(ctx).EmailDelivery("agent_alert", "agent@example.com", errors.New("smtp down"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line: %v", err)
	}
	if entry["request_id"] != "req-9" || entry["lead_id"] != "lead-7" {
		t.Fatalf("expected ids in entry, got %v", entry)
	}
	if entry["level"] != "ERROR" {
		t.Fatalf("expected error level, got %v", entry["level"])
	}
}
