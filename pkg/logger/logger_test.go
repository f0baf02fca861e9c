package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestWithTierIDTagsEntries(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-1")
	ctx = logg.WithTierID(ctx, "tier-42")
	logg.Info(ctx, "profit_grid.tier_resolved")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["tier_id"] != "tier-42" {
		t.Fatalf("expected tier_id tier-42, got %v", entry["tier_id"])
	}
	if entry["request_id"] != "req-1" {
		t.Fatalf("expected request_id req-1, got %v", entry["request_id"])
	}
}

func TestWithFieldsDoesNotLeakAcrossContexts(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	tagged := logg.WithField(context.Background(), "scope", "a")
	logg.Info(tagged, "first")
	logg.Info(context.Background(), "second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], `"scope":"a"`) {
		t.Fatalf("first line missing field: %s", lines[0])
	}
	if strings.Contains(lines[1], `"scope"`) {
		t.Fatalf("second line must not carry the field: %s", lines[1])
	}
}
