package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewJSONWriter_WritesFieldsAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo, "service", "team-roster").Named("usecase")

	logger.Debug("hidden")
	logger.InfoContext(context.Background(), "group created", "group", "Turma A", "error", errors.New("none"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one log line, got %d: %q", len(lines), buf.String())
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &payload); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if payload["msg"] != "group created" || payload["level"] != "INFO" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if payload["service"] != "team-roster" || payload["group"] != "Turma A" || payload["logger"] != "usecase" {
		t.Fatalf("missing fields: %v", payload)
	}
	if payload["error"] != "none" {
		t.Fatalf("expected error field, got %v", payload["error"])
	}
}

func TestZapFields_OddArgs(t *testing.T) {
	t.Parallel()

	fields := zapFields([]any{"a", 1, 2, "b"})
	if len(fields) != 2 {
		t.Fatalf("expected two fields, got %d", len(fields))
	}
	if fields[1].Key != "arg" {
		t.Fatalf("expected fallback key for non-string key, got %q", fields[1].Key)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("does not panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected nop logger from nil receiver")
	}
}

func TestInfoContext_AddsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	ctx := ContextWithRequestID(context.Background(), "a1b2c3d4e5f60718")
	logger.InfoContext(ctx, "player added", "group", "Volley")

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if payload["request_id"] != "a1b2c3d4e5f60718" {
		t.Fatalf("expected request_id field, got %v", payload["request_id"])
	}
	if _, ok := payload["trace_id"]; ok {
		t.Fatalf("trace_id must be absent without a span: %v", payload)
	}
}

func TestContextWithRequestID_EmptyKeepsContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := ContextWithRequestID(ctx, ""); got != ctx {
		t.Fatalf("expected the same context for an empty request id")
	}
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty request id from nil context, got %q", got)
	}
}
