package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(t, "info", &buf)

	ctx := WithLogger(context.Background(), l)

	retrieved := FromContext(ctx)
	if retrieved == nil {
		t.Fatal("FromContext returned nil")
	}

	retrieved.Info("test message")
	if buf.Len() == 0 {
		t.Error("Logger from context should produce output")
	}
}

func TestFromContext_Default(t *testing.T) {
	if l := FromContext(context.Background()); l == nil {
		t.Error("FromContext should return default logger, got nil")
	}
}

func TestWithRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "01J9Z3K6Q0")

	if got := RunIDFromContext(ctx); got != "01J9Z3K6Q0" {
		t.Errorf("RunIDFromContext() = %q, want %q", got, "01J9Z3K6Q0")
	}
	if got := RunIDFromContext(context.Background()); got != "" {
		t.Errorf("RunIDFromContext() on empty context = %q, want empty", got)
	}
}

func TestL_WithRunID(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(t, "info", &buf)

	ctx := WithLogger(context.Background(), l)
	ctx = WithRunID(ctx, "run-1")

	L(ctx).Info("started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["run_id"] != "run-1" {
		t.Errorf("run_id = %v, want run-1", entry["run_id"])
	}
}

func TestL_NoRunID(t *testing.T) {
	var buf bytes.Buffer
	l := newJSONLogger(t, "info", &buf)

	L(WithLogger(context.Background(), l)).Info("started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if _, ok := entry["run_id"]; ok {
		t.Error("run_id should be absent when not set")
	}
}

func TestContextKeyCollision(t *testing.T) {
	// A plain string key with the same text must not shadow ours.
	ctx := context.WithValue(context.Background(), "sortbench.run_id", "wrong")
	ctx = WithRunID(ctx, "right")

	if got := RunIDFromContext(ctx); got != "right" {
		t.Errorf("RunIDFromContext() = %q, want right", got)
	}
}
