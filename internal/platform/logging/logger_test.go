package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q)=%s want %s", raw, got, want)
		}
	}
}

func TestLoggerKeyValueFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core)).With("stage", "teams")

	logger.Debug("hidden")
	logger.Info("stage complete", "written", 10, "error", errors.New("boom"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["stage"] != "teams" {
		t.Fatalf("expected stage field, got %+v", fields)
	}
	if fields["written"] != int64(10) {
		t.Fatalf("expected written=10, got %#v", fields["written"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("expected error field, got %#v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLoggerContextWithoutSpanAddsNoTraceFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.InfoContext(context.Background(), "request")

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Fatalf("unexpected trace_id without span: %+v", fields)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
