package logging

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerWritesKeyValueFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With("league_id", "l-1")

	logger.Warn("lock skipped", "team_id", "t-9", "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("unexpected entry count: got=%d want=1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["league_id"] != "l-1" {
		t.Fatalf("unexpected league_id: %v", fields["league_id"])
	}
	if fields["team_id"] != "t-9" {
		t.Fatalf("unexpected team_id: %v", fields["team_id"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
}

func TestCronLoggerRoutesErrors(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	cronLogger := NewCronLogger(FromZap(zap.New(core)))

	cronLogger.Info("wake", "now", "x")
	cronLogger.Error(errors.New("panic"), "job failed", "entry", 1)

	if got := logs.FilterLevelExact(zapcore.ErrorLevel).Len(); got != 1 {
		t.Fatalf("unexpected error entries: got=%d want=1", got)
	}
	if got := logs.FilterLevelExact(zapcore.DebugLevel).Len(); got != 1 {
		t.Fatalf("unexpected debug entries: got=%d want=1", got)
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("does not panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
}

func TestContextFieldsAndParseLevel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	ctx := ContextWith(t.Context(), "request_id", "req-1")
	ctx = ContextWith(ctx, "league_id", "citrus-demo-2025")
	logger.InfoContext(ctx, "pick accepted", "pick", 3)
	logger.Info("no context")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("unexpected entry count: got=%d want=2", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" || fields["league_id"] != "citrus-demo-2025" || fields["pick"] != int64(3) {
		t.Fatalf("unexpected context fields: %v", fields)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Fatalf("plain log line must not carry context fields")
	}

	for input, want := range map[string]Level{"": LevelInfo, "DEBUG": LevelDebug, "warning": LevelWarn, "error": LevelError} {
		got, err := ParseLevel(input)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", input, got, err, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if _, err := ParseLevel("fatal"); err == nil {
		t.Fatalf("expected error for fatal level")
	}
}
