package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestAppLogger_ErrorAddsErrorField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := newWithCore(core)

	log.Error("usage update failed", errors.New("boom"), "user_id", "u1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["error"] != "boom" {
		t.Fatalf("expected error field boom, got %v", fields["error"])
	}
	if fields["user_id"] != "u1" {
		t.Fatalf("expected user_id u1, got %v", fields["user_id"])
	}
}

func TestAppLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := newWithCore(core)

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown", "k", "v")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry at warn level, got %d", logs.Len())
	}
}

func TestAppLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := newWithCore(core).With("request_id", "abc")

	log.Info("handled")

	if got := logs.All()[0].ContextMap()["request_id"]; got != "abc" {
		t.Fatalf("expected request_id abc, got %v", got)
	}
}
