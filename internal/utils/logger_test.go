package utils

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLogLevel(tc.name); got != tc.want {
			t.Fatalf("ParseLogLevel(%q) = %v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestNewLoggerVerbosity(t *testing.T) {
	ctx := context.Background()

	quiet := NewLogger("error", LogFormatText)
	if quiet.Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("expected info suppressed at error verbosity")
	}
	verbose := NewLogger("debug", LogFormatJSON)
	if !verbose.Enabled(ctx, slog.LevelDebug) {
		t.Fatalf("expected debug enabled at debug verbosity")
	}
}
