package utils

import (
	"testing"
	"time"
)

func TestParseInstantAcceptsOffsets(t *testing.T) {
	zulu, err := ParseInstant("2025-03-10T10:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	offset, err := ParseInstant("2025-03-10T15:30:00+05:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !zulu.Equal(offset) {
		t.Fatalf("expected %v and %v to denote the same instant", zulu, offset)
	}
}

func TestParseInstantRejectsMalformed(t *testing.T) {
	for _, value := range []string{"", "2025-03-10 10:00:00", "2025-13-01T00:00:00Z", "not a time"} {
		if _, err := ParseInstant(value); err == nil {
			t.Fatalf("expected an error for %q", value)
		}
	}
}

func TestFormatWindow(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(5 * time.Minute)
	want := "2025-03-10T10:00:00Z - 2025-03-10T10:05:00Z"
	if got := FormatWindow(start, end); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
