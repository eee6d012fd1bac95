package utils

import (
	"fmt"
	"time"
)

// ParseInstant parses an RFC 3339 timestamp. A literal Z suffix and an
// explicit numeric offset are both accepted; anything else is an error.
func ParseInstant(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}
	return t, nil
}

// FormatInstant renders a timestamp as an RFC 3339 string.
func FormatInstant(t time.Time) string {
	return t.Format(time.RFC3339)
}

// FormatWindow renders a closed time span as "start - end".
func FormatWindow(start, end time.Time) string {
	return FormatInstant(start) + " - " + FormatInstant(end)
}
