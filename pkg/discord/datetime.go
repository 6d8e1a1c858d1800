package discord

import (
	"strings"
	"time"

	"raidbot/internal/domain"
)

// ParseStartTime parses an HH:MM (24h, UTC) start time. The date is today in
// UTC; if that moment has already passed relative to now, it rolls to
// tomorrow. Returns domain.ErrInvalidTime on malformed input.
func ParseStartTime(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return time.Time{}, domain.ErrInvalidTime
	}

	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), 0, 0, time.UTC)
	if start.Before(now) {
		start = start.AddDate(0, 0, 1)
	}
	return start, nil
}

// FormatStartTime renders a start time for announcement titles.
func FormatStartTime(t time.Time) string {
	return t.UTC().Format("15:04")
}
