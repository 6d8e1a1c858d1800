package discord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidbot/internal/domain"
)

func TestParseStartTimeToday(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	start, err := ParseStartTime("14:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC), start)
}

func TestParseStartTimeRollsToTomorrow(t *testing.T) {
	now := time.Date(2026, 8, 28, 18, 30, 0, 0, time.UTC)

	start, err := ParseStartTime("14:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC), start)
}

func TestParseStartTimeNonUTCClock(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, loc) // 10:00 UTC

	start, err := ParseStartTime("11:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 28, 11, 0, 0, 0, time.UTC), start)
}

func TestParseStartTimeInvalid(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	for _, in := range []string{"", "25:00", "14h00", "garbage", "14:60"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseStartTime(in, now)
			assert.ErrorIs(t, err, domain.ErrInvalidTime)
		})
	}
}
