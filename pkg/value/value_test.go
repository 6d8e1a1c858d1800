package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidbot/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2.5k", 2500},
		{"1m", 1_000_000},
		{"1.5M", 1_500_000},
		{"10K", 10_000},
		{"300", 300},
		{"0", 0},
		{" 42k ", 42_000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"abc", "", "k", "m", "1.2.3k", "12x"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, domain.ErrInvalidValue)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1_500_000, "1.5m"},
		{1_000_000, "1.0m"},
		{2500, "2.5k"},
		{1000, "1.0k"},
		{999, "999"},
		{0, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in))
	}
}
