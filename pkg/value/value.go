// Package value converts between human-entered magnitude strings ("2.5k",
// "1m") and numeric loot values.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"raidbot/internal/domain"
)

// Parse parses a magnitude string. Suffixes "k" (thousand) and "m" (million)
// are case-insensitive; bare numbers pass through unchanged.
func Parse(raw string) (float64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, domain.ErrInvalidValue
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		multiplier = 1_000
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		multiplier = 1_000_000
		s = strings.TrimSuffix(s, "m")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, domain.ErrInvalidValue
	}
	return n * multiplier, nil
}

// Format renders a value for display: "1.5m", "2.5k", or a plain integer
// below one thousand.
func Format(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fm", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		return strconv.Itoa(int(v))
	}
}
