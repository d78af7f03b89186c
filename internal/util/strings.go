// Package util provides the pure formatting helpers the dashboard paints with.
package util

import (
	"strconv"
	"unicode/utf8"
)

// TruncateRunes cuts s to at most n runes. Longer strings are cut, not ellipsized.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// TruncatePercent renders a fraction as a percentage with six decimals and
// keeps the first four characters, so 0.456 becomes "45.6" and 1.0 becomes
// "100.". Truncation, not rounding.
func TruncatePercent(fraction float64) string {
	s := strconv.FormatFloat(fraction*100, 'f', 6, 64)
	if len(s) > 4 {
		return s[:4]
	}
	return s
}

// OrDefault returns s, or def when s is empty.
func OrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Pluralize returns singular if count is 1, otherwise plural.
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
