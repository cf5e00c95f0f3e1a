// Package dates provides canonical date parsing and pattern formatting helpers.
//
// This package exists to avoid duplicating date logic across:
// - placeholder resolution (date-valued fields, {created})
// - default value synthesis (date fields with a format pattern)
// - ruleset field validation
//
// Patterns use the token alphabet YYYY, MM, DD, hh, mm, a. Tokens are
// replaced with calendar values; any other character passes through
// literally. hh is a 12-hour clock (0 renders as 12) and a renders a
// lowercase am/pm suffix.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical calendar-date layout (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DefaultPattern is the pattern used when none is configured.
const DefaultPattern = "YYYY-MM-DD"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse(DateLayout, s)
}

// ParseValue parses a stored date or datetime string.
//
// A date-only value is treated as midnight, so time tokens in a pattern
// render as 12:00am for it.
//
// Accepted formats:
// - YYYY-MM-DD
// - YYYY-MM-DDTHH:MM
// - YYYY-MM-DDTHH:MM:SS
// - RFC3339
func ParseValue(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	formats := []string{
		DateLayout,
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatPattern formats t using the YYYY/MM/DD/hh/mm/a token alphabet.
// Non-token characters pass through unchanged.
func FormatPattern(t time.Time, pattern string) string {
	if pattern == "" {
		pattern = DefaultPattern
	}

	var b strings.Builder
	i := 0
	for i < len(pattern) {
		switch {
		case strings.HasPrefix(pattern[i:], "YYYY"):
			b.WriteString(fmt.Sprintf("%04d", t.Year()))
			i += 4
		case strings.HasPrefix(pattern[i:], "MM"):
			b.WriteString(fmt.Sprintf("%02d", int(t.Month())))
			i += 2
		case strings.HasPrefix(pattern[i:], "DD"):
			b.WriteString(fmt.Sprintf("%02d", t.Day()))
			i += 2
		case strings.HasPrefix(pattern[i:], "hh"):
			b.WriteString(fmt.Sprintf("%02d", hour12(t.Hour())))
			i += 2
		case strings.HasPrefix(pattern[i:], "mm"):
			b.WriteString(fmt.Sprintf("%02d", t.Minute()))
			i += 2
		case pattern[i] == 'a':
			if t.Hour() < 12 {
				b.WriteString("am")
			} else {
				b.WriteString("pm")
			}
			i++
		default:
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// hour12 converts a 24-hour clock hour to 12-hour (0 -> 12).
func hour12(h int) int {
	h = h % 12
	if h == 0 {
		return 12
	}
	return h
}

// FormatNumber renders a JSON-ish numeric value without a trailing ".0"
// for whole numbers. Shared by placeholder stringification and
// frontmatter serialization.
func FormatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
