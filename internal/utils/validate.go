package utils

import (
	"regexp"
	"strings"
	"time"
)

var calendarDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidCalendarDate reports whether s is a real calendar date in strict
// YYYY-MM-DD form. The reconstruction check rejects values like 2024-02-30
// that match the pattern but name no actual day.
func IsValidCalendarDate(s string) bool {
	if !calendarDatePattern.MatchString(s) {
		return false
	}

	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}

	// time.Parse normalizes out-of-range components, so round-trip to be sure.
	return parsed.Format("2006-01-02") == s
}

// NormalizeText trims leading and trailing whitespace. Internal spacing and
// case are preserved.
func NormalizeText(v string) string {
	return strings.TrimSpace(v)
}

// NormalizeEmail trims and lower-cases an email so that values differing only
// in case or surrounding whitespace collapse to the same uniqueness key.
func NormalizeEmail(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
