package core

import (
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02" // YYYY-MM-DD
	MonthLayout = "2006-01"    // YYYY-MM
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// ContainsFold reports whether `substr` is within `s`, ignoring case.
// An empty (or blank) `substr` always matches.
func ContainsFold(s, substr string) bool {
	substr = CleanString(substr, true /* lower */)
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), substr)
}

func FormatDate(t time.Time) string  { return t.Format(DateLayout) }
func FormatMonth(t time.Time) string { return t.Format(MonthLayout) }

func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func IsMonth(s string) bool {
	_, err := time.Parse(MonthLayout, s)
	return err == nil
}
