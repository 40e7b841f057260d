// Package biztime centralizes time handling. All storage and transport
// use UTC; handlers convert for display only.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// ParseDate parses a date string (YYYY-MM-DD) as UTC midnight. Used by
// the audit query date-range filters.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}

// EndOfDay returns the last instant of the given day in UTC. Audit
// range filters treat the "to" date as inclusive.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, time.UTC)
}

// FormatTimestamp formats a UTC time using RFC3339 for transport and
// audit change payloads.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
