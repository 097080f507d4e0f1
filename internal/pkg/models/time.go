package models

import (
	"time"
)

// Now returns the current time in UTC truncated to the microsecond precision Postgres stores
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTime parses a string in RFC3339 format to time.Time
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
