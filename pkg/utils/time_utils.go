// utils/time_utils.go
package utils

import (
	"fmt"
	"time"
)

const (
	dateOnly = "2006-01-02"
	// fixed width so timestamps sort the same as strings and as instants
	timestampLayout = "2006-01-02T15:04:05.000000Z07:00"
)

// ParseDate accepts a full RFC3339 timestamp or a bare YYYY-MM-DD date
// (interpreted as midnight UTC).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseOptionalDate returns nil for a nil or empty input.
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatRFC3339 renders t in UTC with microsecond precision.
func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func FormatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatRFC3339(*t)
	return &s
}
