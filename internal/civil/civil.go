// Package civil parses the compact civil date/time literals used by the
// recurrence grammar. Civil fields are calendar fields with no zone
// attached; this package always materializes them as UTC instants and
// leaves any zone decision to the caller.
package civil

import (
	"fmt"
	"strings"
	"time"
)

const (
	compactDateTime = "20060102T150405"
	compactDate     = "20060102"
)

// ParseCompact interprets a compact civil literal (YYYYMMDDTHHMMSS or
// YYYYMMDD, optional trailing Z) as a UTC instant.
func ParseCompact(s string) (time.Time, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	if t, err := time.ParseInLocation(compactDateTime, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(compactDate, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("civil: cannot parse %q as a compact date/time", s)
	}
	return t, nil
}

// ParseCompactEndOfDay is ParseCompact with the UNTIL convention
// applied: a literal whose time portion is absent or all zeros means
// the end of that day, 23:59:59.
func ParseCompactEndOfDay(s string) (time.Time, error) {
	t, err := ParseCompact(s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		t = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
	}
	return t, nil
}

// FormatCompact renders t in the compact UTC form YYYYMMDDTHHMMSSZ.
func FormatCompact(t time.Time) string {
	return t.UTC().Format(compactDateTime) + "Z"
}
