// Package rule models recurrence rules and converts them to and from
// their textual grammar form.
package rule

import (
	"time"
)

// Frequency is the unit a rule steps in.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
	Yearly
)

var frequencyTokens = map[Frequency]string{
	Daily:   "DAILY",
	Weekly:  "WEEKLY",
	Monthly: "MONTHLY",
	Yearly:  "YEARLY",
}

// String returns the grammar token for f.
func (f Frequency) String() string {
	return frequencyTokens[f]
}

// ParseFrequency matches a grammar token against the four supported
// frequencies. The match is case-sensitive; ok is false for anything
// else, including SECONDLY/MINUTELY/HOURLY.
func ParseFrequency(token string) (Frequency, bool) {
	for f, t := range frequencyTokens {
		if t == token {
			return f, true
		}
	}
	return Daily, false
}

// Weekday is a day of the week, numbered 0=Sunday through 6=Saturday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayTokens = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// String returns the two-letter grammar token for d.
func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return weekdayTokens[Monday]
	}
	return weekdayTokens[d]
}

// ParseWeekday matches a two-letter weekday token. Unrecognized tokens
// resolve to Monday; the grammar treats bad weekday tokens as a
// recoverable condition rather than an error.
func ParseWeekday(token string) Weekday {
	for i, t := range weekdayTokens {
		if t == token {
			return Weekday(i)
		}
	}
	return Monday
}

// Rule is a structured recurrence description. A Rule is immutable once
// parsed; expansion borrows it and never mutates it.
type Rule struct {
	// Frequency is the stepping unit. Defaults to Daily.
	Frequency Frequency

	// Interval is the step count in units of Frequency, always >= 1.
	Interval int

	// Start is the first candidate occurrence. The civil fields of the
	// DTSTART literal are interpreted as UTC even when a TZID
	// accompanies them; see ZoneID.
	Start time.Time

	// ZoneID is the zone identifier declared alongside Start. It is
	// recorded for callers but deliberately not applied when building
	// Start (longstanding observable behavior that downstream callers
	// compensate for).
	ZoneID string

	// Until, when non-nil, bounds the expansion: no occurrence after
	// this instant is emitted.
	Until *time.Time

	// Count, when positive, caps the number of emitted occurrences.
	Count int

	// WeekStart is informational; expansion does not consult it.
	WeekStart *Weekday

	// ByWeekday restricts weekly rules to the listed days and, together
	// with BySetPos, switches monthly rules into Nth-weekday mode.
	ByWeekday []Weekday

	// BySetPos selects the Nth qualifying day within a month; only the
	// first element is consulted, with -1 meaning the last.
	BySetPos []int
}
