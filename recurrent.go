// Package recurrent expands textual recurrence rules into concrete,
// zone-projected occurrence timestamps.
//
// # Basic Usage
//
//	text := "DTSTART;TZID=Asia/Shanghai:20240929T130000\n" +
//		"RRULE:FREQ=DAILY;INTERVAL=1;COUNT=3"
//	for _, s := range recurrent.Generate(text, "America/New_York", "09:30:00") {
//		fmt.Println(s)
//	}
//
// Each generated string carries the target zone's date and the
// reference wall-clock time of day. For structured access, use the
// rule and expand packages directly.
package recurrent

import (
	"github.com/cyp0633/recurrent/expand"
	"github.com/cyp0633/recurrent/rule"
)

var defaultExpander = expand.New()

// Parse parses the two-line zoned rule text into a Rule. It returns
// nil when either declaration line is missing or malformed.
func Parse(text string) *rule.Rule {
	return rule.ParseZoned(text)
}

// Generate parses text and expands it into formatted occurrence
// strings in targetZone, pinning refTime's wall-clock time of day on
// every occurrence. Malformed or empty input yields an empty
// sequence, never an error.
func Generate(text, targetZone, refTime string) []string {
	r := rule.ParseZoned(text)
	if r == nil {
		return []string{}
	}
	return defaultExpander.Expand(*r, targetZone, refTime)
}

// Format serializes r back to its RRULE grammar form.
func Format(r rule.Rule) string {
	return rule.Format(r)
}
