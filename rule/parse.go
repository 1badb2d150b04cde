package rule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cyp0633/recurrent/internal/civil"
	"github.com/samber/mo"
)

var (
	ErrMissingPrefix    = errors.New("rule: missing RRULE: prefix")
	ErrMissingFrequency = errors.New("rule: FREQ is required")
)

var dtstartPattern = regexp.MustCompile(`^DTSTART;TZID=([^:]+):(\d{8}T\d{6})$`)

// ParseZoned parses the two-line zoned rule text: a DTSTART;TZID=...
// start declaration followed by an RRULE declaration. It returns nil
// when either line is missing or the start literal is malformed; there
// is no partial result.
//
// The TZID of the start declaration is recorded on the Rule but the
// civil date/time fields are interpreted as UTC, not in that zone.
func ParseZoned(text string) *Rule {
	var startLine, ruleLine string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "DTSTART;TZID="):
			startLine = line
		case strings.HasPrefix(line, "RRULE:"):
			ruleLine = line
		}
	}
	if startLine == "" || ruleLine == "" {
		return nil
	}

	m := dtstartPattern.FindStringSubmatch(startLine)
	if m == nil {
		return nil
	}
	start, err := civil.ParseCompact(m[2])
	if err != nil {
		return nil
	}

	r := &Rule{Interval: 1, Start: start, ZoneID: m[1]}
	applyGrammar(r, strings.TrimPrefix(ruleLine, "RRULE:"), false)
	return r
}

// ParseGrammar parses a bare grammar string ("RRULE:FREQ=...;...")
// into a Rule. Unlike ParseZoned it reports failures explicitly: a
// missing prefix or absent FREQ key yields the error branch, and any
// fault raised while parsing is recovered into it rather than
// propagated. UNTIL additionally accepts a full RFC 3339 instant here.
func ParseGrammar(s string) (res mo.Result[Rule]) {
	defer func() {
		if r := recover(); r != nil {
			res = mo.Err[Rule](fmt.Errorf("rule: parse failure: %v", r))
		}
	}()

	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "RRULE:") {
		return mo.Err[Rule](ErrMissingPrefix)
	}

	r := Rule{Interval: 1}
	if !applyGrammar(&r, strings.TrimPrefix(s, "RRULE:"), true) {
		return mo.Err[Rule](ErrMissingFrequency)
	}
	return mo.Ok(r)
}

// applyGrammar folds the semicolon-separated key=value parts of a
// recurrence declaration into r and reports whether a FREQ key was
// seen. Unrecognized keys and values are skipped; the grammar is
// lenient by contract, so nothing here returns an error.
func applyGrammar(r *Rule, body string, isoUntil bool) (sawFreq bool) {
	for _, part := range strings.Split(body, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key, value := kv[0], kv[1]

		switch key {
		case "FREQ":
			sawFreq = true
			if f, ok := ParseFrequency(value); ok {
				r.Frequency = f
			}
		case "INTERVAL":
			if n, err := strconv.Atoi(value); err == nil && n >= 1 {
				r.Interval = n
			}
		case "UNTIL":
			if t, ok := parseUntil(value, isoUntil); ok {
				r.Until = &t
			}
		case "COUNT":
			if n, err := strconv.Atoi(value); err == nil && n >= 1 {
				r.Count = n
			}
		case "WKST":
			d := ParseWeekday(value)
			r.WeekStart = &d
		case "BYDAY":
			for _, token := range strings.Split(value, ",") {
				r.ByWeekday = append(r.ByWeekday, ParseWeekday(token))
			}
		case "BYSETPOS":
			for _, token := range strings.Split(value, ",") {
				if n, err := strconv.Atoi(token); err == nil {
					r.BySetPos = append(r.BySetPos, n)
				}
			}
		}
	}
	return sawFreq
}

// parseUntil parses an UNTIL literal. The compact form with an absent
// or all-zero time portion means the end of that day; the RFC 3339
// form is only accepted on the bare-grammar path.
func parseUntil(value string, iso bool) (time.Time, bool) {
	if iso {
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t, true
		}
	}
	t, err := civil.ParseCompactEndOfDay(value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
