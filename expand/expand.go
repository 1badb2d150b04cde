// Package expand generates concrete calendar occurrences from a
// recurrence rule, optionally re-projecting them into a target zone
// with the wall-clock time of day pinned.
package expand

import (
	"io"
	"log/slog"
	"time"

	"github.com/cyp0633/recurrent/rule"
)

// Occurrence is a single generated occurrence in the rule's native
// zone. AllDay is true for daily rules whose start carries no
// time-of-day fields.
type Occurrence struct {
	Time   time.Time
	AllDay bool
}

// Options configures an Expander.
type Options struct {
	// MaxOccurrences caps the generated sequence when the rule carries
	// neither COUNT nor UNTIL. It guarantees termination; it is not a
	// performance knob, and raising it grows worst-case output size.
	MaxOccurrences int

	// Logger receives diagnostics for lenient fallbacks (unknown
	// target zone, skipped months). Defaults to a discard handler.
	Logger *slog.Logger
}

// DefaultOptions provides the defaults used by New.
var DefaultOptions = Options{
	MaxOccurrences: 1000,
}

// maxScansPerEmission bounds how many times the cursor may advance per
// emitted occurrence. The weekly BYDAY scan needs at most 7; a
// legitimate monthly BYSETPOS=5 anchored to a short month can skip a
// few dozen periods before matching.
const maxScansPerEmission = 31

// Expander expands recurrence rules into occurrence sequences. It
// holds no per-call state; a single Expander may be shared by
// concurrent callers.
type Expander struct {
	opts   Options
	logger *slog.Logger
}

// New creates an Expander with DefaultOptions.
func New() *Expander {
	return NewWithOptions(DefaultOptions)
}

// NewWithOptions creates an Expander with custom options.
func NewWithOptions(opts Options) *Expander {
	if opts.MaxOccurrences <= 0 {
		opts.MaxOccurrences = DefaultOptions.MaxOccurrences
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Expander{opts: opts, logger: opts.Logger}
}

// Occurrences expands r into raw occurrences in the rule's native
// zone. The sequence is bounded by r.Count when set, by the
// MaxOccurrences ceiling otherwise, and cut off once the cursor passes
// r.Until. The until test is strict and evaluated before emitting the
// candidate.
func (e *Expander) Occurrences(r rule.Rule) []Occurrence {
	limit := r.Count
	if limit <= 0 {
		limit = e.opts.MaxOccurrences
	}
	interval := r.Interval
	if interval < 1 {
		interval = 1
	}
	allDay := r.Frequency == rule.Daily && hasZeroClock(r.Start)

	// The weekly BYDAY scan and the monthly BYSETPOS mode advance the
	// cursor without emitting, and a BYSETPOS no month can satisfy
	// would advance it forever. Cap the scanned periods as well as the
	// emissions so the loop always terminates.
	scanLimit := limit * maxScansPerEmission

	out := make([]Occurrence, 0, limit)
	current := r.Start
	for scanned := 0; len(out) < limit && scanned < scanLimit; scanned++ {
		if r.Until != nil && current.After(*r.Until) {
			break
		}

		switch {
		case r.Frequency == rule.Daily:
			out = append(out, Occurrence{Time: current, AllDay: allDay})
			current = current.AddDate(0, 0, interval)

		case r.Frequency == rule.Weekly && len(r.ByWeekday) > 0:
			// Day-at-a-time scan; INTERVAL does not skip weeks in
			// this mode.
			if weekdayIn(current, r.ByWeekday) {
				out = append(out, Occurrence{Time: current})
			}
			current = current.AddDate(0, 0, 1)

		case r.Frequency == rule.Weekly:
			out = append(out, Occurrence{Time: current})
			current = current.AddDate(0, 0, 7*interval)

		case r.Frequency == rule.Monthly && len(r.ByWeekday) > 0 && len(r.BySetPos) > 0:
			if t, ok := nthWeekdayOfMonth(current, r.ByWeekday[0], r.BySetPos[0]); ok {
				out = append(out, Occurrence{Time: t})
			} else {
				e.logger.Debug("no qualifying weekday position in month",
					"month", current.Format("2006-01"),
					"weekday", r.ByWeekday[0].String(),
					"setpos", r.BySetPos[0])
			}
			current = current.AddDate(0, interval, 0)

		case r.Frequency == rule.Monthly:
			out = append(out, Occurrence{Time: current})
			current = current.AddDate(0, interval, 0)

		default: // rule.Yearly
			out = append(out, Occurrence{Time: current})
			current = current.AddDate(interval, 0, 0)
		}
	}
	return out
}

// Expand generates the projected, formatted occurrence sequence for r.
// refTime supplies the wall-clock time of day pinned onto every
// occurrence regardless of the target zone's offset; when it does not
// parse, the rule start's own time of day is used instead.
func (e *Expander) Expand(r rule.Rule, targetZone, refTime string) []string {
	wall, err := ParseWallClock(refTime)
	if err != nil {
		wall = wallClockOf(r.Start)
		e.logger.Debug("unparsable reference time, using rule start clock",
			"ref", refTime)
	}

	occurrences := e.Occurrences(r)
	out := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		out = append(out, e.Project(occ.Time, targetZone, wall))
	}
	return out
}

// nthWeekdayOfMonth enumerates the days of cursor's month that fall on
// weekday and selects the pos'th one (1-based, -1 for last). The
// returned instant keeps cursor's time-of-day fields. ok is false when
// pos is out of range for the month.
func nthWeekdayOfMonth(cursor time.Time, weekday rule.Weekday, pos int) (time.Time, bool) {
	first := time.Date(cursor.Year(), cursor.Month(), 1,
		cursor.Hour(), cursor.Minute(), cursor.Second(), 0, cursor.Location())

	var matches []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if int(d.Weekday()) == int(weekday) {
			matches = append(matches, d)
		}
	}

	switch {
	case len(matches) == 0:
		return time.Time{}, false
	case pos == -1:
		return matches[len(matches)-1], true
	case pos >= 1 && pos <= len(matches):
		return matches[pos-1], true
	default:
		return time.Time{}, false
	}
}

func weekdayIn(t time.Time, days []rule.Weekday) bool {
	for _, d := range days {
		if int(t.Weekday()) == int(d) {
			return true
		}
	}
	return false
}

func hasZeroClock(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0
}
