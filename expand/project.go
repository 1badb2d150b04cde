package expand

import (
	"fmt"
	"strings"
	"time"
)

// WallClock is a civil time of day with no date or zone attached.
type WallClock struct {
	Hour, Minute, Second int
}

// ParseWallClock parses an HH:MM:SS or HH:MM literal.
func ParseWallClock(s string) (WallClock, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return WallClock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return WallClock{}, fmt.Errorf("expand: cannot parse %q as a time of day", s)
}

// Apply overwrites the time-of-day fields of t with w, keeping the
// date fields and location.
func (w WallClock) Apply(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), w.Hour, w.Minute, w.Second, 0, t.Location())
}

func wallClockOf(t time.Time) WallClock {
	return WallClock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Project re-expresses t in the named zone and pins the wall-clock
// time of day: the date fields come from the zone conversion, the
// clock fields from wall. An unknown zone falls back to UTC rather
// than failing. The result is Go's default time rendering, which
// carries a zone offset suffix.
func (e *Expander) Project(t time.Time, zone string, wall WallClock) string {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		e.logger.Warn("unknown target zone, falling back to UTC",
			"zone", zone, "error", err)
		loc = time.UTC
	}
	return wall.Apply(t.In(loc)).String()
}
