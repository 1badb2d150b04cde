package rule

import (
	"fmt"
	"strings"

	"github.com/cyp0633/recurrent/internal/civil"
)

// Format serializes r back to its grammar form, emitting FREQ,
// INTERVAL, COUNT and UNTIL in that fixed order and only when set
// (FREQ and INTERVAL always carry a value). ByWeekday, BySetPos and
// WeekStart are not rendered; Format is a one-way convenience, not a
// lossless encoder.
func Format(r Rule) string {
	var b strings.Builder
	b.WriteString("RRULE:FREQ=")
	b.WriteString(r.Frequency.String())

	interval := r.Interval
	if interval < 1 {
		interval = 1
	}
	fmt.Fprintf(&b, ";INTERVAL=%d", interval)

	if r.Count > 0 {
		fmt.Fprintf(&b, ";COUNT=%d", r.Count)
	}
	if r.Until != nil {
		b.WriteString(";UNTIL=")
		b.WriteString(civil.FormatCompact(*r.Until))
	}
	return b.String()
}

// String implements fmt.Stringer via Format.
func (r Rule) String() string {
	return Format(r)
}
