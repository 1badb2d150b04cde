// Package vevent bridges recurrence expansion with iCalendar VEVENT
// components: it lifts a component's DTSTART/RRULE properties into the
// textual rule grammar and materializes expanded occurrences back as
// standalone event components.
package vevent

import (
	"fmt"
	"time"

	"github.com/cyp0633/recurrent/expand"
	"github.com/cyp0633/recurrent/rule"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// RuleText reconstructs the two-line zoned rule text from a component
// carrying a DTSTART property with a TZID parameter and an RRULE
// property. ok is false when any of the three pieces is missing.
func RuleText(comp *ical.Component) (string, bool) {
	dtstart := comp.Props.Get(ical.PropDateTimeStart)
	rrule := comp.Props.Get(ical.PropRecurrenceRule)
	if dtstart == nil || rrule == nil || dtstart.Value == "" || rrule.Value == "" {
		return "", false
	}

	tzids := dtstart.Params["TZID"]
	if len(tzids) == 0 || tzids[0] == "" {
		return "", false
	}

	return fmt.Sprintf("DTSTART;TZID=%s:%s\nRRULE:%s", tzids[0], dtstart.Value, rrule.Value), true
}

// Instances expands the recurring event described by comp and returns
// one VEVENT component per occurrence. Each instance carries a
// deterministic UID derived from the master UID and the occurrence
// instant, a RECURRENCE-ID naming that instant, and the master's
// SUMMARY when present. A component without a usable DTSTART/RRULE
// pair yields nil.
func Instances(comp *ical.Component) []*ical.Component {
	text, ok := RuleText(comp)
	if !ok {
		return nil
	}
	r := rule.ParseZoned(text)
	if r == nil {
		return nil
	}

	var masterUID, summary string
	if p := comp.Props.Get(ical.PropUID); p != nil {
		masterUID = p.Value
	}
	if p := comp.Props.Get(ical.PropSummary); p != nil {
		summary = p.Value
	}

	occurrences := expand.New().Occurrences(*r)
	out := make([]*ical.Component, 0, len(occurrences))
	for _, occ := range occurrences {
		stamp := occ.Time.UTC().Format("20060102T150405Z")

		ev := &ical.Component{Name: ical.CompEvent, Props: make(ical.Props)}
		ev.Props.SetText(ical.PropUID, InstanceUID(masterUID, occ.Time))
		ev.Props.SetText("RECURRENCE-ID", stamp)
		ev.Props.SetText(ical.PropDateTimeStart, stamp)
		if summary != "" {
			ev.Props.SetText(ical.PropSummary, summary)
		}
		out = append(out, ev)
	}
	return out
}

// InstanceUID derives a stable UID for one occurrence of a recurring
// event. The same master UID and instant always produce the same UID,
// so repeated expansions agree on instance identity.
func InstanceUID(masterUID string, occurrence time.Time) string {
	name := masterUID + "/" + occurrence.UTC().Format(time.RFC3339)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
