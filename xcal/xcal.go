// Package xcal renders recurrence rules as xCal (RFC 6321) recur
// elements.
package xcal

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/cyp0633/recurrent/rule"
)

// AddRecur appends an RFC 6321 <recur> element describing r to parent
// and returns it. Zero-valued optional fields are omitted; FREQ is
// always present.
func AddRecur(parent *etree.Element, r rule.Rule) *etree.Element {
	recur := parent.CreateElement("recur")
	recur.CreateElement("freq").SetText(r.Frequency.String())

	if r.Until != nil {
		recur.CreateElement("until").SetText(r.Until.UTC().Format("2006-01-02T15:04:05Z"))
	}
	if r.Count > 0 {
		recur.CreateElement("count").SetText(strconv.Itoa(r.Count))
	}
	if r.Interval > 1 {
		recur.CreateElement("interval").SetText(strconv.Itoa(r.Interval))
	}
	for _, d := range r.ByWeekday {
		recur.CreateElement("byday").SetText(d.String())
	}
	for _, p := range r.BySetPos {
		recur.CreateElement("bysetpos").SetText(strconv.Itoa(p))
	}
	if r.WeekStart != nil {
		recur.CreateElement("wkst").SetText(r.WeekStart.String())
	}
	return recur
}

// Marshal renders r as a standalone indented <recur> document.
func Marshal(r rule.Rule) (string, error) {
	doc := etree.NewDocument()
	AddRecur(&doc.Element, r)
	doc.Indent(2)
	return doc.WriteToString()
}
