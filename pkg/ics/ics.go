// Package ics renders events as iCalendar documents with display alarms.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"organizer/pkg/record"
)

const prodID = "-//organizer//EN"

// Build renders the given events as one VCALENDAR. Each event becomes a
// VEVENT with DTSTART/DTEND in UTC basic format and a VALARM with a DISPLAY
// action triggered remindMin minutes before the start. Events with zero
// duration get no DTEND. Text values are passed raw; the library applies
// the iCalendar TEXT escaping on serialization.
func Build(now time.Time, events ...*record.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")

	stamp := now.UTC()
	for _, ev := range events {
		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(stamp)
		ve.SetStartAt(ev.When.UTC())
		if end, ok := ev.EndAt(); ok {
			ve.SetEndAt(end.UTC())
		}
		ve.SetSummary(ev.Title)
		ve.SetDescription(ev.Title)

		remind := ev.RemindMin
		if remind < 0 {
			remind = 0
		}
		alarm := ve.AddAlarm()
		alarm.SetAction(ical.ActionDisplay)
		alarm.SetTrigger(fmt.Sprintf("-PT%dM", remind))
		alarm.SetProperty(ical.ComponentPropertyDescription, ev.Title)
	}

	return cal.Serialize()
}

// Filename derives a safe .ics file name from an event title.
func Filename(ev *record.Event) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, ev.Title)
	name = strings.Trim(name, "-")
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		name = "event"
	}
	return name + ".ics"
}
