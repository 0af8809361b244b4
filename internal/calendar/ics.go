package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
)

// WriteICS writes the given events as an iCalendar document, one VEVENT per
// event. Timed boundaries become date-time properties, all-day boundaries
// become date properties.
func WriteICS(w io.Writer, events []Event) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//gcalutil//EN")

	now := time.Now().UTC()
	for i, ev := range events {
		vevent := ical.NewComponent(ical.CompEvent)

		uid := ev.ID
		if uid == "" {
			uid = fmt.Sprintf("%d-%s@gcalutil", i, now.Format(time.RFC3339Nano))
		}
		vevent.Props.SetText(ical.PropUID, uid)
		if ev.Title != "" {
			vevent.Props.SetText(ical.PropSummary, ev.Title)
		}
		setBoundary(vevent, ical.PropDateTimeStart, ev.Start)
		setBoundary(vevent, ical.PropDateTimeEnd, ev.End)
		vevent.Props.SetDateTime(ical.PropDateTimeStamp, now)

		cal.Children = append(cal.Children, vevent)
	}

	return ical.NewEncoder(w).Encode(cal)
}

func setBoundary(vevent *ical.Component, name string, et EventTime) {
	switch et.Kind {
	case KindTimed:
		vevent.Props.SetDateTime(name, et.DateTime)
	case KindAllDay:
		if d, err := time.Parse(DateLayout, et.Date); err == nil {
			prop := ical.NewProp(name)
			prop.SetDate(d)
			vevent.Props.Set(prop)
		}
	}
}
