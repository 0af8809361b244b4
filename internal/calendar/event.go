package calendar

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

// TimeKind tags which representation an event boundary carries.
type TimeKind int

const (
	// KindNone marks a missing or unparseable boundary.
	KindNone TimeKind = iota
	// KindTimed marks an instant with an explicit UTC offset.
	KindTimed
	// KindAllDay marks a bare calendar date with no time-of-day.
	KindAllDay
)

// EventTime is one boundary of an event: a timed instant carrying its own UTC
// offset, or a calendar date for all-day events.
type EventTime struct {
	Kind     TimeKind
	DateTime time.Time // set when Kind == KindTimed
	Date     string    // YYYY-MM-DD, set when Kind == KindAllDay
	TimeZone string    // zone label as sent by the API, may be empty
}

// Event is the subset of a Google Calendar event the tool operates on. Raw
// keeps the full API record so that updates preserve fields we do not model.
type Event struct {
	ID        string
	Title     string
	Organizer string
	Start     EventTime
	End       EventTime
	Raw       *gcal.Event
}

// FromAPI converts an API event record into the model.
func FromAPI(ev *gcal.Event) Event {
	e := Event{
		ID:    ev.Id,
		Title: ev.Summary,
		Start: parseEventTime(ev.Start),
		End:   parseEventTime(ev.End),
		Raw:   ev,
	}
	if ev.Organizer != nil {
		e.Organizer = ev.Organizer.Email
	}
	return e
}

func parseEventTime(edt *gcal.EventDateTime) EventTime {
	if edt == nil {
		return EventTime{}
	}
	if edt.DateTime != "" {
		t, err := ParseInstant(edt.DateTime)
		if err != nil {
			return EventTime{}
		}
		return EventTime{Kind: KindTimed, DateTime: t, TimeZone: edt.TimeZone}
	}
	if edt.Date != "" {
		return EventTime{Kind: KindAllDay, Date: edt.Date, TimeZone: edt.TimeZone}
	}
	return EventTime{}
}

// ParseInstant parses a timed instant in RFC 3339 or the compact
// YYYY-MM-DDTHH:MM:SS±HHMM form.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(offsetLayout, s)
}

// Timed reports whether both boundaries are timed instants.
func (e Event) Timed() bool {
	return e.Start.Kind == KindTimed && e.End.Kind == KindTimed
}

// AllDay reports whether both boundaries are bare dates.
func (e Event) AllDay() bool {
	return e.Start.Kind == KindAllDay && e.End.Kind == KindAllDay
}

// Duration returns the length of the event. Timed events subtract instants,
// each with its own UTC offset. All-day events count from 00:00:00 on the
// start date to 23:59:59 on the end date with no offset applied. Events whose
// boundaries disagree in kind have zero duration.
func (e Event) Duration() time.Duration {
	switch {
	case e.Timed():
		return e.End.DateTime.Sub(e.Start.DateTime)
	case e.AllDay():
		start, err := time.Parse(DateLayout, e.Start.Date)
		if err != nil {
			return 0
		}
		end, err := time.Parse(DateLayout, e.End.Date)
		if err != nil {
			return 0
		}
		return end.Add(23*time.Hour + 59*time.Minute + 59*time.Second).Sub(start)
	default:
		return 0
	}
}
