// Package swap relocates the timed events of two dates, exchanging them
// while preserving time-of-day and each event's own UTC offset.
package swap

import (
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"gcalutil/internal/calendar"
)

// Default time-of-day bounds for the events considered on each date.
const (
	DefaultMinTime = "00:00:00"
	DefaultMaxTime = "23:59:59"
)

// Result lists the events relocated in each direction.
type Result struct {
	FromFirst  []calendar.Event
	FromSecond []calendar.Event
}

// Swap moves every timed event on the first date to the second and vice
// versa, across the given calendars. Both days are fetched before any write,
// so the two passes cannot double-move an event. A failed update aborts the
// remaining moves; events already written stay moved, there is no rollback.
func Swap(api calendar.API, first, second time.Time, minTime, maxTime string, calendars []calendar.CalendarRef) (*Result, error) {
	if minTime == "" {
		minTime = DefaultMinTime
	}
	if maxTime == "" {
		maxTime = DefaultMaxTime
	}

	firstRange, err := calendar.DayRange(first, minTime, maxTime)
	if err != nil {
		return nil, err
	}
	secondRange, err := calendar.DayRange(second, minTime, maxTime)
	if err != nil {
		return nil, err
	}

	var firstEvents, secondEvents []calendar.Event
	for _, cal := range calendars {
		found, err := api.ListEvents(cal.ID, firstRange, "")
		if err != nil {
			return nil, err
		}
		firstEvents = append(firstEvents, calendar.FilterByStartTime(found, firstRange)...)

		found, err = api.ListEvents(cal.ID, secondRange, "")
		if err != nil {
			return nil, err
		}
		secondEvents = append(secondEvents, calendar.FilterByStartTime(found, secondRange)...)
	}

	result := &Result{}
	result.FromFirst, err = moveEvents(api, firstEvents, second)
	if err != nil {
		return result, err
	}
	result.FromSecond, err = moveEvents(api, secondEvents, first)
	if err != nil {
		return result, err
	}
	return result, nil
}

// moveEvents relocates the given events to newDate, skipping all-day events.
// Updates are addressed by the organizer email as the owning calendar id.
func moveEvents(api calendar.API, events []calendar.Event, newDate time.Time) ([]calendar.Event, error) {
	var moved []calendar.Event
	for _, ev := range events {
		if !ev.Timed() {
			continue
		}
		newStart, newEnd := Relocate(ev, newDate)
		body := ev.Raw
		body.Start = &gcal.EventDateTime{
			DateTime: newStart.Format(time.RFC3339),
			TimeZone: ev.Start.TimeZone,
		}
		body.End = &gcal.EventDateTime{
			DateTime: newEnd.Format(time.RFC3339),
			TimeZone: ev.End.TimeZone,
		}
		if err := api.UpdateEvent(ev.Organizer, ev.ID, body); err != nil {
			return moved, err
		}
		moved = append(moved, ev)
	}
	return moved, nil
}

// Relocate computes the start and end instants of an event moved to newDate.
// Only the date components change; time-of-day and each side's own offset are
// kept. An end on the calendar day after the start (an overnight event) keeps
// that one-day rollover on the target date. Spans of more than one day are
// substituted directly, without adjustment.
func Relocate(ev calendar.Event, newDate time.Time) (newStart, newEnd time.Time) {
	start, end := ev.Start.DateTime, ev.End.DateTime
	newStart = withDate(start, newDate)
	newEnd = withDate(end, newDate)
	if spanDays(start, end) == 1 {
		newEnd = newEnd.AddDate(0, 0, 1)
	}
	return newStart, newEnd
}

func withDate(t, d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// spanDays counts the calendar days between the start and end dates.
func spanDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s) / (24 * time.Hour))
}
