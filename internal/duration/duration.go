// Package duration sums the lengths of calendar events matching a time
// window, a calendar selection, and optional title filters.
package duration

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gcalutil/internal/calendar"
)

// ErrNoMatchingEvents reports an empty result set. It is informational, not
// fatal: callers render it as a message.
var ErrNoMatchingEvents = errors.New("there are no events matching the search criteria for the selected period")

// Report is the aggregation outcome: the summed duration and the contributing
// events, sorted ascending by start instant.
type Report struct {
	TotalSeconds int64
	Events       []calendar.Event
}

// Collect queries every calendar for every requested title within the window
// and applies the title and start-time filters. Results across the
// calendar × title cross-product are concatenated, not deduplicated. The
// first query failure aborts the run.
func Collect(api calendar.API, calendars []calendar.CalendarRef, r calendar.TimeRange, titles []string, titleContains bool) ([]calendar.Event, error) {
	var events []calendar.Event
	for _, cal := range calendars {
		for _, title := range titles {
			found, err := api.ListEvents(cal.ID, r, title)
			if err != nil {
				return nil, err
			}
			found = calendar.FilterByTitle(found, title, titleContains)
			found = calendar.FilterByStartTime(found, r)
			events = append(events, found...)
		}
	}
	return events, nil
}

// Aggregate sums the durations of the given events. An empty input yields
// ErrNoMatchingEvents rather than a zero report.
func Aggregate(events []calendar.Event) (*Report, error) {
	if len(events) == 0 {
		return nil, ErrNoMatchingEvents
	}
	report := &Report{Events: append([]calendar.Event(nil), events...)}
	for _, ev := range events {
		report.TotalSeconds += int64(ev.Duration() / time.Second)
	}
	sort.SliceStable(report.Events, func(i, j int) bool {
		return report.Events[i].Start.DateTime.Before(report.Events[j].Start.DateTime)
	})
	return report, nil
}

// Total renders the summed duration as H:MM, minutes zero-padded, hours
// unbounded.
func (r *Report) Total() string {
	return fmt.Sprintf("%d:%02d", r.TotalSeconds/3600, r.TotalSeconds/60%60)
}

// Noun returns "event" or "events" for the report size.
func (r *Report) Noun() string {
	if len(r.Events) == 1 {
		return "event"
	}
	return "events"
}

// Summary renders the one-line result.
func (r *Report) Summary() string {
	return fmt.Sprintf("The total duration of the selected events is %s h (%d %s).", r.Total(), len(r.Events), r.Noun())
}

const (
	displayDate     = "02 January 2006"
	displayTime     = "15:04"
	displayDateTime = "02 January 2006, 15:04"
)

// Lines renders one detail line per event, in start order. Events contained
// in a single day show the date once; events crossing midnight show both
// endpoints in full.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Events))
	for _, ev := range r.Events {
		start, end := ev.Start.DateTime, ev.End.DateTime
		sy, sm, sd := start.Date()
		ey, em, ed := end.Date()
		if sy == ey && sm == em && sd == ed {
			lines = append(lines, fmt.Sprintf("%s: on %s from %s to %s",
				ev.Title, start.Format(displayDate), start.Format(displayTime), end.Format(displayTime)))
		} else {
			lines = append(lines, fmt.Sprintf("%s: from %s to %s",
				ev.Title, start.Format(displayDateTime), end.Format(displayDateTime)))
		}
	}
	return lines
}
