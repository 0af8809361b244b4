package calendar

import "strings"

// FilterByTitle narrows events by title. An empty title passes everything.
// Exact mode keeps case-insensitive equals only; contains mode keeps the full
// set, since the service already performed substring matching on the query.
func FilterByTitle(events []Event, title string, titleContains bool) []Event {
	if title == "" || titleContains {
		return events
	}
	var filtered []Event
	for _, ev := range events {
		if strings.EqualFold(ev.Title, title) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// FilterByStartTime keeps timed events whose start instant lies inside the
// inclusive range. Needed because the service also returns events whose end
// alone overlaps the range. All-day events never pass.
func FilterByStartTime(events []Event, r TimeRange) []Event {
	var filtered []Event
	for _, ev := range events {
		if ev.Start.Kind != KindTimed {
			continue
		}
		start := ev.Start.DateTime
		if !start.Before(r.Start) && !start.After(r.End) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// SplitTitles splits a /-separated title list, trimming surrounding
// whitespace. An empty input yields a single empty entry, meaning no title
// filter.
func SplitTitles(s string) []string {
	if s == "" {
		return []string{""}
	}
	parts := strings.Split(s, "/")
	titles := make([]string, 0, len(parts))
	for _, part := range parts {
		titles = append(titles, strings.TrimSpace(part))
	}
	return titles
}
