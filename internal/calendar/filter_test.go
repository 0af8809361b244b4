package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gcal "google.golang.org/api/calendar/v3"
)

func timedEvent(id, title, start, end string) Event {
	return FromAPI(&gcal.Event{
		Id:      id,
		Summary: title,
		Start:   &gcal.EventDateTime{DateTime: start},
		End:     &gcal.EventDateTime{DateTime: end},
	})
}

func allDayEvent(id, title, start, end string) Event {
	return FromAPI(&gcal.Event{
		Id:      id,
		Summary: title,
		Start:   &gcal.EventDateTime{Date: start},
		End:     &gcal.EventDateTime{Date: end},
	})
}

func TestFilterByTitleExactIsCaseInsensitive(t *testing.T) {
	events := []Event{
		timedEvent("1", "Standup", "2025-11-12T09:00:00+01:00", "2025-11-12T09:15:00+01:00"),
		timedEvent("2", "standup", "2025-11-12T09:00:00+01:00", "2025-11-12T09:30:00+01:00"),
		timedEvent("3", "Standup prep", "2025-11-12T08:00:00+01:00", "2025-11-12T08:30:00+01:00"),
	}

	filtered := FilterByTitle(events, "standup", false)

	assert.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "2", filtered[1].ID)
}

func TestFilterByTitleEmptyPassesAll(t *testing.T) {
	events := []Event{
		timedEvent("1", "A", "2025-11-12T09:00:00+01:00", "2025-11-12T10:00:00+01:00"),
		timedEvent("2", "B", "2025-11-12T11:00:00+01:00", "2025-11-12T12:00:00+01:00"),
	}

	assert.Equal(t, events, FilterByTitle(events, "", false))
}

func TestFilterByTitleContainsKeepsRemoteResult(t *testing.T) {
	// In contains mode the remote service already matched; no local
	// narrowing happens.
	events := []Event{
		timedEvent("1", "Weekly standup notes", "2025-11-12T09:00:00+01:00", "2025-11-12T10:00:00+01:00"),
		timedEvent("2", "Unrelated", "2025-11-12T11:00:00+01:00", "2025-11-12T12:00:00+01:00"),
	}

	assert.Equal(t, events, FilterByTitle(events, "standup", true))
}

func TestFilterByStartTimeCorrectsOverInclusion(t *testing.T) {
	r := TimeRange{
		Start: mustInstant(t, "2025-11-12T00:00:00+01:00"),
		End:   mustInstant(t, "2025-11-12T23:59:59+01:00"),
	}

	events := []Event{
		// Starts before the range but ends inside it: must be dropped.
		timedEvent("1", "Overnight from yesterday", "2025-11-11T23:00:00+01:00", "2025-11-12T01:00:00+01:00"),
		// Fully inside.
		timedEvent("2", "Lunch", "2025-11-12T12:00:00+01:00", "2025-11-12T13:00:00+01:00"),
		// Starts exactly on the upper bound: inclusive.
		timedEvent("3", "Midnight snack", "2025-11-12T23:59:59+01:00", "2025-11-13T00:30:00+01:00"),
	}

	filtered := FilterByStartTime(events, r)

	assert.Len(t, filtered, 2)
	assert.Equal(t, "2", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)
}

func TestFilterByStartTimeExcludesAllDayEvents(t *testing.T) {
	r := TimeRange{
		Start: mustInstant(t, "2025-11-12T00:00:00+01:00"),
		End:   mustInstant(t, "2025-11-12T23:59:59+01:00"),
	}

	events := []Event{
		allDayEvent("1", "Holiday", "2025-11-12", "2025-11-12"),
		timedEvent("2", "Lunch", "2025-11-12T12:00:00+01:00", "2025-11-12T13:00:00+01:00"),
	}

	filtered := FilterByStartTime(events, r)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)
}

func TestSplitTitles(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty means no filter", input: "", want: []string{""}},
		{name: "single title", input: "Standup", want: []string{"Standup"}},
		{name: "multiple titles trimmed", input: "Standup / Review /Planning", want: []string{"Standup", "Review", "Planning"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTitles(tt.input))
		})
	}
}

func TestSelectCalendars(t *testing.T) {
	calendars := []CalendarRef{
		{ID: "primary@example.com", Name: "Personal"},
		{ID: "work@example.com", Name: "Work"},
	}

	selected, err := SelectCalendars(calendars, "", "primary@example.com")
	assert.NoError(t, err)
	assert.Equal(t, calendars, selected)

	selected, err = SelectCalendars(calendars, "all", "primary@example.com")
	assert.NoError(t, err)
	assert.Equal(t, calendars, selected)

	selected, err = SelectCalendars(calendars, "primary", "primary@example.com")
	assert.NoError(t, err)
	assert.Equal(t, []CalendarRef{calendars[0]}, selected)

	selected, err = SelectCalendars(calendars, "work", "primary@example.com")
	assert.NoError(t, err)
	assert.Equal(t, []CalendarRef{calendars[1]}, selected)

	_, err = SelectCalendars(calendars, "primary", "")
	assert.Error(t, err)

	_, err = SelectCalendars(calendars, "nope", "primary@example.com")
	assert.Error(t, err)
}

func mustInstant(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := ParseInstant(s)
	if err != nil {
		t.Fatalf("bad instant %q: %v", s, err)
	}
	return ts
}
