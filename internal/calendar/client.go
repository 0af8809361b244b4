// Package calendar wraps the Google Calendar API behind the narrow surface
// the tool needs: listing the user's own calendars, querying events in a time
// window, and updating single events. It also holds the event model and the
// window/filter primitives shared by the features.
package calendar

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarRef identifies one calendar the authenticated user owns.
type CalendarRef struct {
	ID   string
	Name string
}

// API is the calendar-service surface the features depend on. Tests
// substitute fakes for it.
type API interface {
	ListOwnedCalendars(primaryID string) ([]CalendarRef, error)
	ListEvents(calendarID string, r TimeRange, query string) ([]Event, error)
	UpdateEvent(calendarID, eventID string, ev *gcal.Event) error
}

// QueryError reports a failed event query against one calendar.
type QueryError struct {
	CalendarID string
	Err        error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("querying calendar %s failed: %v", e.CalendarID, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// UpdateError reports a failed event update.
type UpdateError struct {
	CalendarID string
	EventID    string
	Err        error
}

func (e *UpdateError) Error() string {
	return fmt.Sprintf("updating event %s in calendar %s failed: %v", e.EventID, e.CalendarID, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// Client is a wrapper around the Google Calendar API service.
type Client struct {
	service *gcal.Service
}

// NewClient creates a calendar client using the provided authenticated HTTP
// client.
func NewClient(ctx context.Context, httpClient *http.Client) (*Client, error) {
	service, err := gcal.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: service}, nil
}

// ListOwnedCalendars returns the calendars the user owns, with the primary
// calendar first and the rest in the order the service returned them. An
// empty primaryID simply leaves no calendar marked primary.
func (c *Client) ListOwnedCalendars(primaryID string) ([]CalendarRef, error) {
	list, err := c.service.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	return ownedRefs(list.Items, primaryID), nil
}

func ownedRefs(items []*gcal.CalendarListEntry, primaryID string) []CalendarRef {
	var refs []CalendarRef
	for _, item := range items {
		if item.AccessRole != "owner" {
			continue
		}
		refs = append(refs, CalendarRef{ID: item.Id, Name: item.Summary})
	}
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].ID == primaryID && refs[j].ID != primaryID
	})
	return refs
}

// ListEvents queries one calendar for events in the range, expanding
// recurring events and optionally passing a free-text query. The service
// returns events whose start OR end overlaps the range, which is looser than
// containment; callers narrow the result with FilterByStartTime.
func (c *Client) ListEvents(calendarID string, r TimeRange, query string) ([]Event, error) {
	call := c.service.Events.List(calendarID).
		TimeMin(r.Start.Format(time.RFC3339)).
		TimeMax(r.End.Format(time.RFC3339)).
		SingleEvents(true)
	if query != "" {
		call = call.Q(query)
	}
	result, err := call.Do()
	if err != nil {
		return nil, &QueryError{CalendarID: calendarID, Err: err}
	}
	events := make([]Event, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, FromAPI(item))
	}
	return events, nil
}

// UpdateEvent replaces an event in place.
func (c *Client) UpdateEvent(calendarID, eventID string, ev *gcal.Event) error {
	if _, err := c.service.Events.Update(calendarID, eventID, ev).Do(); err != nil {
		return &UpdateError{CalendarID: calendarID, EventID: eventID, Err: err}
	}
	return nil
}

// Sentinel names accepted by the calendar selector.
const (
	SelectorAll     = "all"
	SelectorPrimary = "primary"
)

// SelectCalendars resolves a selector against the owned-calendar snapshot.
// An empty selector or SelectorAll keeps every calendar, SelectorPrimary
// picks the one matching primaryID, anything else matches a calendar name
// case-insensitively.
func SelectCalendars(calendars []CalendarRef, selector, primaryID string) ([]CalendarRef, error) {
	switch {
	case selector == "" || strings.EqualFold(selector, SelectorAll):
		return calendars, nil
	case strings.EqualFold(selector, SelectorPrimary):
		for _, cal := range calendars {
			if cal.ID == primaryID {
				return []CalendarRef{cal}, nil
			}
		}
		return nil, fmt.Errorf("no calendar marked primary; set the primary calendar id")
	default:
		for _, cal := range calendars {
			if strings.EqualFold(cal.Name, selector) {
				return []CalendarRef{cal}, nil
			}
		}
		return nil, fmt.Errorf("calendar %q not found", selector)
	}
}
