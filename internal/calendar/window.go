package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar-date format accepted at the CLI boundary.
	DateLayout = "2006-01-02"
	// TimeLayout is the time-of-day format for the swap window bounds.
	TimeLayout = "15:04:05"
	// offsetLayout matches instants with a four-digit UTC offset and no colon.
	offsetLayout = "2006-01-02T15:04:05-0700"
)

// ErrInvalidDateFormat reports a user-supplied date that is not YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

// ErrInvalidTimeFormat reports a time bound that is not HH:MM:SS.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM:SS")

// TimeRange is an inclusive [Start, End] instant pair used to bound a query.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// ResolveWindow turns optional YYYY-MM-DD bounds into a concrete range in the
// local UTC offset. With both bounds absent the window is the current week,
// Monday 00:00:00 through the following Sunday 23:59:59. Otherwise an absent
// bound defaults to today. The lower bound starts its day, the upper bound
// ends its day.
func ResolveWindow(minDateStr, maxDateStr string) (TimeRange, error) {
	return resolveWindowAt(time.Now(), minDateStr, maxDateStr)
}

func resolveWindowAt(now time.Time, minDateStr, maxDateStr string) (TimeRange, error) {
	if minDateStr == "" && maxDateStr == "" {
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		monday := now.AddDate(0, 0, -daysSinceMonday)
		return TimeRange{Start: dayStart(monday), End: dayEnd(monday.AddDate(0, 0, 6))}, nil
	}

	minDate := now
	if minDateStr != "" {
		parsed, err := time.ParseInLocation(DateLayout, minDateStr, time.Local)
		if err != nil {
			return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, minDateStr)
		}
		minDate = parsed
	}
	maxDate := now
	if maxDateStr != "" {
		parsed, err := time.ParseInLocation(DateLayout, maxDateStr, time.Local)
		if err != nil {
			return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, maxDateStr)
		}
		maxDate = parsed
	}

	// An inverted range is returned as given; the query then legitimately
	// matches nothing.
	return TimeRange{Start: dayStart(minDate), End: dayEnd(maxDate)}, nil
}

// ParseDate parses a YYYY-MM-DD date in the local zone. An empty string
// resolves to today.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// DayRange bounds a single calendar date between two times of day, in the
// local UTC offset.
func DayRange(date time.Time, minTime, maxTime string) (TimeRange, error) {
	lo, err := time.Parse(TimeLayout, minTime)
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, minTime)
	}
	hi, err := time.Parse(TimeLayout, maxTime)
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, maxTime)
	}
	return TimeRange{
		Start: time.Date(date.Year(), date.Month(), date.Day(), lo.Hour(), lo.Minute(), lo.Second(), 0, time.Local),
		End:   time.Date(date.Year(), date.Month(), date.Day(), hi.Hour(), hi.Minute(), hi.Second(), 0, time.Local),
	}, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.Local)
}
