package service

import (
	"fmt"
	"time"
)

// calendarLayout renders only the calendar date component, discarding
// time-of-day and timezone, e.g. "Mon Jan 02 2006". This matches the
// format existing clients parse and must not change.
const calendarLayout = "Mon Jan 02 2006"

// dateLayouts are the accepted input formats for date parameters, tried
// in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

func formatDate(t time.Time) string {
	return t.Format(calendarLayout)
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", value)
}
