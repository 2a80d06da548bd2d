package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDay parses a calendar-day argument: "today", "yesterday", or one of
// a few common date layouts. The result is midnight in loc.
func ParseDay(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}

	now := time.Now().In(loc)
	switch input {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), nil
	case "yesterday":
		y := now.AddDate(0, 0, -1)
		return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, loc), nil
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"Jan 2, 2006",
		"2 Jan 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}

// ParseMonth parses "YYYY-MM" into the first of that month in loc.
func ParseMonth(input string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", strings.TrimSpace(input), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse month (want YYYY-MM): %s", input)
	}
	return t, nil
}
