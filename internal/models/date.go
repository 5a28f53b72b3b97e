package models

import (
	"fmt"
	"time"
)

// DateLayout is the civil date grammar used for task completion dates (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// DateFormatHint is the human readable form of DateLayout
const DateFormatHint = "YYYY-MM-DD"

// ParseDate parses a civil date. Month and day must be in range for the
// given year, leap years included. The result is midnight UTC so that day
// arithmetic never crosses a DST boundary.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("%w %q: expected format %s", ErrInvalidDate, s, DateFormatHint)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected format %s", ErrInvalidDate, s, DateFormatHint)
	}
	return t, nil
}

// FormatDate formats t as a civil date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CivilDay strips the clock and zone from t, keeping the calendar date as seen in t's location
func CivilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the local calendar date formatted as YYYY-MM-DD
func Today() string {
	return FormatDate(CivilDay(time.Now()))
}

// AddDays advances a civil date by n calendar days
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// NextDue returns last + frequency days as YYYY-MM-DD, or Unknown when
// last is not a valid civil date.
func NextDue(last string, frequency uint8) string {
	t, err := ParseDate(last)
	if err != nil {
		return Unknown
	}
	return FormatDate(AddDays(t, int(frequency)))
}
