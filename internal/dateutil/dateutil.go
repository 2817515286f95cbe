package dateutil

import (
	"fmt"
	"time"
)

// DayLayout is the canonical day-key format used everywhere a calendar
// day is stored or compared. Keys are derived from the local calendar
// day, never from UTC, so a completion logged at 23:30 local time stays
// on the day the user saw.
const DayLayout = "2006-01-02"

// Day returns the canonical YYYY-MM-DD key for t's local calendar day.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// Today returns the day key for now.
func Today(now time.Time) string {
	return Day(now)
}

// Yesterday returns the day key for the calendar day before now.
func Yesterday(now time.Time) string {
	return Day(now.AddDate(0, 0, -1))
}

// ParseDay parses a YYYY-MM-DD key into a time at local midnight.
func ParseDay(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// AddDays shifts a day key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDay(key)
	if err != nil {
		return "", err
	}
	return Day(t.AddDate(0, 0, n)), nil
}

// IsFuture reports whether the day key falls after now's calendar day.
// Day keys are zero-padded, so lexicographic comparison is calendar
// comparison.
func IsFuture(key string, now time.Time) bool {
	return key > Day(now)
}
