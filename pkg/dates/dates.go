// Package dates owns the two textual date formats the mobile clients speak:
// a DD/MM/YYYY date key and a "DD/MM/YYYY, h:mm:ss AM/PM" log timestamp.
// Internally everything is time.Time; these renderings exist only at the HTTP
// boundary.
package dates

import (
	"errors"
	"time"
)

const (
	DateLayout      = "02/01/2006"
	TimestampLayout = "02/01/2006, 3:04:05 PM"
	isoLayout       = "2006-01-02"
)

var (
	ErrBadDate      = errors.New("date must be formatted as DD/MM/YYYY")
	ErrBadTimestamp = errors.New("timestamp must be formatted as DD/MM/YYYY, h:mm:ss AM/PM")
)

// FormatDate renders a zero-padded DD/MM/YYYY date key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTimestamp renders the log timestamp format with seconds precision.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatISO renders YYYY-MM-DD, the key form used by the calendar span map.
func FormatISO(t time.Time) string {
	return t.Format(isoLayout)
}

// ParseDate parses a DD/MM/YYYY date key. Unlike the legacy client, a parse
// failure is reported instead of silently substituting the current instant.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

// ParseTimestamp parses a log timestamp. It also accepts a bare date key,
// which the legacy clients send when logging without an explicit time.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(TimestampLayout, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadTimestamp
}

// DayStart truncates t to midnight in its own location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd is the last representable instant of t's day.
func DayEnd(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
