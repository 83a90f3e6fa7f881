// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
)

// CommonFormats is the list of formats tried when parsing user-supplied dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	"02/01/2006",
	"2006/01/02",
}

// ParseDate attempts to parse a date string using multiple common formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Today returns the current calendar date with the time component stripped.
func Today() time.Time {
	return normalize(time.Now())
}

// SameMonth reports whether a date falls within the given calendar year and month.
func SameMonth(date time.Time, year int, month time.Month) bool {
	return date.Year() == year && date.Month() == month
}

// SameISOWeek reports whether a date falls within the given ISO year and week.
// ISO weeks start on Monday; week 1 contains the year's first Thursday.
func SameISOWeek(date time.Time, year, week int) bool {
	y, w := date.ISOWeek()
	return y == year && w == week
}

// Between reports whether a date lies in [from, to] with inclusive bounds.
// A zero from or to means the corresponding bound is open.
func Between(date, from, to time.Time) bool {
	if !from.IsZero() && date.Before(from) {
		return false
	}
	if !to.IsZero() && date.After(to) {
		return false
	}
	return true
}

func normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
