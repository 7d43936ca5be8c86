// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutStatement = "02.01.2006"
	DateLayoutSlash     = "02/01/2006"
)

// statementFormats is the list of formats accepted when parsing statement dates.
// The bank's own DD.MM.YYYY layout comes first.
var statementFormats = []string{
	DateLayoutStatement,
	DateLayoutISO,
	DateLayoutSlash,
	"2.1.2006",
	"02-01-2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
}

// ParseDateString attempts to parse a date string using the statement formats.
// Returns an error for an empty or unrecognized string.
func ParseDateString(dateStr string) (time.Time, error) {
	cleanDate := CleanDateString(dateStr)
	if cleanDate == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range statementFormats {
		if t, err := time.Parse(format, cleanDate); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)

	re := regexp.MustCompile(`\s+`)
	dateStr = re.ReplaceAllString(dateStr, " ")

	return dateStr
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}

// ToStatementFormat formats a time.Time as DD.MM.YYYY, the bank's layout
func ToStatementFormat(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutStatement)
}

// TruncateToDay normalizes a time to midnight UTC, discarding the time component
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b at day granularity.
// The result is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	da := TruncateToDay(a)
	db := TruncateToDay(b)
	return int(db.Sub(da).Hours() / 24)
}
