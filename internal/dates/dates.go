// Package dates provides the small date vocabulary the CLI understands:
// ISO formatting and relative keywords like "today".
package dates

import (
	"strings"
	"time"
)

// Layout is the ISO date layout used everywhere in filter operands.
const Layout = "2006-01-02"

// Today formats the current date (in now's location) as an ISO date.
func Today(now time.Time) string {
	return StartOfDay(now).Format(Layout)
}

// StartOfDay truncates a time to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the most recent Monday at midnight, counting Monday
// itself.
func StartOfWeek(now time.Time) time.Time {
	day := StartOfDay(now)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

var keywords = map[string]func(time.Time) time.Time{
	"today":     StartOfDay,
	"tomorrow":  func(t time.Time) time.Time { return StartOfDay(t).AddDate(0, 0, 1) },
	"yesterday": func(t time.Time) time.Time { return StartOfDay(t).AddDate(0, 0, -1) },
}

// ResolveKeyword resolves a relative date keyword against now, returning the
// ISO date and true when the value is a recognized keyword.
func ResolveKeyword(value string, now time.Time) (string, bool) {
	fn, ok := keywords[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", false
	}
	return fn(now).Format(Layout), true
}

// IsKeyword reports whether value is a supported relative date keyword.
func IsKeyword(value string) bool {
	_, ok := keywords[strings.ToLower(strings.TrimSpace(value))]
	return ok
}
