package i18n

import (
	"fmt"
	"strings"
	"time"
)

// ParseTimezone resolves an IANA timezone name ("Europe/Vienna").
func ParseTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidTimezone, name, err)
	}
	return loc, nil
}

// MustParseTimezone is like ParseTimezone but panics on error.
func MustParseTimezone(name string) *time.Location {
	loc, err := ParseTimezone(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ToUserTimezone converts t into loc.
func ToUserTimezone(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

// ToUTC reads the wall clock of t as a time in loc and returns it in UTC.
// Use it for values entered by a user in their own timezone.
func ToUTC(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t.UTC()
	}
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	return wall.UTC()
}
