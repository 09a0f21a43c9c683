// Package types provides type definitions for the entity model shared across the
// workforce-directory engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates in dataset files.
const DateLayout = "2006-01-02"

// Date is a calendar date with day precision, normalized to UTC midnight.
// The zero value means "no date".
type Date struct {
	t time.Time
}

// NewDate constructs a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a date in DateLayout form (e.g. "2025-03-01").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the underlying time.Time at UTC midnight.
func (d Date) Time() time.Time {
	return d.t
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// DaysSince returns the whole number of days from other to d.
// Negative when d falls before other.
func (d Date) DaysSince(other Date) int {
	return int(d.t.Sub(other.t) / (24 * time.Hour))
}

// Format formats the date with the given time layout.
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON encodes the date as a DateLayout string, or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.t.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON decodes a DateLayout string; null and "" decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
