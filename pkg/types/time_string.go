package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// It is the wire, storage and in-memory representation of booking start
// times and working-hour boundaries.
type TimeString string

const (
	// Layout is the time.Parse layout backing TimeString.
	Layout = "15:04"

	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidFormat is returned when a string is not a valid "HH:MM" time.
	ErrInvalidFormat = errors.New("types: invalid time string format")

	// ErrOutOfRange is returned when time arithmetic leaves the 24-hour day.
	ErrOutOfRange = errors.New("types: time out of range")
)

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Layout))
}

// NewTimeStringFromString parses an "HH:MM" string and normalizes it to the
// zero-padded canonical form, so "9:00" becomes "09:00" and compares equal
// to generated slot values.
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return NewTimeString(parsed), nil
}

// Validate checks that the value is a well-formed "HH:MM" time in canonical
// zero-padded form. Unpadded values like "9:00" are rejected: they parse,
// but can never match a stored or generated time.
func (t TimeString) Validate() error {
	parsed, err := time.Parse(Layout, string(t))
	if err != nil || parsed.Format(Layout) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns the offset from midnight in minutes.
// Invalid values yield an error.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(Layout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time m minutes later within the same day.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := current + m
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s + %dm", ErrOutOfRange, t, m)
	}

	// 24:00 is not representable as "HH:MM"
	if total == minutesPerDay {
		return "", fmt.Errorf("%w: %s + %dm crosses midnight", ErrOutOfRange, t, m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as false.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

// String implements fmt.Stringer.
func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer so TimeString can be written to a TIME column.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as time.Time
// through lib/pq, text columns as string or []byte.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		ts, err := NewTimeStringFromString(trimSeconds(v))
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		ts, err := NewTimeStringFromString(trimSeconds(string(v)))
		if err != nil {
			return err
		}
		*t = ts
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidFormat, src)
	}
}

// trimSeconds drops the ":SS" suffix Postgres appends to TIME values.
func trimSeconds(s string) string {
	if len(s) > len("15:04") {
		return s[:len("15:04")]
	}
	return s
}
