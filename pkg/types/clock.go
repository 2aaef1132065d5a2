package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockLayout is the 12-hour wire format of a Clock, e.g. "9:00AM" or "12:30PM".
const ClockLayout = "3:04PM"

// MinutesPerDay is the exclusive upper bound of a Clock value.
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidClock is returned when a value cannot be interpreted as a time of day
	ErrInvalidClock = errors.New("types: invalid clock time")
)

// Clock is a wall-clock time of day with minute precision, stored as minutes since midnight.
type Clock int

// NewClock builds a Clock from a 24-hour hour and a minute
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidClock, hour, minute)
	}
	return Clock(hour*60 + minute), nil
}

// MustClock is NewClock that panics on invalid input. Intended for constants and tests.
func MustClock(hour, minute int) Clock {
	c, err := NewClock(hour, minute)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockOf returns the time of day of t in t's location
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// ParseClock parses a 12-hour clock value with meridiem ("10:00AM", "9:30 pm").
// Case and inner spaces are ignored, a leading zero on the hour is accepted.
// The hour must be 1-12: "0:30AM" is rejected rather than read as 12:30AM.
func ParseClock(s string) (Clock, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if normalized == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidClock)
	}

	t, err := time.Parse(ClockLayout, normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	// time.Parse принимает час 0 в 12-часовом формате
	hour, err := strconv.Atoi(normalized[:strings.IndexByte(normalized, ':')])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour out of 1-12 in %q", ErrInvalidClock, s)
	}

	return ClockOf(t), nil
}

// Hour returns the 24-hour hour component
func (c Clock) Hour() int {
	return int(c) / 60
}

// Minute returns the minute component
func (c Clock) Minute() int {
	return int(c) % 60
}

// IsValid reports whether c lies within a single day
func (c Clock) IsValid() bool {
	return c >= 0 && int(c) < MinutesPerDay
}

// IsBefore reports whether c is strictly earlier than other
func (c Clock) IsBefore(other Clock) bool {
	return c < other
}

// String formats c in ClockLayout
func (c Clock) String() string {
	return time.Date(0, time.January, 1, c.Hour(), c.Minute(), 0, 0, time.UTC).Format(ClockLayout)
}

// MarshalText implements encoding.TextMarshaler
func (c Clock) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidClock, int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value implements driver.Valuer; the column holds minutes since midnight
func (c Clock) Value() (driver.Value, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidClock, int(c))
	}
	return int64(c), nil
}

// Scan implements sql.Scanner
func (c *Clock) Scan(src interface{}) error {
	var minutes int64

	switch v := src.(type) {
	case int64:
		minutes = v
	case int32:
		minutes = int64(v)
	case []byte:
		if _, err := fmt.Sscan(string(v), &minutes); err != nil {
			return fmt.Errorf("%w: scan %q: %v", ErrInvalidClock, string(v), err)
		}
	case string:
		if _, err := fmt.Sscan(v, &minutes); err != nil {
			return fmt.Errorf("%w: scan %q: %v", ErrInvalidClock, v, err)
		}
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidClock, src)
	}

	scanned := Clock(minutes)
	if !scanned.IsValid() {
		return fmt.Errorf("%w: %d minutes", ErrInvalidClock, minutes)
	}
	*c = scanned
	return nil
}
