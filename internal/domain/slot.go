package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/college-appointments/pkg/types"
)

// ErrInvalidTimeSlot is returned when a value is not a well-formed "<start>-<end>" slot
var ErrInvalidTimeSlot = errors.New("domain: invalid time slot")

// SlotSeparator separates the endpoints in the wire form of a TimeSlot
const SlotSeparator = "-"

// DefaultWorkingHours apply to professors that never configured their own
var DefaultWorkingHours = TimeSlot{
	Start: types.MustClock(10, 0),
	End:   types.MustClock(17, 0),
}

// TimeSlot is a half-open interval [Start, End) within a single day
type TimeSlot struct {
	Start types.Clock
	End   types.Clock
}

// NewTimeSlot builds a slot and checks Start < End
func NewTimeSlot(start, end types.Clock) (TimeSlot, error) {
	if !start.IsValid() || !end.IsValid() || !start.IsBefore(end) {
		return TimeSlot{}, fmt.Errorf("%w: %s-%s", ErrInvalidTimeSlot, start, end)
	}
	return TimeSlot{Start: start, End: end}, nil
}

// ParseTimeSlot parses "10:00AM-11:00AM". Both endpoints are required and the start must precede the end.
func ParseTimeSlot(s string) (TimeSlot, error) {
	parts := strings.Split(s, SlotSeparator)
	if len(parts) != 2 {
		return TimeSlot{}, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, s)
	}

	start, err := types.ParseClock(parts[0])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: start of %q: %v", ErrInvalidTimeSlot, s, err)
	}

	end, err := types.ParseClock(parts[1])
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: end of %q: %v", ErrInvalidTimeSlot, s, err)
	}

	return NewTimeSlot(start, end)
}

// String formats the slot in its wire form
func (s TimeSlot) String() string {
	return s.Start.String() + SlotSeparator + s.End.String()
}

// IsValid reports whether the slot is non-empty and inside the day
func (s TimeSlot) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && s.Start.IsBefore(s.End)
}

// Overlaps returns true if the two slots share at least one minute. Adjacent slots do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.Start < other.End && s.End > other.Start
}

// Contains returns true if other lies entirely within s
func (s TimeSlot) Contains(other TimeSlot) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// MarshalText implements encoding.TextMarshaler
func (s TimeSlot) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidTimeSlot, int(s.Start), int(s.End))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *TimeSlot) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
