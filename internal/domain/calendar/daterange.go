package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidRange      = errors.New("end date must be after start date")
	ErrPastDate          = errors.New("rental cannot start before today")
)

const (
	DateLayout = "2006-01-02"
	Day        = 24 * time.Hour

	// calendar dates are pinned to midday UTC so that a shift of a few hours
	// in either direction never changes the day
	normalHour = 12
)

// DateRange is a half-open [start, end) rental window. The zero value is not a
// valid range; use NewDateRange or ParseRange.
type DateRange struct {
	start time.Time
	end   time.Time
}

// Normalize parses a calendar date (YYYY-MM-DD) or an RFC3339 timestamp and
// returns midday UTC of its day. Timestamps are read in UTC.
func Normalize(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDateFormat)
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return NormalizeTime(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NormalizeTime(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
}

// NormalizeTime pins t to midday UTC of its UTC calendar day.
func NormalizeTime(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), normalHour, 0, 0, 0, time.UTC)
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := NormalizeTime(start)
	e := NormalizeTime(end)
	if !e.After(s) {
		return DateRange{}, fmt.Errorf("%w: %s -> %s", ErrInvalidRange, s.Format(DateLayout), e.Format(DateLayout))
	}
	return DateRange{start: s, end: e}, nil
}

func ParseRange(start, end string) (DateRange, error) {
	s, err := Normalize(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := Normalize(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

// MustParseRange is meant for fixtures and tests.
func MustParseRange(start, end string) DateRange {
	r, err := ParseRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// DurationDays is the rental duration: ceil((end-start) / 1 day). It is the
// single place rental length is computed.
func DurationDays(r DateRange) (int, error) {
	if r.IsZero() {
		return 0, ErrInvalidRange
	}
	diff := r.end.Sub(r.start)
	days := int(diff / Day)
	if diff%Day != 0 {
		days++
	}
	if days < 1 {
		return 0, ErrInvalidRange
	}
	return days, nil
}

// Overlaps reports whether a and b share at least one instant. Touching
// endpoints do not overlap.
func Overlaps(a, b DateRange) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a.start.Before(b.end) && b.start.Before(a.end)
}

// ValidateNotPastAt rejects a range starting before the UTC calendar day of
// now. A rental may start today.
func (r DateRange) ValidateNotPastAt(now time.Time) error {
	if r.IsZero() {
		return ErrInvalidRange
	}
	today := NormalizeTime(now)
	if r.start.Before(today) {
		return fmt.Errorf("%w: %s is before %s", ErrPastDate, r.StartDate(), today.Format(DateLayout))
	}
	return nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Days returns the rental duration, 0 for the zero range.
func (r DateRange) Days() int {
	d, err := DurationDays(r)
	if err != nil {
		return 0
	}
	return d
}

func (r DateRange) Overlaps(other DateRange) bool {
	return Overlaps(r, other)
}

func (r DateRange) StartDate() string { return r.start.Format(DateLayout) }
func (r DateRange) EndDate() string   { return r.end.Format(DateLayout) }

func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r DateRange) String() string {
	if r.IsZero() {
		return "[)"
	}
	return fmt.Sprintf("[%s, %s)", r.StartDate(), r.EndDate())
}

// ToTstzrange renders the range as a Postgres tstzrange literal.
func (r DateRange) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}
