package dateutil

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a date input cannot be parsed.
var ErrInvalidDate = errors.New("invalid date format")

// Day is an attendance day: a calendar date at midnight in the reference
// timezone. It is the partition key for presence tracking, so every code path
// that keys or filters by date must build it through this package.
type Day struct {
	t time.Time
}

// NewDay builds the day containing the instant t in loc.
//
// The canonical strategy is local date construction: take the calendar
// components of t in loc and rebuild midnight with time.Date. Truncation-based
// approaches drift across DST boundaries and offset-carrying inputs, so they
// are deliberately not used anywhere.
func NewDay(t time.Time, loc *time.Location) Day {
	local := t.In(loc)
	return Day{t: time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)}
}

// ParseDay parses input as a calendar date ("2006-01-02") or an RFC3339
// timestamp, discarding any time-of-day. An empty input yields the day
// containing now.
func ParseDay(input string, now time.Time, loc *time.Location) (Day, error) {
	if input == "" {
		return NewDay(now, loc), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", input, loc); err == nil {
		return NewDay(t, loc), nil
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return NewDay(t, loc), nil
	}

	return Day{}, ErrInvalidDate
}

// Time returns midnight of the day in the reference timezone.
func (d Day) Time() time.Time {
	return d.t
}

// String formats the day as its storage and wire key, "2006-01-02".
func (d Day) String() string {
	return d.t.Format("2006-01-02")
}

// Equal reports whether two days are the same calendar date.
func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the day n calendar days after d.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// MonthStart returns the first day of d's month.
func (d Day) MonthStart() Day {
	return Day{t: time.Date(d.t.Year(), d.t.Month(), 1, 0, 0, 0, 0, d.t.Location())}
}

// Before reports whether d is an earlier calendar date than other.
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

// DaysSince returns the number of calendar days from other to d.
func (d Day) DaysSince(other Day) int {
	return DaysBetween(other.t, d.t)
}

// DaysBetween counts calendar days from a to b. Both instants are reduced to
// their calendar components and rebuilt in UTC before subtracting, because in
// a zone with DST a 23-hour day makes hour division undercount.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
