package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay_CalendarDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)
	day, err := ParseDay("2024-03-01", now, loc)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", day.String())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), day.Time())
}

func TestParseDay_EmptyUsesNow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	now := time.Date(2024, 6, 10, 23, 59, 59, 0, loc)
	day, err := ParseDay("", now, loc)

	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", day.String())
}

func TestParseDay_Invalid(t *testing.T) {
	_, err := ParseDay("not-a-date", time.Now(), time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDay("2024-13-45", time.Now(), time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

// Two inputs on the same local calendar day must normalize to the identical
// day key regardless of time-of-day. This is the basis of the
// one-record-per-employee-per-day invariant.
func TestParseDay_DayKeyStability(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	now := time.Date(2024, 3, 1, 8, 0, 0, 0, loc)

	fromDate, err := ParseDay("2024-03-01", now, loc)
	require.NoError(t, err)

	lateEvening := time.Date(2024, 3, 1, 23, 59, 59, 0, loc)
	fromInstant := NewDay(lateEvening, loc)

	assert.True(t, fromDate.Equal(fromInstant))
	assert.Equal(t, fromDate.String(), fromInstant.String())
}

func TestParseDay_RFC3339DiscardsTimeOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	day, err := ParseDay("2024-03-01T18:30:00+07:00", time.Now(), loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", day.String())
}

func TestNewDay_ConvertsToReferenceTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 2024-03-01T20:00Z is already 2024-03-02 03:00 in Jakarta.
	utcEvening := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	day := NewDay(utcEvening, loc)

	assert.Equal(t, "2024-03-02", day.String())
}

func TestDay_MonthStartAndAddDays(t *testing.T) {
	loc := time.UTC
	day, err := ParseDay("2024-02-29", time.Now(), loc)
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01", day.MonthStart().String())
	assert.Equal(t, "2024-03-01", day.AddDays(1).String())
	assert.Equal(t, "2024-02-22", day.AddDays(-7).String())
}

// A zone with DST has a 23-hour day; calendar counting must not lose it the
// way elapsed-hours division does.
func TestDaysBetween_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 is the spring-forward day in New York.
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	assert.Equal(t, 14, DaysBetween(start, end))
	assert.Equal(t, 14, NewDay(end, loc).DaysSince(NewDay(start, loc)))
}

func TestDaysBetween_SameDay(t *testing.T) {
	d := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysBetween(d, d))
}
