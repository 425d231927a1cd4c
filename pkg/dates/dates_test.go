package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
)

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "06/06/2025", dates.FormatDate(d))
	d = time.Date(2024, time.December, 31, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "31/12/2024", dates.FormatDate(d))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, time.June, 6, 15, 34, 23, 0, time.Local)
	assert.Equal(t, "06/06/2025, 3:34:23 PM", dates.FormatTimestamp(ts))
	ts = time.Date(2025, time.June, 6, 0, 5, 9, 0, time.Local)
	assert.Equal(t, "06/06/2025, 12:05:09 AM", dates.FormatTimestamp(ts))
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		Desc  string
		In    string
		Want  time.Time
		Error error
	}{
		{
			Desc: "zero padded",
			In:   "06/06/2025",
			Want: time.Date(2025, time.June, 6, 0, 0, 0, 0, time.Local),
		},
		{
			Desc:  "iso form rejected",
			In:    "2025-06-06",
			Error: dates.ErrBadDate,
		},
		{
			Desc:  "garbage",
			In:    "not a date",
			Error: dates.ErrBadDate,
		},
		{
			Desc:  "empty",
			In:    "",
			Error: dates.ErrBadDate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, err := dates.ParseDate(tc.In)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
				assert.True(t, got.Equal(tc.Want))
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Run("full timestamp", func(t *testing.T) {
		got, err := dates.ParseTimestamp("06/06/2025, 3:34:23 PM")
		assert.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, time.June, 6, 15, 34, 23, 0, time.Local)))
	})
	t.Run("midnight am", func(t *testing.T) {
		got, err := dates.ParseTimestamp("01/01/2024, 12:00:01 AM")
		assert.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2024, time.January, 1, 0, 0, 1, 0, time.Local)))
	})
	t.Run("bare date accepted", func(t *testing.T) {
		got, err := dates.ParseTimestamp("06/06/2025")
		assert.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2025, time.June, 6, 0, 0, 0, 0, time.Local)))
	})
	t.Run("parse failure is an error, not now", func(t *testing.T) {
		got, err := dates.ParseTimestamp("yesterday-ish")
		assert.ErrorIs(t, err, dates.ErrBadTimestamp)
		assert.True(t, got.IsZero())
	})
}

func TestDayBounds(t *testing.T) {
	ts := time.Date(2025, time.June, 6, 15, 34, 23, 0, time.Local)
	start := dates.DayStart(ts)
	end := dates.DayEnd(ts)
	assert.Equal(t, 0, start.Hour())
	assert.True(t, dates.SameDay(start, ts))
	assert.True(t, dates.SameDay(end, ts))
	assert.False(t, dates.SameDay(end.Add(time.Nanosecond), ts))
}
