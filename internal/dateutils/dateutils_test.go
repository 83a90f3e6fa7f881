package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		ok      bool
		want    time.Time
	}{
		{"ISO format", "2023-01-15", true, date(2023, time.January, 15)},
		{"European format", "15.01.2023", true, date(2023, time.January, 15)},
		{"slash format", "15/01/2023", true, date(2023, time.January, 15)},
		{"whitespace", " 2023-01-15 ", true, date(2023, time.January, 15)},
		{"empty", "", false, time.Time{}},
		{"garbage", "not a date", false, time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.dateStr)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2023-01-15", ToISODate(date(2023, time.January, 15)))
}

func TestSameMonth(t *testing.T) {
	d := date(2024, time.January, 31)
	assert.True(t, SameMonth(d, 2024, time.January))
	assert.False(t, SameMonth(d, 2024, time.February))
	assert.False(t, SameMonth(d, 2023, time.January))
}

func TestSameISOWeek(t *testing.T) {
	// 2023-01-01 is a Sunday and belongs to ISO week 52 of 2022
	assert.True(t, SameISOWeek(date(2023, time.January, 1), 2022, 52))
	assert.False(t, SameISOWeek(date(2023, time.January, 1), 2023, 1))

	// 2024-01-01 is a Monday and starts ISO week 1 of 2024
	assert.True(t, SameISOWeek(date(2024, time.January, 1), 2024, 1))
}

func TestBetween(t *testing.T) {
	d := date(2024, time.January, 15)

	assert.True(t, Between(d, time.Time{}, time.Time{}))
	// Bounds are inclusive
	assert.True(t, Between(d, d, d))
	assert.True(t, Between(d, date(2024, time.January, 1), time.Time{}))
	assert.True(t, Between(d, time.Time{}, date(2024, time.January, 31)))
	assert.False(t, Between(d, date(2024, time.January, 16), time.Time{}))
	assert.False(t, Between(d, time.Time{}, date(2024, time.January, 14)))
}

func TestToday(t *testing.T) {
	today := Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, time.UTC, today.Location())
}
