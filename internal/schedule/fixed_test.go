package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLastThursday(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  time.Time
	}{
		{name: "november_2024", year: 2024, month: time.November, want: time.Date(2024, 11, 28, 0, 0, 0, 0, time.UTC)},
		{name: "month_ends_on_thursday", year: 2024, month: time.October, want: time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)},
		{name: "leap_february", year: 2024, month: time.February, want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "non_leap_february", year: 2025, month: time.February, want: time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)},
		{name: "december_2024", year: 2024, month: time.December, want: time.Date(2024, 12, 26, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LastThursday(tt.year, tt.month)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, time.Thursday, got.Weekday())
			assert.Equal(t, tt.month, got.Month())
		})
	}
}

func TestLastFridayOfPreviousMonth(t *testing.T) {
	// Last Thursday of November 2024 is the 28th, so the schedule lands on
	// Friday the 29th.
	got := LastFridayOfPreviousMonth(2024, time.December)
	assert.Equal(t, time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.Friday, got.Weekday())
}

func TestLastFridayOfPreviousMonthRollsOver(t *testing.T) {
	// October 2024 ends on a Thursday; the following Friday is November 1st.
	got := LastFridayOfPreviousMonth(2024, time.November)
	assert.Equal(t, time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestLastFridayOfPreviousMonthJanuaryWrap(t *testing.T) {
	// Previous month of January 2025 is December 2024; last Thursday is the
	// 26th, so the Friday is the 27th.
	got := LastFridayOfPreviousMonth(2025, time.January)
	assert.Equal(t, time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC), got)
}
