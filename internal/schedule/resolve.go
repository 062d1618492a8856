package schedule

import (
	"fmt"
	"time"

	apperrors "momentum/internal/errors"
)

// TargetDate resolves a pattern string against a reference date.
// Only the year and month of the reference are consulted.
func TargetDate(reference time.Time, pattern string, kind Kind) (time.Time, error) {
	switch kind {
	case KindOrdinalWeekday:
		p, err := ParseOrdinalPattern(pattern)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse ordinal pattern %q: %w", pattern, err)
		}
		return p.Resolve(reference), nil
	case KindMonthEdge:
		p, err := ParseEdgePattern(pattern)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse edge pattern %q: %w", pattern, err)
		}
		return p.Resolve(reference), nil
	default:
		return time.Time{}, apperrors.NewInvalidArgumentError(
			fmt.Sprintf("pattern kind must be 1 or 2, got %d", int(kind)))
	}
}

// ShiftMonth applies a signed month offset to a (year, month) pair and
// normalizes the result so month stays within 1..12, borrowing from or
// carrying into the year as needed.
func ShiftMonth(year, month, offset int) (int, int) {
	month += offset

	for month <= 0 {
		year--
		month += 12
	}
	for month > 12 {
		year++
		month -= 12
	}

	return year, month
}

// Resolve computes the concrete date the pattern names relative to the
// reference date's month.
func (p OrdinalWeekdayPattern) Resolve(reference time.Time) time.Time {
	year, month := ShiftMonth(reference.Year(), int(reference.Month()), p.MonthOffset)
	day := ordinalWeekdayDay(year, time.Month(month), p.Weekday, p.Ordinal)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ordinalWeekdayDay returns the day of month holding the requested
// occurrence of the weekday. Every weekday occurs four or five times in any
// month, so occurrences is never empty.
func ordinalWeekdayDay(year int, month time.Month, weekday Weekday, ordinal Ordinal) int {
	var occurrences []int
	for day := 1; day <= daysInMonth(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == weekday.Time() {
			occurrences = append(occurrences, day)
		}
	}

	if ordinal == Last {
		return occurrences[len(occurrences)-1]
	}

	idx := int(ordinal) - 1
	if idx < len(occurrences) {
		return occurrences[idx]
	}
	// An ordinal past the month's occurrence count degrades to the last
	// occurrence instead of failing. Intentional, see package doc.
	return occurrences[len(occurrences)-1]
}

// Resolve computes the first or last calendar day of the offset month.
func (p MonthEdgePattern) Resolve(reference time.Time) time.Time {
	year, month := ShiftMonth(reference.Year(), int(reference.Month()), p.MonthOffset)

	if p.Edge == EdgeFirst {
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	}
	// Day zero of the following month normalizes to the last day of the
	// target month, leap years included.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of calendar days in the given month
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
