// Package schedule resolves compact pattern strings into concrete calendar dates.
//
// A pattern describes a position relative to a reference month, such as the
// second Wednesday of two months ago or the last calendar day of next month.
// Two grammars are supported, selected by Kind:
//
// Kind 1 (ordinal weekday), "M/D/W":
//
//	M: month offset (signed, 0 = reference month, -1 = previous month)
//	D: weekday, 1=Monday through 5=Friday
//	W: occurrence within the month, "1", "2", "3" or "L" (last)
//
// Kind 2 (month edge), "MF" or "ML":
//
//	M: month offset (signed)
//	F: first calendar day of the target month
//	L: last calendar day of the target month
//
// # Usage
//
//	reference := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)
//	date, err := schedule.TargetDate(reference, "-1/5/L", schedule.KindOrdinalWeekday)
//	// date is 2024-10-25, the last Friday of October 2024
//
// Patterns are validated eagerly; malformed input is reported through the
// typed errors in internal/errors before any date arithmetic runs.
//
// When an ordinal asks for more occurrences of a weekday than the target
// month holds (a "3" in a month where the weekday occurs only twice), the
// resolver degrades to the last occurrence rather than failing. Downstream
// rebalance schedules depend on this behavior.
//
// All functions are pure and safe for concurrent use. Resolved dates are
// civil dates at midnight UTC.
package schedule
