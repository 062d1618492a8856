package schedule

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "momentum/internal/errors"
)

// ParseOrdinalPattern parses a kind-1 pattern of the form "M/D/W".
// Validation is eager: the first malformed field is reported and no
// date arithmetic happens on partial input.
func ParseOrdinalPattern(pattern string) (OrdinalWeekdayPattern, error) {
	fields := strings.Split(pattern, "/")
	if len(fields) != 3 {
		return OrdinalWeekdayPattern{}, apperrors.NewFormatError(
			fmt.Sprintf("ordinal pattern %q must have exactly three slash-separated fields", pattern))
	}

	offset, err := strconv.Atoi(fields[0])
	if err != nil {
		return OrdinalWeekdayPattern{}, apperrors.NewParsingError(
			fmt.Sprintf("month offset %q is not an integer", fields[0]), err).
			WithContext("field", "month_offset")
	}

	day, err := strconv.Atoi(fields[1])
	if err != nil {
		return OrdinalWeekdayPattern{}, apperrors.NewParsingError(
			fmt.Sprintf("weekday %q is not an integer", fields[1]), err).
			WithContext("field", "weekday")
	}
	weekday := Weekday(day)
	if !weekday.Valid() {
		return OrdinalWeekdayPattern{}, apperrors.NewValidationError("weekday",
			fmt.Sprintf("weekday must be between 1 (Monday) and 5 (Friday), got %d", day))
	}

	var ordinal Ordinal
	switch fields[2] {
	case "1":
		ordinal = First
	case "2":
		ordinal = Second
	case "3":
		ordinal = Third
	case "L":
		ordinal = Last
	default:
		return OrdinalWeekdayPattern{}, apperrors.NewValidationError("ordinal",
			fmt.Sprintf("ordinal must be 1, 2, 3 or L, got %q", fields[2]))
	}

	return OrdinalWeekdayPattern{
		MonthOffset: offset,
		Weekday:     weekday,
		Ordinal:     ordinal,
	}, nil
}

// ParseEdgePattern parses a kind-2 pattern: a signed month offset followed
// by "F" (first day) or "L" (last day), e.g. "-1F" or "0L".
func ParseEdgePattern(pattern string) (MonthEdgePattern, error) {
	if pattern == "" {
		return MonthEdgePattern{}, apperrors.NewFormatError("edge pattern is empty")
	}

	suffix := pattern[len(pattern)-1]
	if suffix != 'F' && suffix != 'L' {
		return MonthEdgePattern{}, apperrors.NewFormatError(
			fmt.Sprintf("edge pattern %q must end with F (first day) or L (last day)", pattern))
	}

	offset, err := strconv.Atoi(pattern[:len(pattern)-1])
	if err != nil {
		return MonthEdgePattern{}, apperrors.NewParsingError(
			fmt.Sprintf("month offset %q is not an integer", pattern[:len(pattern)-1]), err).
			WithContext("field", "month_offset")
	}

	edge := EdgeFirst
	if suffix == 'L' {
		edge = EdgeLast
	}

	return MonthEdgePattern{
		MonthOffset: offset,
		Edge:        edge,
	}, nil
}
