package schedule

import (
	"time"
)

// Kind selects the pattern grammar used by TargetDate
type Kind int

const (
	// KindOrdinalWeekday selects "M/D/W" patterns naming the Nth (or last)
	// occurrence of a weekday within an offset month
	KindOrdinalWeekday Kind = 1
	// KindMonthEdge selects "MF"/"ML" patterns naming the first or last
	// calendar day of an offset month
	KindMonthEdge Kind = 2
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindOrdinalWeekday:
		return "ordinal-weekday"
	case KindMonthEdge:
		return "month-edge"
	default:
		return "unknown"
	}
}

// Valid reports whether the kind is one of the supported pattern kinds
func (k Kind) Valid() bool {
	return k == KindOrdinalWeekday || k == KindMonthEdge
}

// Weekday is a trading weekday, Monday (1) through Friday (5).
// The numbering matches time.Weekday for those days.
type Weekday int

const (
	Monday    Weekday = 1
	Tuesday   Weekday = 2
	Wednesday Weekday = 3
	Thursday  Weekday = 4
	Friday    Weekday = 5
)

// Time converts the weekday to its time.Weekday equivalent
func (w Weekday) Time() time.Weekday {
	return time.Weekday(w)
}

// Valid reports whether the weekday is within Monday..Friday
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Friday
}

// Ordinal names which occurrence of a weekday to pick within a month
type Ordinal int

const (
	First  Ordinal = 1
	Second Ordinal = 2
	Third  Ordinal = 3
	// Last picks the final occurrence regardless of whether the weekday
	// occurs four or five times in the month
	Last Ordinal = -1
)

// Edge names the first or last calendar day of a month
type Edge int

const (
	EdgeFirst Edge = iota
	EdgeLast
)

// OrdinalWeekdayPattern is a parsed kind-1 pattern
type OrdinalWeekdayPattern struct {
	MonthOffset int
	Weekday     Weekday
	Ordinal     Ordinal
}

// MonthEdgePattern is a parsed kind-2 pattern
type MonthEdgePattern struct {
	MonthOffset int
	Edge        Edge
}
