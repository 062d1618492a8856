package dataprocessing

import (
	"time"
)

// RecordSet holds tabular data keyed by a Date column. Rows are stored in
// file order; every numeric column has exactly one value per date.
type RecordSet struct {
	Dates   []time.Time
	Columns map[string][]float64
	// Order preserves the column order from the source header, Date excluded
	Order []string
}

// Len returns the number of rows in the record set
func (rs *RecordSet) Len() int {
	return len(rs.Dates)
}

// Column returns the named numeric series and whether it exists
func (rs *RecordSet) Column(name string) ([]float64, bool) {
	col, ok := rs.Columns[name]
	return col, ok
}
