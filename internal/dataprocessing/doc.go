// Package dataprocessing loads tabular price files into record sets.
//
// A record set is a Date column plus any number of numeric columns, which is
// the shape the analytics package consumes. The file format is inferred from
// the extension (.csv or .xlsx) and source column headers can be renamed to
// canonical names before interpretation:
//
//	rs, err := dataprocessing.LoadRecords("prices.xlsx", map[string]string{
//	    "Closing Price": "Close",
//	})
//
// Cells that do not parse as numbers are stored as NaN so that series keep
// their row alignment with the Date column.
package dataprocessing
