// Package analytics derives statistical series from loaded price data.
//
// The main routine is HistoricalVolatility, an annualized rolling standard
// deviation of log returns. Positions without enough history to fill the
// lookback window carry DefaultVolatility instead of being dropped, so the
// output stays aligned with the input dates.
package analytics
