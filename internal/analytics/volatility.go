package analytics

import (
	"fmt"
	"math"
	"time"

	"momentum/internal/dataprocessing"
	apperrors "momentum/internal/errors"
)

const (
	// DefaultLookback is the rolling window length in trading days
	DefaultLookback = 126
	// DefaultVolatility is the fallback for positions with insufficient history
	DefaultVolatility = 0.25
	// AnnualizationDays scales the rolling deviation to an annual figure
	AnnualizationDays = 126
)

// Series pairs dates with computed values, one value per date
type Series struct {
	Dates  []time.Time
	Values []float64
}

// HistoricalVolatility computes an annualized rolling volatility series from
// a close-price series. For each position the sample standard deviation of
// the trailing lookback log returns is scaled by sqrt(AnnualizationDays).
// Positions whose window is not yet full, or whose window touches a
// non-positive or missing price, are filled with DefaultVolatility.
// The result has the same length as closes.
func HistoricalVolatility(closes []float64, lookback int) []float64 {
	if lookback <= 0 {
		lookback = DefaultLookback
	}

	out := make([]float64, len(closes))
	for i := range out {
		out[i] = DefaultVolatility
	}
	if len(closes) == 0 {
		return out
	}

	returns := make([]float64, len(closes))
	returns[0] = math.NaN()
	for i := 1; i < len(closes); i++ {
		if closes[i] > 0 && closes[i-1] > 0 {
			returns[i] = math.Log(closes[i] / closes[i-1])
		} else {
			returns[i] = math.NaN()
		}
	}

	scale := math.Sqrt(AnnualizationDays)
	for i := lookback; i < len(closes); i++ {
		if sd, ok := sampleStd(returns[i-lookback+1 : i+1]); ok {
			out[i] = sd * scale
		}
	}

	return out
}

// sampleStd returns the sample standard deviation of values. ok is false
// when the window holds fewer than two values or any value is NaN.
func sampleStd(values []float64) (float64, bool) {
	if len(values) < 2 {
		return 0, false
	}

	var sum float64
	for _, v := range values {
		if math.IsNaN(v) {
			return 0, false
		}
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}

	return math.Sqrt(sq / float64(len(values)-1)), true
}

// VolatilitySeries computes the volatility series for one column of a
// record set, keeping the record set's date alignment.
func VolatilitySeries(rs *dataprocessing.RecordSet, column string, lookback int) (*Series, error) {
	closes, ok := rs.Column(column)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("column %q", column))
	}

	return &Series{
		Dates:  rs.Dates,
		Values: HistoricalVolatility(closes, lookback),
	}, nil
}
