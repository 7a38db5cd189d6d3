// Package stats implements the column reductions: mean, median and
// population standard deviation.
package stats

import (
	"errors"
	"math"
)

// Decimals is the number of decimal places results are rounded to.
const Decimals = 6

var (
	// ErrEmptyColumn is returned when a reduction is asked to collapse zero values.
	ErrEmptyColumn = errors.New("column has no values")
	// ErrNonFinite is returned when a reduction produces NaN or an infinity.
	ErrNonFinite = errors.New("reduction result is not finite")
)

var scale = math.Pow10(Decimals)

// Round rounds v to Decimals places, ties to even.
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r := math.RoundToEven(v*scale) / scale
	// v*scale overflowed; v already has no fractional digits worth keeping
	if math.IsInf(r, 0) {
		return v
	}
	return r
}

func checkFinite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, ErrNonFinite
	}
	return v, nil
}
