package stats

import (
	"math"
	"slices"

	"github.com/shashank-93rao/colstats"
)

type medianReducer struct{}

// NewMedian returns a reducer computing the median.
func NewMedian() colstats.Reducer {
	return medianReducer{}
}

func (medianReducer) Name() string { return "median" }

func (medianReducer) Reduce(values []float64) (float64, error) {
	return Median(values)
}

// Median returns the middle value of the sorted values, or the average of
// the two middle values when the count is even. values is left untouched.
func Median(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmptyColumn
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := n / 2
	if n%2 == 1 {
		return checkFinite(sorted[mid])
	}
	m := (sorted[mid-1] + sorted[mid]) / 2
	if math.IsInf(m, 0) {
		// the sum overflowed, halve first
		m = sorted[mid-1]/2 + sorted[mid]/2
	}
	return checkFinite(m)
}
