package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/shashank-93rao/colstats"
)

type stdDevReducer struct{}

// NewStdDev returns a reducer computing the population standard deviation.
func NewStdDev() colstats.Reducer {
	return stdDevReducer{}
}

func (stdDevReducer) Name() string { return "stddev" }

func (stdDevReducer) Reduce(values []float64) (float64, error) {
	return StdDev(values)
}

// StdDev returns the population standard deviation of values, dividing by
// N rather than N-1.
func StdDev(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyColumn
	}
	_, variance := stat.PopMeanVariance(values, nil)
	// cancellation can leave a tiny negative variance for constant columns
	if variance < 0 {
		variance = 0
	}
	return checkFinite(math.Sqrt(variance))
}
