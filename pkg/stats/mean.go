package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/shashank-93rao/colstats"
)

type meanReducer struct{}

// NewMean returns a reducer computing the arithmetic mean.
func NewMean() colstats.Reducer {
	return meanReducer{}
}

func (meanReducer) Name() string { return "mean" }

func (meanReducer) Reduce(values []float64) (float64, error) {
	return Mean(values)
}

// Mean returns sum(values)/len(values).
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyColumn
	}
	return checkFinite(stat.Mean(values, nil))
}
