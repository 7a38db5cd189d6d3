// Package colstats reduces named numeric columns to summary statistics.
package colstats

// Reducer collapses a column of values into a single unrounded scalar.
type Reducer interface {
	Name() string

	Reduce(values []float64) (float64, error)
}
