// Package reduce applies a statistic to every column of a dataset.
package reduce

import (
	"context"
	"fmt"

	"github.com/shashank-93rao/colstats"
	"github.com/shashank-93rao/colstats/internal/log"
	"github.com/shashank-93rao/colstats/pkg/dataset"
	"github.com/shashank-93rao/colstats/pkg/result"
	"github.com/shashank-93rao/colstats/pkg/stats"
	"github.com/shashank-93rao/colstats/pkg/stats/factory"
)

// ReductionError reports a column whose statistic could not be computed.
type ReductionError struct {
	Column    string
	Statistic string
	Err       error
}

func (e *ReductionError) Error() string {
	return fmt.Sprintf("%s of column %q: %v", e.Statistic, e.Column, e.Err)
}

func (e *ReductionError) Unwrap() error {
	return e.Err
}

// Columns reduces each column of ds independently with r, rounding every
// value to stats.Decimals places. The first failing column aborts the whole
// reduction; no partial result is returned.
func Columns(ctx context.Context, ds *dataset.Dataset, r colstats.Reducer) (*result.Result, error) {
	logger := log.Ctx(ctx).With().Str("statistic", r.Name()).Logger()
	logger.Debug().Int("columns", ds.Len()).Msg("reducing dataset")

	res := result.New()
	for _, c := range ds.Columns() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := r.Reduce(c.Values)
		if err != nil {
			return nil, &ReductionError{Column: c.Name, Statistic: r.Name(), Err: err}
		}
		rounded := stats.Round(v)
		logger.Debug().Str("column", c.Name).Int("n", len(c.Values)).Float64("value", rounded).Send()
		res.Set(c.Name, rounded)
	}
	return res, nil
}

// Exec reduces ds with the statistic kind and returns the result as a JSON
// string. It never prints or exits, so a host process can embed it and
// consume the string itself.
func Exec(ds *dataset.Dataset, kind factory.Kind) (string, error) {
	r, err := factory.GetReducer(kind)
	if err != nil {
		return "", err
	}
	res, err := Columns(context.Background(), ds, r)
	if err != nil {
		return "", err
	}
	return res.Compact(), nil
}

// ExecJSON parses data as a column dataset and hands it to Exec.
func ExecJSON(data []byte, kind factory.Kind, opts ...dataset.Option) (string, error) {
	ds, err := dataset.Parse(data, opts...)
	if err != nil {
		return "", err
	}
	return Exec(ds, kind)
}
