package factory

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shashank-93rao/colstats"
	"github.com/shashank-93rao/colstats/pkg/stats"
)

// Kind is enum of the supported column statistics
type Kind string

const (
	Mean   Kind = "mean"
	Median Kind = "median"
	StdDev Kind = "stddev"
)

// ErrUnknownKind is returned for a statistic name that maps to no reducer.
var ErrUnknownKind = errors.New("unknown statistic")

var aliases = map[string]Kind{
	"mean":               Mean,
	"average":            Mean,
	"median":             Median,
	"stddev":             StdDev,
	"std":                StdDev,
	"sd":                 StdDev,
	"standard-deviation": StdDev,
}

// Kinds returns every supported statistic in canonical order.
func Kinds() []Kind {
	return []Kind{Mean, Median, StdDev}
}

// ParseKind resolves a statistic name or alias, ignoring case.
func ParseKind(name string) (Kind, error) {
	if k, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func GetReducer(kind Kind) (r colstats.Reducer, err error) {
	switch kind {
	case Mean:
		r = stats.NewMean()
	case Median:
		r = stats.NewMedian()
	case StdDev:
		r = stats.NewStdDev()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
	return
}

// Aliases returns the alternative names ParseKind accepts for kind.
func Aliases(kind Kind) []string {
	var names []string
	for name, k := range aliases {
		if k == kind && name != string(kind) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
