package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in     []float64
		expect float64
	}{
		{in: []float64{1, 2, 3, 4}, expect: 2.5},
		{in: []float64{5}, expect: 5},
		{in: []float64{1, 2, 3}, expect: 2},
		{in: []float64{10, 20, 30}, expect: 20},
		{in: []float64{-1, 1}, expect: 0},
		{in: []float64{5, 100, 20}, expect: 41.666667},
	} {
		got, err := Mean(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.expect, Round(got), "mean(%v)", tc.in)
	}
}

func TestMedian(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in     []float64
		expect float64
	}{
		{in: []float64{1, 2, 3, 4}, expect: 2.5},
		{in: []float64{1, 5, 2}, expect: 2},
		{in: []float64{7}, expect: 7},
		{in: []float64{3, -1}, expect: 1},
		{in: []float64{0.1, 0.2, 0.3}, expect: 0.2},
		{in: []float64{math.MaxFloat64, math.MaxFloat64}, expect: math.MaxFloat64},
	} {
		got, err := Median(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.expect, Round(got), "median(%v)", tc.in)
	}
}

func TestMedianPermutationInvariant(t *testing.T) {
	t.Parallel()

	perms := [][]float64{
		{4, 1, 3, 2, 9, 0.5},
		{0.5, 1, 2, 3, 4, 9},
		{9, 4, 3, 2, 1, 0.5},
		{2, 9, 0.5, 4, 1, 3},
	}
	want, err := Median(perms[0])
	require.NoError(t, err)
	assert.Equal(t, 2.5, want)
	for _, p := range perms[1:] {
		got, err := Median(p)
		require.NoError(t, err)
		assert.Equal(t, want, got, "median(%v)", p)
	}
}

func TestMedianLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	in := []float64{3, 1, 2}
	_, err := Median(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestStdDev(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in     []float64
		expect float64
	}{
		{in: []float64{2, 4, 4, 4, 5, 5, 7, 9}, expect: 2},
		{in: []float64{1, 2, 3, 4}, expect: 1.118034},
		{in: []float64{42}, expect: 0},
		{in: []float64{3, 3, 3}, expect: 0},
		{in: []float64{0.1, 0.1, 0.1}, expect: 0},
		{in: []float64{-5, 5}, expect: 5},
	} {
		got, err := StdDev(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.expect, Round(got), "stddev(%v)", tc.in)
	}
}

func TestStdDevPositiveForDistinctValues(t *testing.T) {
	t.Parallel()

	for _, in := range [][]float64{
		{1, 2},
		{0, 0, 0, 0.01},
		{-3, 8, 1e6},
	} {
		got, err := StdDev(in)
		require.NoError(t, err)
		assert.Greater(t, Round(got), 0.0, "stddev(%v)", in)
	}
}

func TestEmptyColumn(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func([]float64) (float64, error){
		"mean":   Mean,
		"median": Median,
		"stddev": StdDev,
	} {
		_, err := fn(nil)
		assert.ErrorIs(t, err, ErrEmptyColumn, name)
		_, err = fn([]float64{})
		assert.ErrorIs(t, err, ErrEmptyColumn, name)
	}
}

func TestNonFinite(t *testing.T) {
	t.Parallel()

	_, err := Mean([]float64{math.MaxFloat64, math.MaxFloat64})
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestRound(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in, expect float64
	}{
		{1.23456789, 1.234568},
		{-1.23456749, -1.234567},
		{2, 2},
		{41.666666666666664, 41.666667},
		{0.0000001, 0},
		{math.MaxFloat64, math.MaxFloat64},
	} {
		assert.Equal(t, tc.expect, Round(tc.in), "round(%v)", tc.in)
	}
	assert.True(t, math.IsNaN(Round(math.NaN())))
}

func TestReducers(t *testing.T) {
	t.Parallel()

	in := []float64{1, 2, 3, 10}
	for _, tc := range []struct {
		name   string
		reduce func([]float64) (float64, error)
		expect float64
	}{
		{"mean", NewMean().Reduce, 4},
		{"median", NewMedian().Reduce, 2.5},
		{"stddev", NewStdDev().Reduce, 3.535534},
	} {
		got, err := tc.reduce(in)
		require.NoError(t, err)
		assert.Equal(t, tc.expect, Round(got), tc.name)
	}
	assert.Equal(t, "mean", NewMean().Name())
	assert.Equal(t, "median", NewMedian().Name())
	assert.Equal(t, "stddev", NewStdDev().Name())
}
