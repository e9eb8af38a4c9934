// SPDX-License-Identifier: MIT

package brent_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/brent"
	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/poly"
)

const tol = 1e-6

var (
	linear    = poly.MustNew(-1, 4)
	quadratic = poly.MustNew(-3, 5, 2)
	quintic   = poly.MustNew(-12, -1, 1, -12, -1, 1)
)

func TestSolve_KnownRoots(t *testing.T) {
	cases := []struct {
		name     string
		f        core.Function
		min, max float64
		want     float64
	}{
		{"linear", linear, 0, 1, 0.25},
		{"quadratic right", quadratic, 0, 2, 0.5},
		{"quadratic left", quadratic, -4, -1, -3},
		{"quintic middle", quintic, -2, 2, -1},
		{"quintic left", quintic, -5, -2.5, -3},
		{"quintic right", quintic, 3, 6, 4},
		{"sine", core.Func(math.Sin), 3, 4, math.Pi},
		{"cube root of two", core.Func(func(x float64) float64 { return x*x*x - 2 }), 0, 5, math.Cbrt(2)},
	}
	s := brent.NewDefault()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root, err := s.Solve(100, tc.f, tc.min, tc.max)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, root, tol)
			assert.LessOrEqual(t, s.Evaluations(), 100)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	s := brent.NewDefault()

	_, err := s.Solve(100, linear, 1, 0)
	assert.ErrorIs(t, err, core.ErrInvalidInterval)

	_, err = s.SolveFrom(100, linear, 0, 1, 2)
	assert.ErrorIs(t, err, core.ErrInvalidInterval, "start outside the interval")

	_, err = s.Solve(100, linear, 1, 2)
	require.ErrorIs(t, err, core.ErrNoBracketing)
	var ce *core.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []float64{1, 2, 3, 7}, ce.Values)

	_, err = s.Solve(3, quintic, 3, 6)
	assert.ErrorIs(t, err, core.ErrTooManyEvaluations)

	_, err = s.Solve(0, linear, 0, 1)
	assert.ErrorIs(t, err, core.ErrTooManyEvaluations)

	_, err = brent.New(core.Accuracy{Absolute: -1, Relative: 1e-14})
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestSolve_EarlyExits covers a start or an endpoint that already is a root.
// TestSolve_HugeInterval starts from the midpoint of an interval whose
// lo+hi is not representable.
func TestSolve_HugeInterval(t *testing.T) {
	f := core.Func(func(x float64) float64 { return x - 1.5e308 })
	root, err := brent.NewDefault().Solve(200, f, 1e308, 1.7e308)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.5e308, root, 1e-10)
}

func TestSolve_EarlyExits(t *testing.T) {
	s := brent.NewDefault()

	root, err := s.SolveFrom(100, linear, 0, 1, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, root)
	assert.Equal(t, 1, s.Evaluations())

	root, err = s.Solve(100, linear, 0.25, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, root)
	assert.Equal(t, 2, s.Evaluations())

	root, err = s.Solve(100, linear, -1, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, root)
	assert.Equal(t, 3, s.Evaluations())
}

func TestSolve_Sides(t *testing.T) {
	f := core.Func(func(x float64) float64 { return x*x*x - 2 })
	root := math.Cbrt(2)
	s, err := brent.New(core.DefaultAccuracy(1e-3))
	require.NoError(t, err)

	left, err := s.SolveSide(100, f, 0, 5, 2.5, core.LeftSide)
	require.NoError(t, err)
	right, err := s.SolveSide(100, f, 0, 5, 2.5, core.RightSide)
	require.NoError(t, err)
	below, err := s.SolveSide(100, f, 0, 5, 2.5, core.BelowSide)
	require.NoError(t, err)
	above, err := s.SolveSide(100, f, 0, 5, 2.5, core.AboveSide)
	require.NoError(t, err)

	assert.LessOrEqual(t, left, root)
	assert.GreaterOrEqual(t, right, root)
	assert.LessOrEqual(t, f.Value(below), 0.0)
	assert.GreaterOrEqual(t, f.Value(above), 0.0)
	for _, x := range []float64{left, right, below, above} {
		assert.InDelta(t, root, x, 2e-3)
	}
}

func TestSolve_TighterAccuracy(t *testing.T) {
	s, err := brent.New(core.DefaultAccuracy(1e-12))
	require.NoError(t, err)
	root, err := s.Solve(200, core.Func(math.Sin), 3, 4)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, root, 1e-11)
}

// TestSolve_Idempotent repeats the same call on one solver.
func TestSolve_Idempotent(t *testing.T) {
	s := brent.NewDefault()
	first, err := s.Solve(100, quintic, -5, -2.5)
	require.NoError(t, err)
	evals := s.Evaluations()
	for i := 0; i < 3; i++ {
		again, err := s.Solve(100, quintic, -5, -2.5)
		require.NoError(t, err)
		assert.Equal(t, first, again)
		assert.Equal(t, evals, s.Evaluations())
	}
}

// TestSolve_Concurrent shares one solver between goroutines.
func TestSolve_Concurrent(t *testing.T) {
	s := brent.NewDefault()
	intervals := [][2]float64{{-2, 2}, {-5, -2.5}, {3, 6}}
	want := []float64{-1, -3, 4}

	var wg sync.WaitGroup
	got := make([]float64, 30)
	errs := make([]error, 30)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			iv := intervals[i%3]
			got[i], errs[i] = s.Solve(100, quintic, iv[0], iv[1])
		}(i)
	}
	wg.Wait()
	for i := range got {
		require.NoError(t, errs[i])
		assert.InDelta(t, want[i%3], got[i], tol)
	}
}
