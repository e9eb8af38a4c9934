// SPDX-License-Identifier: MIT

package bracket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
)

func TestFind(t *testing.T) {
	iv, err := bracket.Find(linear, 5, -100, 100)
	require.NoError(t, err)
	assert.Less(t, iv.Lo, iv.Hi)
	assert.LessOrEqual(t, iv.Lo, 0.25)
	assert.GreaterOrEqual(t, iv.Hi, 0.25)
	assert.LessOrEqual(t, iv.FLo*iv.FHi, 0.0)
	assert.Equal(t, linear.Value(iv.Lo), iv.FLo)
	assert.Equal(t, linear.Value(iv.Hi), iv.FHi)
}

// TestSearch_SmallestBracket: from 1.5 the ends move 1, 3, 7 ... away; the
// sign change is first seen on the left, between the previous and the new end.
func TestSearch_SmallestBracket(t *testing.T) {
	iv, err := bracket.Search(linear, 1.5, -100, 100, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, -0.5, iv.Lo)
	assert.Equal(t, 0.5, iv.Hi)
}

func TestSearch_FirstIteration(t *testing.T) {
	iv, err := bracket.Search(linear, 0.5, -100, 100, 1, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, -0.5, iv.Lo)
	assert.Equal(t, 1.5, iv.Hi)
}

func TestSearch_Errors(t *testing.T) {
	noRoot := core.Func(func(x float64) float64 { return x*x + 1 })
	far := core.Func(func(x float64) float64 { return x - 1000 })

	cases := []struct {
		name  string
		f     core.Function
		init  float64
		lo    float64
		hi    float64
		q, r  float64
		iters int
		want  error
	}{
		{"q zero", linear, 0, -1, 1, 0, 1, 10, core.ErrInvalidArgument},
		{"no iterations", linear, 0, -1, 1, 1, 1, 0, core.ErrInvalidArgument},
		{"initial on bound", linear, -1, -1, 1, 1, 1, 10, core.ErrInvalidInterval},
		{"initial outside", linear, 5, -1, 1, 1, 1, 10, core.ErrInvalidInterval},
		{"bounds reached", noRoot, 0, -10, 10, 1, 1, 100, core.ErrNoBracketing},
		{"iterations exhausted", far, 0, -1e6, 1e6, 1, 1, 3, core.ErrNoBracketing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bracket.Search(tc.f, tc.init, tc.lo, tc.hi, tc.q, tc.r, tc.iters)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
