// SPDX-License-Identifier: MIT

package bracket_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
)

var linear = core.Func(func(x float64) float64 { return 4*x - 1 })

func TestIsBracketing(t *testing.T) {
	assert.True(t, bracket.IsBracketing(linear, 0, 1))
	assert.True(t, bracket.IsBracketing(linear, 0.25, 1), "an exact zero at an end counts")
	assert.False(t, bracket.IsBracketing(linear, 1, 2))
}

func TestIsSequence(t *testing.T) {
	assert.True(t, bracket.IsSequence(0, 0.5, 1))
	assert.False(t, bracket.IsSequence(0, 0, 1))
	assert.False(t, bracket.IsSequence(0, 1, 1))
	assert.False(t, bracket.IsSequence(1, 0.5, 0))
}

func TestVerifyInterval(t *testing.T) {
	assert.NoError(t, bracket.VerifyInterval(0, 1))
	assert.ErrorIs(t, bracket.VerifyInterval(1, 1), core.ErrInvalidInterval)
	assert.ErrorIs(t, bracket.VerifyInterval(2, 1), core.ErrInvalidInterval)
	assert.ErrorIs(t, bracket.VerifyInterval(math.NaN(), 1), core.ErrInvalidInterval)
}

func TestVerifySequence(t *testing.T) {
	assert.NoError(t, bracket.VerifySequence(0, 0.5, 1))
	assert.ErrorIs(t, bracket.VerifySequence(0, 2, 1), core.ErrInvalidInterval)
}

func TestVerifyBracketing(t *testing.T) {
	require.NoError(t, bracket.VerifyBracketing(linear, 0, 1))
	assert.ErrorIs(t, bracket.VerifyBracketing(linear, 1, 0), core.ErrInvalidInterval)

	err := bracket.VerifyBracketing(linear, 1, 2)
	require.ErrorIs(t, err, core.ErrNoBracketing)
	var ce *core.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []float64{1, 2, 3, 7}, ce.Values)
}

func TestInterval(t *testing.T) {
	iv := bracket.Interval{Lo: -1, Hi: 3}
	assert.Equal(t, 4.0, iv.Width())
	assert.Equal(t, 1.0, bracket.Midpoint(iv.Lo, iv.Hi))
}

func TestMidpoint_Huge(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		want   float64
	}{
		{"sum overflows", 1e308, 1.7e308, 1.35e308},
		{"width overflows", -1.7e308, 1.7e308, 0},
		{"max float", math.MaxFloat64 / 2, math.MaxFloat64, 0.75 * math.MaxFloat64},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := bracket.Midpoint(tc.lo, tc.hi)
			assert.False(t, math.IsInf(m, 0))
			assert.InEpsilon(t, 1+tc.want, 1+m, 1e-12)
			assert.True(t, bracket.IsSequence(tc.lo, m, tc.hi))
		})
	}
}

func TestStraddles(t *testing.T) {
	assert.True(t, bracket.Straddles(-1, 1))
	assert.True(t, bracket.Straddles(0, 5), "an exact zero counts")
	assert.False(t, bracket.Straddles(2, 5))
	assert.False(t, bracket.Straddles(-2, -5))
}
