// SPDX-License-Identifier: MIT

package poly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/poly"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		coeffs []float64
		x      float64
		want   float64
	}{
		{"constant", []float64{7}, 123, 7},
		{"linear root", []float64{-1, 4}, 0.25, 0},
		{"quadratic", []float64{-3, 5, 2}, 2, 15},
		{"quintic at -1", []float64{-12, -1, 1, -12, -1, 1}, -1, 0},
		{"quintic at 4", []float64{-12, -1, 1, -12, -1, 1}, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := poly.Evaluate(tc.coeffs, tc.x)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}

	_, err := poly.Evaluate(nil, 1)
	assert.ErrorIs(t, err, core.ErrNoData)
}

func TestEvaluateComplex(t *testing.T) {
	// x⁵ + 4x³ + x² + 4 vanishes at 2i.
	cs := []complex128{4, 0, 1, 4, 0, 1}
	got, err := poly.EvaluateComplex(cs, complex(0, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0, real(got), 1e-12)
	assert.InDelta(t, 0, imag(got), 1e-12)

	_, err = poly.EvaluateComplex(nil, 0)
	assert.ErrorIs(t, err, core.ErrNoData)
}

func TestDifferentiate(t *testing.T) {
	d, err := poly.Differentiate([]float64{-3, 5, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4}, d)

	d, err = poly.Differentiate([]float64{9})
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, d)

	_, err = poly.Differentiate([]float64{})
	assert.ErrorIs(t, err, core.ErrNoData)
}
