// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/core"
)

// TestError_Format checks the stable "op: kind [values]" rendering.
func TestError_Format(t *testing.T) {
	err := core.Errorf("brent.Solve", core.ErrNoBracketing, 1, 2, -0.5, 3)
	assert.Equal(t,
		"brent.Solve: core: function values at endpoints do not have different signs [1 2 -0.5 3]",
		err.Error())

	bare := core.Errorf("", core.ErrNoData)
	assert.Equal(t, "core: no data", bare.Error())
	assert.Nil(t, bare.Values)

	unknown := &core.Error{Op: "x"}
	assert.Equal(t, "x: unknown failure", unknown.Error())
}

// TestError_Unwrap ensures sentinels are reachable through wrapping layers.
func TestError_Unwrap(t *testing.T) {
	inner := core.Errorf("laguerre.Solve", core.ErrTooManyEvaluations, 10)
	wrapped := fmt.Errorf("scan part: %w", inner)

	assert.ErrorIs(t, wrapped, core.ErrTooManyEvaluations)
	assert.NotErrorIs(t, wrapped, core.ErrNoData)

	var ce *core.Error
	require.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, "laguerre.Solve", ce.Op)
	assert.Equal(t, []float64{10}, ce.Values)
}

// TestErrorf_CopiesValues guards the payload against caller mutation.
func TestErrorf_CopiesValues(t *testing.T) {
	vals := []float64{1, 2}
	err := core.Errorf("op", core.ErrInvalidInterval, vals...)
	vals[0] = 99
	assert.Equal(t, []float64{1, 2}, err.Values)
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"foreign", errors.New("boom"), nil},
		{"sentinel", core.ErrNoData, core.ErrNoData},
		{"structured", core.Errorf("op", core.ErrInvalidArgument), core.ErrInvalidArgument},
		{"wrapped", fmt.Errorf("ctx: %w", core.Errorf("op", core.ErrNoBracketing)), core.ErrNoBracketing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.KindOf(tc.err))
		})
	}
}
