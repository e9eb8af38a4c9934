// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/core"
)

func TestAllowedSolution_StringRoundTrip(t *testing.T) {
	for s := core.AnySide; s <= core.AboveSide; s++ {
		got, err := core.ParseAllowedSolution(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "unknown-side", core.AllowedSolution(42).String())

	_, err := core.ParseAllowedSolution("middle")
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

// TestAllowedSolution_Pick uses the bracket (x0=1.1, f0=+0.2), (x1=0.9, f1=-0.3).
func TestAllowedSolution_Pick(t *testing.T) {
	const (
		x0, f0 = 1.1, 0.2
		x1, f1 = 0.9, -0.3
	)
	cases := []struct {
		side core.AllowedSolution
		want float64
	}{
		{core.AnySide, x0},
		{core.LeftSide, x1},
		{core.RightSide, x0},
		{core.BelowSide, x1},
		{core.AboveSide, x0},
	}
	for _, tc := range cases {
		t.Run(tc.side.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.side.Pick(x0, f0, x1, f1))
		})
	}

	// An exact zero always wins.
	for s := core.AnySide; s <= core.AboveSide; s++ {
		assert.Equal(t, 2.0, s.Pick(2, 0, 1, -1), s.String())
	}
}
