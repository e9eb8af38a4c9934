// SPDX-License-Identifier: MIT

package counter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/counter"
)

func TestIncrementor_Bounded(t *testing.T) {
	c := counter.New(3)
	for i := 1; i <= 3; i++ {
		require.True(t, c.CanIncrement())
		require.NoError(t, c.Increment())
		assert.Equal(t, i, c.Count())
	}
	assert.False(t, c.CanIncrement())
	assert.Equal(t, 0, c.Remaining())

	err := c.Increment()
	require.ErrorIs(t, err, core.ErrCountExceeded)
	var ce *core.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []float64{3}, ce.Values)
	assert.Equal(t, 3, c.Count(), "a failed increment leaves the count alone")

	c.Reset()
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 3, c.Remaining())
}

func TestIncrementor_IncrementBy(t *testing.T) {
	c := counter.New(10)
	require.NoError(t, c.IncrementBy(7))
	assert.ErrorIs(t, c.IncrementBy(4), core.ErrCountExceeded)
	require.NoError(t, c.IncrementBy(3))
	assert.Equal(t, 10, c.Count())
	assert.ErrorIs(t, c.IncrementBy(-1), core.ErrInvalidArgument)
}

func TestIncrementor_Copies(t *testing.T) {
	base := counter.New(5)
	require.NoError(t, base.Increment())

	wider := base.WithMaximalCount(8)
	assert.Equal(t, 0, wider.Count())
	assert.Equal(t, 8, wider.MaximalCount())

	started := base.WithStart(4)
	assert.Equal(t, 4, started.Count())
	assert.Equal(t, 5, started.MaximalCount())
	assert.Equal(t, 1, started.Remaining())

	assert.Equal(t, 1, base.Count(), "copies do not touch the receiver")
}

func TestIncrementor_Unbounded(t *testing.T) {
	c := counter.Unbounded()
	assert.Equal(t, counter.Unlimited, c.MaximalCount())
	for i := 0; i < 1000; i++ {
		require.NoError(t, c.Increment())
	}
	assert.True(t, c.CanIncrement())
	assert.Equal(t, counter.Unlimited-1000, c.Remaining())
}
