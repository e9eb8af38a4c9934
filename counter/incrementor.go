// SPDX-License-Identifier: MIT

package counter

import (
	"math"

	"github.com/katalvlaran/rootfind/core"
)

// Unlimited is the maximal count of an unbounded Incrementor.
const Unlimited = math.MaxInt

const opIncrement = "counter.Increment"

// Incrementor counts up to a configured maximum.
type Incrementor struct {
	count int
	max   int
}

// New returns a reset Incrementor bounded by max.
func New(max int) Incrementor { return Incrementor{max: max} }

// Unbounded returns a reset Incrementor with max = Unlimited.
func Unbounded() Incrementor { return Incrementor{max: Unlimited} }

// WithMaximalCount returns a reset copy bounded by max.
func (c Incrementor) WithMaximalCount(max int) Incrementor {
	return Incrementor{max: max}
}

// WithStart returns a copy whose count starts at start, keeping the maximum.
func (c Incrementor) WithStart(start int) Incrementor {
	return Incrementor{count: start, max: c.max}
}

// Count is the number of increments performed so far.
func (c Incrementor) Count() int { return c.count }

// MaximalCount is the configured bound.
func (c Incrementor) MaximalCount() int { return c.max }

// Remaining is max-count, never negative.
func (c Incrementor) Remaining() int {
	if c.count >= c.max {
		return 0
	}

	return c.max - c.count
}

// CanIncrement reports whether one more Increment would succeed.
func (c Incrementor) CanIncrement() bool { return c.count < c.max }

// Increment adds one to the count.
//
// Errors:
//   - core.ErrCountExceeded (payload: max) when the count would exceed the maximum;
//     the count is left unchanged.
func (c *Incrementor) Increment() error { return c.IncrementBy(1) }

// IncrementBy adds n ≥ 0 to the count, failing like Increment when the sum
// would exceed the maximum.
func (c *Incrementor) IncrementBy(n int) error {
	if n < 0 {
		return core.Errorf(opIncrement, core.ErrInvalidArgument, float64(n))
	}
	if n > c.max-c.count {
		return core.Errorf(opIncrement, core.ErrCountExceeded, float64(c.max))
	}
	c.count += n

	return nil
}

// Reset sets the count back to zero.
func (c *Incrementor) Reset() { c.count = 0 }
