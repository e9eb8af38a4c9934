// SPDX-License-Identifier: MIT

package core

// Function is a real-valued function of one real variable.
// Implementations must be pure: the same x always yields the same value.
type Function interface {
	Value(x float64) float64
}

// Func adapts an ordinary closure to Function.
//
//	f := core.Func(math.Sin)
type Func func(x float64) float64

// Value calls f(x).
func (f Func) Value(x float64) float64 { return f(x) }
