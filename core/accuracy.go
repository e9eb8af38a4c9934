// SPDX-License-Identifier: MIT

package core

import "math"

// Documented defaults for the accuracy contract.
const (
	// DefaultAbsoluteAccuracy is the absolute tolerance used by Brent, Laguerre and bisection.
	DefaultAbsoluteAccuracy = 1e-6

	// DefaultRelativeAccuracy is the relative tolerance used when none is supplied.
	DefaultRelativeAccuracy = 1e-14

	// DefaultFunctionValueAccuracy is the |f(x)| threshold accepted as an early exit.
	DefaultFunctionValueAccuracy = 1e-15
)

// Accuracy is the three-tolerance contract of every solver.
//
// A returned root v only guarantees that a true root lies within
// [v-Absolute, v+Absolute] and within [v-Relative·|v|, v+Relative·|v|].
// |f(v)| ≤ FunctionValue is accepted as an early exit regardless of the
// interval tolerances.
type Accuracy struct {
	// Absolute tolerance on the abscissa (> 0).
	Absolute float64 `yaml:"absolute" json:"absolute"`

	// Relative tolerance on the abscissa (> 0).
	Relative float64 `yaml:"relative" json:"relative"`

	// FunctionValue tolerance on |f(x)| (≥ 0).
	FunctionValue float64 `yaml:"function_value" json:"function_value"`
}

// DefaultAccuracy returns an Accuracy with the given absolute tolerance and
// the documented relative and function-value defaults.
func DefaultAccuracy(absolute float64) Accuracy {
	return Accuracy{
		Absolute:      absolute,
		Relative:      DefaultRelativeAccuracy,
		FunctionValue: DefaultFunctionValueAccuracy,
	}
}

// Validate checks that all tolerances are finite, Absolute and Relative are
// strictly positive and FunctionValue is non-negative.
func (a Accuracy) Validate() error {
	if !isPositiveFinite(a.Absolute) {
		return Errorf("core.Accuracy: Absolute", ErrInvalidArgument, a.Absolute)
	}
	if !isPositiveFinite(a.Relative) {
		return Errorf("core.Accuracy: Relative", ErrInvalidArgument, a.Relative)
	}
	if math.IsNaN(a.FunctionValue) || math.IsInf(a.FunctionValue, 0) || a.FunctionValue < 0 {
		return Errorf("core.Accuracy: FunctionValue", ErrInvalidArgument, a.FunctionValue)
	}

	return nil
}

// Tolerance returns max(Relative·|x|, Absolute), the convergence radius around x.
func (a Accuracy) Tolerance(x float64) float64 {
	return math.Max(a.Relative*math.Abs(x), a.Absolute)
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
