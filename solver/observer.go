// SPDX-License-Identifier: MIT

package solver

import "time"

// Report summarizes one solve call.
type Report struct {
	Algorithm      string
	Evaluations    int
	MaxEvaluations int
	Root           float64
	Err            error
	Elapsed        time.Duration
}

// Observer receives a Report after each solve call. Implementations must be
// safe for concurrent use when the solver is shared between goroutines.
type Observer interface {
	ObserveSolve(Report)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Report)

// ObserveSolve calls f(r).
func (f ObserverFunc) ObserveSolve(r Report) { f(r) }
