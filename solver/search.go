// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/counter"
)

// Search is the per-call state handed to a StepFunc. It is created by setup
// and must not outlive the call.
type Search struct {
	op    string
	f     core.Function
	min   float64
	max   float64
	start float64
	side  core.AllowedSolution
	acc   core.Accuracy
	evals counter.Incrementor
	log   *slog.Logger
}

// Function is the bound target function.
func (s *Search) Function() core.Function { return s.f }

// Min is the lower end of the search interval.
func (s *Search) Min() float64 { return s.min }

// Max is the upper end of the search interval.
func (s *Search) Max() float64 { return s.max }

// Start is the initial guess.
func (s *Search) Start() float64 { return s.start }

// Side is the requested AllowedSolution.
func (s *Search) Side() core.AllowedSolution { return s.side }

// Accuracy is the solver's tolerance contract.
func (s *Search) Accuracy() core.Accuracy { return s.acc }

// Evaluations is the number of budget units consumed so far.
func (s *Search) Evaluations() int { return s.evals.Count() }

// MaxEvaluations is the budget of this call.
func (s *Search) MaxEvaluations() int { return s.evals.MaximalCount() }

// Logger is the solver's logger, tagged with the operation.
func (s *Search) Logger() *slog.Logger { return s.log }

// Increment consumes one budget unit without evaluating anything. Algorithms
// that count iterations rather than evaluations (Laguerre) call it directly.
//
// Errors:
//   - core.ErrTooManyEvaluations (payload: max) when the budget is exhausted.
func (s *Search) Increment() error {
	if err := s.evals.Increment(); err != nil {
		if errors.Is(err, core.ErrCountExceeded) {
			return core.Errorf(s.op, core.ErrTooManyEvaluations, float64(s.evals.MaximalCount()))
		}
		return err
	}

	return nil
}

// Value computes f(x) after consuming one budget unit. All evaluations inside
// a step must go through Value so that the budget is enforced uniformly.
func (s *Search) Value(x float64) (float64, error) {
	if err := s.Increment(); err != nil {
		return 0, err
	}

	return s.f.Value(x), nil
}

// IsBracketing evaluates the bound function at both ends through Value, so
// each end consumes one budget unit.
//
// Errors:
//   - core.ErrTooManyEvaluations (payload: max) when the budget runs out.
func (s *Search) IsBracketing(lo, hi float64) (bool, error) {
	fLo, err := s.Value(lo)
	if err != nil {
		return false, err
	}
	fHi, err := s.Value(hi)
	if err != nil {
		return false, err
	}

	return bracket.Straddles(fLo, fHi), nil
}

// VerifyInterval delegates to bracket.VerifyInterval.
func (s *Search) VerifyInterval(lo, hi float64) error { return bracket.VerifyInterval(lo, hi) }

// VerifySequence delegates to bracket.VerifySequence.
func (s *Search) VerifySequence(lo, mid, hi float64) error {
	return bracket.VerifySequence(lo, mid, hi)
}

// VerifyBracketing checks lo < hi, then evaluates both ends through Value.
//
// Errors:
//   - core.ErrInvalidInterval when lo ≥ hi.
//   - core.ErrTooManyEvaluations when the budget runs out.
//   - core.ErrNoBracketing (payload: lo, hi, f(lo), f(hi)) when the signs agree.
func (s *Search) VerifyBracketing(lo, hi float64) error {
	if err := bracket.VerifyInterval(lo, hi); err != nil {
		return err
	}
	fLo, err := s.Value(lo)
	if err != nil {
		return err
	}
	fHi, err := s.Value(hi)
	if err != nil {
		return err
	}
	if !bracket.Straddles(fLo, fHi) {
		return core.Errorf(s.op, core.ErrNoBracketing, lo, hi, fLo, fHi)
	}

	return nil
}
