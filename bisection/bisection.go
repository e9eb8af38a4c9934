// SPDX-License-Identifier: MIT

// Package bisection implements the plain bisection method on the shared
// solver lifecycle. It is slow (one bit per evaluation) but never fails on a
// valid bracket, which makes it a useful reference for the faster solvers.
package bisection

import (
	"math"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/solver"
)

// Name is the algorithm tag used in logs, errors and metrics.
const Name = "bisection"

// Solver halves a bracket until it is narrower than the accuracy.
type Solver struct {
	*solver.Base
}

var _ core.BracketedSolver = (*Solver)(nil)

// New builds a bisection solver.
func New(acc core.Accuracy, opts ...solver.Option) (*Solver, error) {
	base, err := solver.NewBase(Name, acc, step, opts...)
	if err != nil {
		return nil, err
	}

	return &Solver{Base: base}, nil
}

// NewDefault builds a solver with absolute accuracy 1e-6.
func NewDefault(opts ...solver.Option) *Solver {
	s, err := New(core.DefaultAccuracy(core.DefaultAbsoluteAccuracy), opts...)
	if err != nil {
		panic(err)
	}

	return s
}

func step(s *solver.Search) (float64, error) {
	lo, hi := s.Min(), s.Max()
	if err := s.VerifyInterval(lo, hi); err != nil {
		return 0, err
	}
	acc := s.Accuracy()

	fLo, err := s.Value(lo)
	if err != nil {
		return 0, err
	}
	fHi, err := s.Value(hi)
	if err != nil {
		return 0, err
	}
	if math.Abs(fLo) <= acc.FunctionValue {
		return lo, nil
	}
	if math.Abs(fHi) <= acc.FunctionValue {
		return hi, nil
	}
	if fLo*fHi > 0 {
		return 0, core.Errorf(Name, core.ErrNoBracketing, lo, hi, fLo, fHi)
	}

	for {
		m := bracket.Midpoint(lo, hi)
		fm, err := s.Value(m)
		if err != nil {
			return 0, err
		}
		if fm == 0 {
			return m, nil
		}
		if fm*fLo > 0 {
			lo, fLo = m, fm
		} else {
			hi, fHi = m, fm
		}
		if math.Abs(hi-lo) <= acc.Tolerance(m) {
			if s.Side() == core.AnySide {
				return bracket.Midpoint(lo, hi), nil
			}
			return s.Side().Pick(lo, fLo, hi, fHi), nil
		}
	}
}
