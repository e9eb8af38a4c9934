// SPDX-License-Identifier: MIT

package brent

import (
	"math"

	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/solver"
)

// Name is the algorithm tag used in logs, errors and metrics.
const Name = "brent"

// Solver is Brent's method on top of the shared lifecycle.
type Solver struct {
	*solver.Base
}

var _ core.BracketedSolver = (*Solver)(nil)

// New builds a Brent solver with the given accuracy.
//
// Errors:
//   - core.ErrInvalidArgument when acc is invalid.
func New(acc core.Accuracy, opts ...solver.Option) (*Solver, error) {
	base, err := solver.NewBase(Name, acc, step, opts...)
	if err != nil {
		return nil, err
	}

	return &Solver{Base: base}, nil
}

// NewDefault builds a solver with absolute accuracy 1e-6 and the default
// relative and function-value accuracies.
func NewDefault(opts ...solver.Option) *Solver {
	s, err := New(core.DefaultAccuracy(core.DefaultAbsoluteAccuracy), opts...)
	if err != nil {
		panic(err) // defaults are valid by construction
	}

	return s
}

// step narrows [min, max] to a bracket around start and runs the Brent loop.
func step(s *solver.Search) (float64, error) {
	var (
		lo, start, hi = s.Min(), s.Start(), s.Max()
		fva           = s.Accuracy().FunctionValue
	)
	if err := s.VerifySequence(lo, start, hi); err != nil {
		return 0, err
	}

	// Stage 1: the initial guess may already be good enough.
	yStart, err := s.Value(start)
	if err != nil {
		return 0, err
	}
	if math.Abs(yStart) <= fva {
		return start, nil
	}

	// Stage 2: lower end, then the [lo, start] bracket.
	yLo, err := s.Value(lo)
	if err != nil {
		return 0, err
	}
	if math.Abs(yLo) <= fva {
		return lo, nil
	}
	if yStart*yLo < 0 {
		return loop(s, lo, start, yLo, yStart)
	}

	// Stage 3: upper end, then the [start, hi] bracket.
	yHi, err := s.Value(hi)
	if err != nil {
		return 0, err
	}
	if math.Abs(yHi) <= fva {
		return hi, nil
	}
	if yStart*yHi < 0 {
		return loop(s, start, hi, yStart, yHi)
	}

	return 0, core.Errorf(Name, core.ErrNoBracketing, lo, hi, yLo, yHi)
}

// loop is the classical Brent iteration on a bracket [lo, hi] with
// fLo·fHi < 0.
//
// Description:
//
//	b is the current best estimate and c the opposite end of the bracket,
//	so f(b) and f(c) always differ in sign. a is the previous b. Each pass
//	tries interpolation and falls back to bisection when it would leave the
//	bracket or shrink it too slowly.
//
// Algorithm Outline:
//  1. If |f(c)| < |f(b)|, rotate so b is the better end.
//  2. tol = 2·rel·|b| + abs, m = (c-b)/2. Stop when |m| ≤ tol or f(b) = 0,
//     choosing b or c with AllowedSolution.Pick.
//  3. If the last step was already small or f(a) is no better than f(b),
//     bisect: d = m.
//  4. Otherwise interpolate: secant when a = c, inverse quadratic when not.
//     Accept p/q only if it lands inside 3/4 of the bracket and is under
//     half of the step before last; else bisect.
//  5. a ← b, then b moves by d (at least tol towards c) and f(b) is
//     evaluated through the budget.
//  6. If f(b) and f(c) now share a sign, c ← a and both steps reset.
//
// Complexity:
//
//	Time   = O(k) evaluations, superlinear near a simple root and never
//	         worse than bisection's log2(width/tol)
//	Memory = O(1)
//
// Errors:
//   - core.ErrTooManyEvaluations when the budget runs out.
func loop(s *solver.Search, lo, hi, fLo, fHi float64) (float64, error) {
	var (
		acc = s.Accuracy()
		t   = acc.Absolute
		eps = acc.Relative

		a, fa = lo, fLo
		b, fb = hi, fHi
		c, fc = a, fa
		d     = b - a
		e     = d

		tol, m, p, q, r, sr float64
		err                 error
	)
	for {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol = 2*eps*math.Abs(b) + t
		m = 0.5 * (c - b)

		if math.Abs(m) <= tol || isZero(fb) {
			return s.Side().Pick(b, fb, c, fc), nil
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// force bisection
			d = m
			e = d
		} else {
			sr = fb / fa
			if a == c {
				// linear interpolation
				p = 2 * m * sr
				q = 1 - sr
			} else {
				// inverse quadratic interpolation
				q = fa / fc
				r = fb / fc
				p = sr * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (sr - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			sr = e
			e = d
			if p >= 1.5*m*q-math.Abs(tol*q) || p >= math.Abs(0.5*sr*q) {
				// interpolation rejected: outside the bracket or too slow
				d = m
				e = d
			} else {
				d = p / q
			}
		}

		a, fa = b, fb
		switch {
		case math.Abs(d) > tol:
			b += d
		case m > 0:
			b += tol
		default:
			b -= tol
		}
		if fb, err = s.Value(b); err != nil {
			return 0, err
		}
		if (fb > 0 && fc > 0) || (fb <= 0 && fc <= 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
}

// isZero treats ±0 and the two subnormals adjacent to zero as exact zeros.
func isZero(v float64) bool { return math.Abs(v) <= math.SmallestNonzeroFloat64 }
