// SPDX-License-Identifier: MIT

package laguerre

import (
	"math"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/counter"
	"github.com/katalvlaran/rootfind/cplx"
	"github.com/katalvlaran/rootfind/poly"
	"github.com/katalvlaran/rootfind/solver"
)

// Name is the algorithm tag used in logs, errors and metrics.
const Name = "laguerre"

const (
	opSolveComplex    = "laguerre.SolveComplex"
	opSolveAllComplex = "laguerre.SolveAllComplex"
)

// coefficienter is satisfied by poly.Polynomial.
type coefficienter interface {
	Coefficients() []float64
}

// Solver is Laguerre's method on top of the shared lifecycle.
// The real entry points require the bound function to be a poly.Polynomial.
type Solver struct {
	*solver.Base
}

// New builds a Laguerre solver with the given accuracy.
func New(acc core.Accuracy, opts ...solver.Option) (*Solver, error) {
	base, err := solver.NewBase(Name, acc, realStep, opts...)
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

// Solve finds a real root of p in [min, max], starting from the midpoint.
func (s *Solver) Solve(maxEval int, p poly.Polynomial, min, max float64) (float64, error) {
	return s.Base.Solve(maxEval, p, min, max)
}

// SolveFrom finds a real root of p in [min, max], starting from start.
func (s *Solver) SolveFrom(maxEval int, p poly.Polynomial, min, max, start float64) (float64, error) {
	return s.Base.SolveFrom(maxEval, p, min, max, start)
}

// SolveComplex finds one complex root of the polynomial with the given
// ascending coefficients, with an unbounded evaluation budget.
func (s *Solver) SolveComplex(coeffs []float64, initial float64) (complex128, error) {
	return s.SolveComplexWithBudget(counter.Unlimited, coeffs, initial)
}

// SolveAllComplex finds every complex root (deflation order), with an
// unbounded evaluation budget.
func (s *Solver) SolveAllComplex(coeffs []float64, initial float64) ([]complex128, error) {
	return s.SolveAllComplexWithBudget(counter.Unlimited, coeffs, initial)
}

// SolveComplexWithBudget is SolveComplex with at most maxEval iterations.
func (s *Solver) SolveComplexWithBudget(maxEval int, coeffs []float64, initial float64) (complex128, error) {
	var root complex128
	_, err := s.runComplex(maxEval, coeffs, initial, opSolveComplex, func(cs complexSolver, c []complex128) error {
		var err error
		root, err = cs.solve(c, complex(initial, 0))
		return err
	})
	if err != nil {
		return 0, err
	}

	return root, nil
}

// SolveAllComplexWithBudget is SolveAllComplex with at most maxEval
// iterations in total. It is all-or-nothing: no partial roots on failure.
func (s *Solver) SolveAllComplexWithBudget(maxEval int, coeffs []float64, initial float64) ([]complex128, error) {
	var roots []complex128
	_, err := s.runComplex(maxEval, coeffs, initial, opSolveAllComplex, func(cs complexSolver, c []complex128) error {
		var err error
		roots, err = cs.solveAll(c, complex(initial, 0))
		return err
	})
	if err != nil {
		return nil, err
	}

	return roots, nil
}

// runComplex runs a complex search through the lifecycle over (-∞, +∞) so
// that budget, logging and observers behave exactly as for real solves.
func (s *Solver) runComplex(maxEval int, coeffs []float64, initial float64, op string,
	body func(complexSolver, []complex128) error) (solver.Result, error) {
	if len(coeffs) == 0 {
		return solver.Result{}, core.Errorf(op, core.ErrNoData)
	}
	p, err := poly.New(coeffs...)
	if err != nil {
		return solver.Result{}, err
	}
	c := cplx.FromReals(p.Coefficients())
	step := func(search *solver.Search) (float64, error) {
		return 0, body(complexSolver{search: search, acc: search.Accuracy()}, c)
	}

	return s.RunWith(step, maxEval, p, math.Inf(-1), math.Inf(1), initial, core.AnySide)
}

// IsRoot reports whether z is acceptably real and lies strictly inside (min, max).
func (s *Solver) IsRoot(min, max float64, z complex128) bool {
	return isRoot(s.Accuracy(), min, max, z)
}

// realStep mirrors Brent's bracket narrowing, then delegates to the complex solver.
func realStep(search *solver.Search) (float64, error) {
	pf, ok := search.Function().(coefficienter)
	if !ok {
		return 0, core.Errorf(Name+": function is not a polynomial", core.ErrInvalidArgument)
	}
	if len(pf.Coefficients()) == 0 {
		return 0, core.Errorf(Name, core.ErrNoData)
	}
	var (
		lo, start, hi = search.Min(), search.Start(), search.Max()
		fva           = search.Accuracy().FunctionValue
		cs            = complexSolver{search: search, acc: search.Accuracy()}
		coeffs        = cplx.FromReals(pf.Coefficients())
	)
	if err := search.VerifySequence(lo, start, hi); err != nil {
		return 0, err
	}

	yStart, err := search.Value(start)
	if err != nil {
		return 0, err
	}
	if math.Abs(yStart) <= fva {
		return start, nil
	}

	yLo, err := search.Value(lo)
	if err != nil {
		return 0, err
	}
	if math.Abs(yLo) <= fva {
		return lo, nil
	}
	if yStart*yLo < 0 {
		return locate(cs, coeffs, lo, start)
	}

	yHi, err := search.Value(hi)
	if err != nil {
		return 0, err
	}
	if math.Abs(yHi) <= fva {
		return hi, nil
	}
	if yStart*yHi < 0 {
		return locate(cs, coeffs, start, hi)
	}

	return 0, core.Errorf(Name, core.ErrNoBracketing, lo, hi, yLo, yHi)
}

// locate runs a single Laguerre search from the bracket midpoint and, when
// that root is not real and inside (lo, hi), scans all deflated roots.
func locate(cs complexSolver, coeffs []complex128, lo, hi float64) (float64, error) {
	z := complex(bracket.Midpoint(lo, hi), 0)
	root, err := cs.solve(coeffs, z)
	if err != nil {
		return 0, err
	}
	if cs.isRoot(lo, hi, root) {
		return real(root), nil
	}

	roots, err := cs.solveAll(coeffs, z)
	if err != nil {
		return 0, err
	}
	for _, r := range roots {
		if cs.isRoot(lo, hi, r) {
			return real(r), nil
		}
	}

	return 0, core.Errorf(Name+": no real root in bracket", core.ErrNoBracketing, lo, hi)
}
