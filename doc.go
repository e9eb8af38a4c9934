// Package rootfind finds zeros of real functions of one variable, with
// special support for real polynomials and their complex roots.
//
// 🚀 What is in the box?
//
//	• Brent's method: bracketed, superlinear, never leaves the bracket
//	• Laguerre's method: real roots of polynomials in an interval, and every
//	  complex root through deflation
//	• Bisection: the slow, always-converging reference
//	• Bracketing utilities: validation, outward bracket search, side forcing
//	• Polynomials: immutable values with Horner evaluation and algebra
//	• An evaluation budget on every call and typed, wrapped errors
//
// Packages:
//
//	core/      : Function, Accuracy, AllowedSolution, sentinel errors
//	poly/      : Polynomial, Horner evaluation, derivative, algebra
//	cplx/      : complex helpers (polar form, principal sqrt, text form)
//	counter/   : the evaluation-count guard
//	bracket/   : IsBracketing, Verify*, Search, ForceSide
//	solver/    : the lifecycle shared by all solvers (setup, budget, observers)
//	brent/     : Brent's method
//	laguerre/  : Laguerre's method (real and complex entry points)
//	bisection/ : bisection
//	config/    : YAML + environment configuration
//	metrics/   : Prometheus observer for solve calls
//	render/    : function plots with gonum/plot
//	cmd/rootfind: the command-line tool
//
// Quick example:
//
//	p := poly.MustNew(-3, 5, 2)        // 2x² + 5x − 3
//	s := brent.NewDefault()
//	x, err := s.Solve(100, p, 0, 2)    // x ≈ 0.5
//
// Every solve call takes an evaluation budget; exceeding it returns
// core.ErrTooManyEvaluations. Match errors with errors.Is against the core
// sentinels.
//
//	go get github.com/katalvlaran/rootfind
package rootfind
