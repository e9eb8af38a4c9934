// Package core defines the shared vocabulary of every root-finding algorithm
// in rootfind: the Function abstraction, the accuracy contract, the
// allowed-solution side selector and the failure taxonomy.
//
// 🚀 What lives here?
//
//	Nothing in core evaluates anything by itself. It is the contract layer
//	that the solver lifecycle (package solver), the bracketing utilities
//	(package bracket) and the concrete algorithms (brent, laguerre, bisection)
//	agree on:
//	  • Function / Func    : any real→real mapping (closures and polynomials)
//	  • Accuracy           : absolute, relative and function-value tolerances
//	  • AllowedSolution    : which side of the root a caller accepts
//	  • BracketedSolver    : a solver that honours AllowedSolution
//	  • Error + sentinels  : structured failures matched with errors.Is
//
// Errors:
//
//	ErrInvalidArgument    - malformed configuration (e.g. q ≤ 0, maxIterations ≤ 0).
//	ErrInvalidInterval    - lower ≥ upper where a strict interval is required.
//	ErrNoBracketing       - endpoints do not straddle a sign change.
//	ErrTooManyEvaluations - the evaluation budget was exhausted before convergence.
//	ErrNoData             - empty coefficient vector.
//	ErrCountExceeded      - raw counter overflow; solvers translate it to ErrTooManyEvaluations.
//
// Every failure raised by the library is either one of these sentinels or a
// *Error whose Kind is one of them, so
//
//	if errors.Is(err, core.ErrNoBracketing) { /* widen the interval */ }
//
// works uniformly. The numeric payload (bounds, function values, budgets) is
// available through errors.As for callers that want to render their own
// messages.
package core
