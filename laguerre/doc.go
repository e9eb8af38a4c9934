// Package laguerre implements Laguerre's method for polynomial roots.
//
// 🚀 What is Laguerre's method?
//
//	A globally convergent iteration for polynomial roots. At each iterate z
//	it evaluates P, P' and P'' in one synchronized Horner pass and forms
//
//	  G = P'/P,  H = G² − P''/P,  δ = (n−1)(nH − G²)
//	  z ← z − n / (G ± √δ)
//
//	choosing the sign that maximizes |G ± √δ|. Convergence is cubic near
//	simple roots and the method works from almost any starting point,
//	including purely real starts converging to complex roots.
//
// ✨ Entry points:
//   - Solve / SolveFrom            : a real root of a poly.Polynomial in [min, max]
//   - SolveComplex                 : one complex root from an initial guess
//   - SolveAllComplex              : every root, in deflation order
//   - *WithBudget variants         : the same with an explicit evaluation budget
//
// Deflation:
//
//	After each root r is found the coefficient vector is divided by (x − r)
//	with a backward synthetic-division pass, so the next search runs on a
//	polynomial one degree lower. Roots are returned in the order they were
//	peeled off, not sorted.
//
// Errors:
//   - core.ErrNoData             : empty or constant coefficient vector.
//   - core.ErrTooManyEvaluations : each Laguerre iteration consumes one budget unit.
//   - core.ErrNoBracketing       : no real root could be located in [min, max].
//   - core.ErrInvalidArgument    : the real entry point was given a non-polynomial function.
package laguerre
