// Package brent implements Brent's method for real, bracketed root finding.
//
// Brent's method keeps three points a, b, c with f(b) the smallest-magnitude
// value seen and [b, c] a bracket. Each step tries inverse quadratic
// interpolation (or secant when only two distinct points are known) and
// falls back to bisection whenever the interpolated step would leave the
// bracket or fail to shrink it faster than half the step before last. The
// result combines the robustness of bisection with superlinear convergence
// on smooth functions.
//
// Algorithm Outline:
//  1. If |f(start)| ≤ FunctionValue accuracy, return start; likewise for min and max.
//  2. Pick the sub-bracket [min, start] or [start, max] with a sign change;
//     neither → core.ErrNoBracketing.
//  3. Iterate until |m| ≤ 2·rel·|b| + abs (m = half bracket width) or f(b) = 0.
//
// Usage:
//
//	s := brent.NewDefault()
//	root, err := s.Solve(100, core.Func(math.Cos), 0, 3)   // π/2
//
// The solver honours core.AllowedSolution through SolveSide, so it can serve
// bracket.ForceSide.
package brent
