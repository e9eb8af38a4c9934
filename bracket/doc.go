// Package bracket contains the interval utilities shared by all solvers:
// sign-change verification, outward bracket search and side forcing.
//
// Validators return plain sentinels wrapped in a *core.Error carrying the
// values involved, so callers can match with errors.Is and still inspect the
// numbers with errors.As.
//
// Search grows an interval around an initial guess with the recurrence
//
//	δ₀ = 0,  δ_{k+1} = r·δ_k + q
//
// evaluating f at max(initial−δ, lower) and min(initial+δ, upper) until the
// function changes sign. q = r = 1 gives linear growth; r = 2 gives roughly
// geometric growth.
//
// ForceSide refines a root found by a non-bracketing method onto a requested
// side (core.AllowedSolution) using any core.BracketedSolver.
package bracket
