// SPDX-License-Identifier: MIT

package bracket

import (
	"math"

	"github.com/katalvlaran/rootfind/core"
)

// Default growth policy of Find.
const (
	DefaultQ = 1.0
	DefaultR = 1.0
)

// Find is Search with q = r = 1 and no iteration limit beyond the bounds.
func Find(f core.Function, initial, lower, upper float64) (Interval, error) {
	return Search(f, initial, lower, upper, DefaultQ, DefaultR, math.MaxInt)
}

// Search expands an interval outward from initial until f changes sign.
//
// Implementation:
//   - Stage 1: validate q > 0, maxIterations > 0 and lower < initial < upper.
//   - Stage 2: δ ← r·δ + q; a = max(initial−δ, lower), b = min(initial+δ, upper).
//   - Stage 3: on the first iteration accept [a,b] if it brackets; afterwards
//     compare each new end against the previous one, so the returned interval
//     is the smallest known bracketing sub-interval.
//
// Returns:
//   - Interval with Lo < Hi and FLo·FHi ≤ 0.
//
// Errors:
//   - core.ErrInvalidArgument for q ≤ 0 or maxIterations ≤ 0.
//   - core.ErrInvalidInterval unless lower < initial < upper.
//   - core.ErrNoBracketing (payload: a, b, f(a), f(b)) when both bounds are
//     reached or maxIterations elapse without a sign change.
//
// Complexity: O(maxIterations) evaluations, two per iteration.
func Search(f core.Function, initial, lower, upper, q, r float64, maxIterations int) (Interval, error) {
	if !(q > 0) {
		return Interval{}, core.Errorf(opSearch+": q", core.ErrInvalidArgument, q)
	}
	if maxIterations <= 0 {
		return Interval{}, core.Errorf(opSearch+": maxIterations", core.ErrInvalidArgument, float64(maxIterations))
	}
	if err := VerifySequence(lower, initial, upper); err != nil {
		return Interval{}, err
	}

	var (
		a, b       = initial, initial
		fa, fb     = math.NaN(), math.NaN()
		delta      = 0.0
		prevA      float64
		prevB      float64
		prevFa     float64
		prevFb     float64
		iterations int
	)
	for iterations = 0; iterations < maxIterations && (a > lower || b < upper); iterations++ {
		prevA, prevFa = a, fa
		prevB, prevFb = b, fb

		delta = r*delta + q
		a = math.Max(initial-delta, lower)
		b = math.Min(initial+delta, upper)
		fa = f.Value(a)
		fb = f.Value(b)

		if iterations == 0 {
			if fa*fb <= 0 {
				return Interval{Lo: a, Hi: b, FLo: fa, FHi: fb}, nil
			}
			continue
		}
		if fa*prevFa <= 0 {
			return Interval{Lo: a, Hi: prevA, FLo: fa, FHi: prevFa}, nil
		}
		if fb*prevFb <= 0 {
			return Interval{Lo: prevB, Hi: b, FLo: prevFb, FHi: fb}, nil
		}
	}

	return Interval{}, core.Errorf(opSearch, core.ErrNoBracketing, a, b, fa, fb)
}
