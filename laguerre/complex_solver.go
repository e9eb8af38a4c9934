// SPDX-License-Identifier: MIT

package laguerre

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/cplx"
	"github.com/katalvlaran/rootfind/solver"
)

// complexSolver runs Laguerre iterations on complex coefficients, consuming
// budget from the Search it is bound to.
type complexSolver struct {
	search *solver.Search
	acc    core.Accuracy
}

// solve finds one root of the polynomial with the given ascending
// coefficients, starting at initial.
//
// Description:
//
//	Laguerre's method converges cubically to simple roots from almost any
//	start, and the complex square root lets it leave the real axis. Every
//	iteration consumes one budget unit of the bound Search.
//
// Algorithm Outline:
//  1. Evaluate P(z), P'(z) and P''(z) in one Horner pass.
//  2. Stop when |z - z_prev| ≤ max(rel·|z|, abs) or |P(z)| ≤ fva.
//  3. G = P'/P, H = G² - P''/P, Δ = (n-1)(nH - G²).
//  4. Take the denominator G ± √Δ with the larger modulus.
//  5. z ← z - n/denominator. A zero denominator nudges z by (abs, abs) and
//     forgets z_prev, so the next pass cannot stop on it.
//  6. Consume one budget unit and repeat.
//
// Complexity:
//
//	Time   = O(n) per iteration for a degree-n polynomial
//	Memory = O(1)
//
// Errors:
//   - core.ErrNoData when the polynomial has degree < 1.
//   - core.ErrTooManyEvaluations when the budget runs out.
func (cs complexSolver) solve(coeffs []complex128, initial complex128) (complex128, error) {
	n := len(coeffs) - 1
	if n <= 0 {
		return 0, core.Errorf(opSolveComplex, core.ErrNoData)
	}

	var (
		absAcc = cs.acc.Absolute
		relAcc = cs.acc.Relative
		fva    = cs.acc.FunctionValue

		nC  = complex(float64(n), 0)
		n1C = complex(float64(n-1), 0)

		z    = initial
		oldz = complex(math.Inf(1), math.Inf(1))

		pv, dv, d2v complex128
		tolerance   float64
	)
	for {
		// P, P' and P''/2 in one pass
		pv = coeffs[n]
		dv, d2v = 0, 0
		for j := n - 1; j >= 0; j-- {
			d2v = dv + z*d2v
			dv = pv + z*dv
			pv = coeffs[j] + z*pv
		}
		d2v *= 2

		tolerance = math.Max(relAcc*cmplx.Abs(z), absAcc)
		if cmplx.Abs(z-oldz) <= tolerance {
			return z, nil
		}
		if cmplx.Abs(pv) <= fva {
			return z, nil
		}

		g := dv / pv
		g2 := g * g
		h := g2 - d2v/pv
		delta := n1C * (nC*h - g2)
		deltaSqrt := cplx.Sqrt(delta)
		dplus := g + deltaSqrt
		dminus := g - deltaSqrt
		denominator := dminus
		if cmplx.Abs(dplus) > cmplx.Abs(dminus) {
			denominator = dplus
		}

		if denominator == 0 {
			// e.g. x³+1 at z=0: nudge and force another full iteration
			z += complex(absAcc, absAcc)
			oldz = complex(math.Inf(1), math.Inf(1))
		} else {
			oldz = z
			z -= nC / denominator
		}

		if err := cs.search.Increment(); err != nil {
			return 0, err
		}
	}
}

// solveAll finds all n roots by repeated solve + deflation.
func (cs complexSolver) solveAll(coeffs []complex128, initial complex128) ([]complex128, error) {
	n := len(coeffs) - 1
	if n <= 0 {
		return nil, core.Errorf(opSolveAllComplex, core.ErrNoData)
	}

	c := make([]complex128, n+1)
	copy(c, coeffs)
	roots := make([]complex128, n)
	for i := 0; i < n; i++ {
		r, err := cs.solve(c[:n-i+1], initial)
		if err != nil {
			return nil, err
		}
		roots[i] = r

		// synthetic division by (x - r), folding from the top coefficient down
		newc := c[n-i]
		for j := n - i - 1; j >= 0; j-- {
			oldc := c[j]
			c[j] = newc
			newc = oldc + newc*r
		}
	}

	return roots, nil
}

// isRoot accepts z as a real root in (min, max) when its imaginary part is
// within tolerance or |z| is below the function-value accuracy.
func (cs complexSolver) isRoot(min, max float64, z complex128) bool {
	return isRoot(cs.acc, min, max, z)
}

func isRoot(acc core.Accuracy, min, max float64, z complex128) bool {
	if !(min < real(z) && real(z) < max) {
		return false
	}
	tolerance := math.Max(acc.Relative*cmplx.Abs(z), acc.Absolute)

	return math.Abs(imag(z)) <= tolerance || cmplx.Abs(z) <= acc.FunctionValue
}
