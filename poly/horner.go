// SPDX-License-Identifier: MIT

package poly

import "github.com/katalvlaran/rootfind/core"

// Operation tags used when wrapping sentinels.
const (
	opEvaluate        = "poly.Evaluate"
	opEvaluateComplex = "poly.EvaluateComplex"
	opDifferentiate   = "poly.Differentiate"
	opNew             = "poly.New"
)

// Evaluate computes Σ coeffs[i]·xⁱ with Horner's method, folding from the
// highest degree down.
//
// Errors:
//   - core.ErrNoData when coeffs is empty.
//
// Complexity: O(n).
func Evaluate(coeffs []float64, x float64) (float64, error) {
	n := len(coeffs)
	if n == 0 {
		return 0, core.Errorf(opEvaluate, core.ErrNoData)
	}

	return horner(coeffs, x), nil
}

// horner assumes len(coeffs) > 0.
func horner(coeffs []float64, x float64) float64 {
	n := len(coeffs)
	result := coeffs[n-1]
	for j := n - 2; j >= 0; j-- {
		result = x*result + coeffs[j]
	}

	return result
}

// EvaluateComplex is Evaluate over complex coefficients and argument.
func EvaluateComplex(coeffs []complex128, z complex128) (complex128, error) {
	n := len(coeffs)
	if n == 0 {
		return 0, core.Errorf(opEvaluateComplex, core.ErrNoData)
	}
	result := coeffs[n-1]
	for j := n - 2; j >= 0; j-- {
		result = z*result + coeffs[j]
	}

	return result, nil
}

// Differentiate returns the coefficients of the derivative: coefficient i
// maps to i·coeffs[i] at index i-1. A constant yields [0].
//
// Errors:
//   - core.ErrNoData when coeffs is empty.
func Differentiate(coeffs []float64) ([]float64, error) {
	n := len(coeffs)
	if n == 0 {
		return nil, core.Errorf(opDifferentiate, core.ErrNoData)
	}
	if n == 1 {
		return []float64{0}, nil
	}
	out := make([]float64, n-1)
	for i := n - 1; i > 0; i-- {
		out[i-1] = float64(i) * coeffs[i]
	}

	return out, nil
}

// trim returns a fresh copy of coeffs without trailing zeros, keeping at least one entry.
func trim(coeffs []float64) []float64 {
	n := len(coeffs)
	for n > 1 && coeffs[n-1] == 0 {
		n--
	}
	out := make([]float64, n)
	copy(out, coeffs[:n])

	return out
}
