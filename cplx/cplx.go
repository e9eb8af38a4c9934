// SPDX-License-Identifier: MIT

package cplx

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/rootfind/core"
)

// Polar builds r·e^{iθ}. A negative modulus is rejected with core.ErrInvalidArgument.
func Polar(r, theta float64) (complex128, error) {
	if r < 0 || math.IsNaN(r) {
		return 0, core.Errorf("cplx.Polar", core.ErrInvalidArgument, r)
	}

	return complex(r*math.Cos(theta), r*math.Sin(theta)), nil
}

// Pow raises z to the real power x through the polar form |z|^x · e^{i·x·arg z}.
// Pow(0, x) is 0 for x > 0 and 1 for x == 0.
func Pow(z complex128, x float64) complex128 {
	if z == 0 {
		if x == 0 {
			return 1
		}
		return 0
	}
	r, theta := cmplx.Polar(z)
	mod := math.Pow(r, x)

	return complex(mod*math.Cos(x*theta), mod*math.Sin(x*theta))
}

// Sqrt returns the principal square root of z, computed as Pow(z, 0.5).
// The result always has a non-negative real part.
func Sqrt(z complex128) complex128 { return Pow(z, 0.5) }

// FromReals promotes a real vector to a fresh complex vector.
func FromReals(xs []float64) []complex128 {
	out := make([]complex128, len(xs))
	for i, x := range xs {
		out[i] = complex(x, 0)
	}

	return out
}

// RealParts extracts the real parts of zs into a fresh slice.
func RealParts(zs []complex128) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = real(z)
	}

	return out
}

// IsReal reports whether |Im z| ≤ tol.
func IsReal(z complex128, tol float64) bool { return math.Abs(imag(z)) <= tol }

// Equal reports whether |a-b| ≤ tol.
func Equal(a, b complex128, tol float64) bool { return cmplx.Abs(a-b) <= tol }
