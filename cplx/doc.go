// Package cplx holds the small set of complex-number helpers the polynomial
// solvers need on top of Go's native complex128: polar construction, real
// powers through the polar form, principal square roots, promotion of real
// coefficient vectors and a plain (non-localized) text format.
//
// Usage:
//
//	z, _ := cplx.Polar(2, math.Pi/3)
//	r := cplx.Sqrt(z)                 // principal root, via Pow(z, 0.5)
//	cs := cplx.FromReals([]float64{1, 0, 1})
//	s := cplx.Format(r, cplx.DefaultFormat())
package cplx
