// SPDX-License-Identifier: MIT

package laguerre_test

import (
	"testing"

	"github.com/katalvlaran/rootfind/laguerre"
	"github.com/katalvlaran/rootfind/poly"
)

// BenchmarkSolve_Quintic measures one bracketed real solve.
func BenchmarkSolve_Quintic(b *testing.B) {
	s := laguerre.NewDefault()
	p := poly.MustNew(quintic...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Solve(100, p, 3, 6)
	}
}

// BenchmarkSolveAllComplex measures full deflation of a degree-5 polynomial.
func BenchmarkSolveAllComplex(b *testing.B) {
	s := laguerre.NewDefault()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.SolveAllComplex(quinticComplex, 0)
	}
}
