// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/rootfind/core"
)

// Polynomial is an immutable real polynomial. The zero value is not usable;
// build one with New or Zero.
type Polynomial struct {
	coeffs []float64 // ascending degree, trimmed, len ≥ 1
}

var _ core.Function = Polynomial{}

// New builds a Polynomial from ascending-degree coefficients. The input is
// copied and trailing zeros are trimmed.
//
// Errors:
//   - core.ErrNoData when no coefficient is given.
func New(coeffs ...float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, core.Errorf(opNew, core.ErrNoData)
	}

	return Polynomial{coeffs: trim(coeffs)}, nil
}

// MustNew is New for literals known to be valid; it panics on an empty input.
func MustNew(coeffs ...float64) Polynomial {
	p, err := New(coeffs...)
	if err != nil {
		panic(err)
	}

	return p
}

// Zero returns the zero polynomial [0].
func Zero() Polynomial { return Polynomial{coeffs: []float64{0}} }

// Degree is len(coefficients)-1; the zero polynomial has degree 0.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coefficients returns a copy of the coefficients in ascending degree order.
func (p Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 1 && p.coeffs[0] == 0 }

// Value evaluates p at x (Horner). An unusable zero-value Polynomial yields NaN.
func (p Polynomial) Value(x float64) float64 {
	if len(p.coeffs) == 0 {
		return math.NaN()
	}

	return horner(p.coeffs, x)
}

// ComplexValue evaluates p at a complex argument.
func (p Polynomial) ComplexValue(z complex128) complex128 {
	if len(p.coeffs) == 0 {
		return complex(math.NaN(), math.NaN())
	}
	n := len(p.coeffs)
	result := complex(p.coeffs[n-1], 0)
	for j := n - 2; j >= 0; j-- {
		result = z*result + complex(p.coeffs[j], 0)
	}

	return result
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	lo, hi := p.coeffs, q.coeffs
	if len(lo) > len(hi) {
		lo, hi = hi, lo
	}
	out := make([]float64, len(hi))
	copy(out, hi)
	for i, c := range lo {
		out[i] += c
	}

	return Polynomial{coeffs: trim(out)}
}

// Subtract returns p - q.
func (p Polynomial) Subtract(q Polynomial) Polynomial {
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]float64, n)
	copy(out, p.coeffs)
	for i, c := range q.coeffs {
		out[i] -= c
	}

	return Polynomial{coeffs: trim(out)}
}

// Negate returns -p.
func (p Polynomial) Negate() Polynomial {
	out := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = -c
	}

	return Polynomial{coeffs: trim(out)}
}

// Multiply returns p·q (discrete convolution of the coefficient vectors).
func (p Polynomial) Multiply(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Zero()
	}
	out := make([]float64, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] += a * b
		}
	}

	return Polynomial{coeffs: trim(out)}
}

// Derivative returns p'. The derivative of a constant is the zero polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coeffs) == 0 {
		return Zero()
	}
	d, _ := Differentiate(p.coeffs) // non-empty by construction

	return Polynomial{coeffs: trim(d)}
}

// DerivativeFunc returns p' as a core.Function.
func (p Polynomial) DerivativeFunc() core.Function { return p.Derivative() }

// Equal reports coefficient-wise equality within tol.
func (p Polynomial) Equal(q Polynomial, tol float64) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if math.Abs(p.coeffs[i]-q.coeffs[i]) > tol {
			return false
		}
	}

	return true
}

// String renders p in ascending order, e.g. "-3 + 5 x + 2 x^2".
// Zero coefficients are skipped; unit coefficients drop the "1".
func (p Polynomial) String() string {
	if len(p.coeffs) == 0 || p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i, c := range p.coeffs {
		if c == 0 {
			continue
		}
		abs := math.Abs(c)
		switch {
		case first && c < 0:
			sb.WriteByte('-')
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false
		if i == 0 || abs != 1 {
			sb.WriteString(strconv.FormatFloat(abs, 'g', -1, 64))
			if i > 0 {
				sb.WriteByte(' ')
			}
		}
		if i > 0 {
			sb.WriteByte('x')
		}
		if i > 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(i))
		}
	}

	return sb.String()
}
