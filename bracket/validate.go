// SPDX-License-Identifier: MIT

package bracket

import (
	"math"

	"github.com/katalvlaran/rootfind/core"
)

// Operation tags.
const (
	opVerifyInterval   = "bracket.VerifyInterval"
	opVerifySequence   = "bracket.VerifySequence"
	opVerifyBracketing = "bracket.VerifyBracketing"
	opSearch           = "bracket.Search"
	opForceSide        = "bracket.ForceSide"
)

// Interval is a closed interval together with the function values at its ends.
type Interval struct {
	Lo, Hi   float64
	FLo, FHi float64
}

// Width is Hi-Lo.
func (iv Interval) Width() float64 { return iv.Hi - iv.Lo }

// Midpoint returns lo + (hi-lo)/2, falling back to lo/2 + hi/2 when the width
// itself overflows. The result is finite for finite ends.
func Midpoint(lo, hi float64) float64 {
	if w := hi - lo; !math.IsInf(w, 0) {
		return lo + 0.5*w
	}

	return 0.5*lo + 0.5*hi
}

// Straddles is true when fLo and fHi have opposite signs or either is zero.
func Straddles(fLo, fHi float64) bool {
	return (fLo >= 0 && fHi <= 0) || (fLo <= 0 && fHi >= 0)
}

// IsBracketing reports whether f(lo) and f(hi) have opposite signs or either is exactly zero.
func IsBracketing(f core.Function, lo, hi float64) bool {
	return Straddles(f.Value(lo), f.Value(hi))
}

// IsSequence reports whether start < mid < end.
func IsSequence(start, mid, end float64) bool { return start < mid && mid < end }

// VerifyInterval fails with core.ErrInvalidInterval when lo ≥ hi (or either is NaN).
func VerifyInterval(lo, hi float64) error {
	if !(lo < hi) {
		return core.Errorf(opVerifyInterval, core.ErrInvalidInterval, lo, hi)
	}

	return nil
}

// VerifySequence fails with core.ErrInvalidInterval unless lo < mid < hi.
func VerifySequence(lo, mid, hi float64) error {
	if !IsSequence(lo, mid, hi) {
		return core.Errorf(opVerifySequence, core.ErrInvalidInterval, lo, mid, hi)
	}

	return nil
}

// VerifyBracketing checks the interval, then the sign change.
//
// Errors:
//   - core.ErrInvalidInterval when lo ≥ hi.
//   - core.ErrNoBracketing (payload: lo, hi, f(lo), f(hi)) when the signs do not straddle zero.
func VerifyBracketing(f core.Function, lo, hi float64) error {
	if err := VerifyInterval(lo, hi); err != nil {
		return err
	}
	fLo, fHi := f.Value(lo), f.Value(hi)
	if !Straddles(fLo, fHi) {
		return core.Errorf(opVerifyBracketing, core.ErrNoBracketing, lo, hi, fLo, fHi)
	}

	return nil
}
