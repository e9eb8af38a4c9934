// SPDX-License-Identifier: MIT

package core

// AllowedSolution selects which approximation of a root a bracketed solver may return.
//
// A converged bracketing solver holds two points straddling the root. Which of
// them is acceptable depends on the caller:
//
//   - AnySide  : the solver's best estimate, whichever side it lies on.
//   - LeftSide : the smaller abscissa (x ≤ root).
//   - RightSide: the larger abscissa (x ≥ root).
//   - BelowSide: a point where f(x) ≤ 0.
//   - AboveSide: a point where f(x) ≥ 0.
type AllowedSolution int

const (
	// AnySide accepts whichever bracket end the algorithm considers best.
	AnySide AllowedSolution = iota

	// LeftSide accepts only solutions lying at or left of the true root.
	LeftSide

	// RightSide accepts only solutions lying at or right of the true root.
	RightSide

	// BelowSide accepts only solutions where f(x) ≤ 0.
	BelowSide

	// AboveSide accepts only solutions where f(x) ≥ 0.
	AboveSide
)

// String returns a lower-case, hyphenated name ("any-side", "left-side", ...).
func (s AllowedSolution) String() string {
	switch s {
	case AnySide:
		return "any-side"
	case LeftSide:
		return "left-side"
	case RightSide:
		return "right-side"
	case BelowSide:
		return "below-side"
	case AboveSide:
		return "above-side"
	default:
		return "unknown-side"
	}
}

// ParseAllowedSolution is the inverse of String. Unknown names yield ErrInvalidArgument.
func ParseAllowedSolution(name string) (AllowedSolution, error) {
	for s := AnySide; s <= AboveSide; s++ {
		if s.String() == name {
			return s, nil
		}
	}

	return AnySide, Errorf("core.ParseAllowedSolution", ErrInvalidArgument)
}

// Pick chooses between two bracket ends according to s.
//
// (x0, f0) is the algorithm's best estimate and (x1, f1) the opposite end of
// the final bracket; f0 and f1 must not share a strict sign. An exact zero
// always wins.
func (s AllowedSolution) Pick(x0, f0, x1, f1 float64) float64 {
	if f0 == 0 {
		return x0
	}
	switch s {
	case LeftSide:
		if x0 <= x1 {
			return x0
		}
		return x1
	case RightSide:
		if x0 >= x1 {
			return x0
		}
		return x1
	case BelowSide:
		if f0 <= 0 {
			return x0
		}
		return x1
	case AboveSide:
		if f0 >= 0 {
			return x0
		}
		return x1
	default:
		return x0
	}
}

// BracketedSolver is a solver able to honour an AllowedSolution on a bracket.
// It is what bracket.ForceSide needs to refine a root found by a
// non-bracketing method.
type BracketedSolver interface {
	// Accuracy reports the tolerances the solver converges to.
	Accuracy() Accuracy

	// SolveSide finds a root of f in [min, max] starting from start, returning
	// an approximation on the requested side.
	SolveSide(maxEval int, f Function, min, max, start float64, side AllowedSolution) (float64, error)
}
