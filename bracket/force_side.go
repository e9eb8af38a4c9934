// SPDX-License-Identifier: MIT

package bracket

import (
	"errors"
	"math"

	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/counter"
)

// ForceSide turns a root found by a non-bracketing method into one on the
// requested side.
//
// Implementation:
//   - Stage 1: AnySide returns baseRoot unchanged.
//   - Stage 2: step = max(absAcc, |baseRoot|·relAcc) of the bracketing solver;
//     evaluate f at baseRoot±step (clamped to [min, max]).
//   - Stage 3: while the ends do not straddle zero, move the end(s) that can
//     still reach a sign change outward by one step (both when f looks flat).
//   - Stage 4: hand the small bracket to solver.SolveSide with the remaining budget.
//
// Every evaluation made here consumes one unit of maxEval.
//
// Errors:
//   - core.ErrInvalidArgument for a nil solver.
//   - core.ErrNoBracketing (payload: xLo, xHi, fLo, fHi, used, maxEval, baseRoot, min, max)
//     when the budget runs out (or both bounds are reached) before a sign change is seen.
//   - any error returned by solver.SolveSide.
func ForceSide(maxEval int, f core.Function, solver core.BracketedSolver,
	baseRoot, min, max float64, side core.AllowedSolution) (float64, error) {
	if side == core.AnySide {
		return baseRoot, nil
	}
	if solver == nil {
		return 0, core.Errorf(opForceSide+": nil solver", core.ErrInvalidArgument)
	}

	acc := solver.Accuracy()
	step := math.Max(acc.Absolute, math.Abs(baseRoot*acc.Relative))
	evals := counter.New(maxEval)

	var (
		xLo, xHi = math.Max(min, baseRoot-step), math.Min(max, baseRoot+step)
		fLo, fHi float64
		err      error
	)
	if fLo, err = evaluate(&evals, f, xLo); err != nil {
		return 0, exhausted(xLo, xHi, math.NaN(), math.NaN(), evals, baseRoot, min, max)
	}
	if fHi, err = evaluate(&evals, f, xHi); err != nil {
		return 0, exhausted(xLo, xHi, fLo, math.NaN(), evals, baseRoot, min, max)
	}

	for evals.CanIncrement() {
		if Straddles(fLo, fHi) {
			start := baseRoot
			if !IsSequence(xLo, start, xHi) {
				start = Midpoint(xLo, xHi)
			}
			return solver.SolveSide(evals.Remaining(), f, xLo, xHi, start, side)
		}

		changeLo, changeHi := false, false
		switch {
		case fLo < fHi: // increasing
			if fLo >= 0 {
				changeLo = true
			} else {
				changeHi = true
			}
		case fLo > fHi: // decreasing
			if fLo <= 0 {
				changeLo = true
			} else {
				changeHi = true
			}
		default:
			changeLo, changeHi = true, true
		}
		if (!changeLo || xLo <= min) && (!changeHi || xHi >= max) {
			break // nowhere left to grow
		}

		if changeLo && xLo > min {
			xLo = math.Max(min, xLo-step)
			if fLo, err = evaluate(&evals, f, xLo); err != nil {
				break
			}
		}
		if changeHi && xHi < max {
			xHi = math.Min(max, xHi+step)
			if fHi, err = evaluate(&evals, f, xHi); err != nil {
				break
			}
		}
	}

	return 0, exhausted(xLo, xHi, fLo, fHi, evals, baseRoot, min, max)
}

func evaluate(evals *counter.Incrementor, f core.Function, x float64) (float64, error) {
	if err := evals.Increment(); err != nil {
		return 0, err
	}

	return f.Value(x), nil
}

func exhausted(xLo, xHi, fLo, fHi float64, evals counter.Incrementor, baseRoot, min, max float64) error {
	return core.Errorf(opForceSide, core.ErrNoBracketing,
		xLo, xHi, fLo, fHi, float64(evals.Count()), float64(evals.MaximalCount()), baseRoot, min, max)
}

// IsFailedBracketing reports whether err came from ForceSide running out of
// room or budget, as opposed to a failure inside the bracketing solver.
func IsFailedBracketing(err error) bool {
	var e *core.Error
	return errors.As(err, &e) && e.Op == opForceSide && errors.Is(e.Kind, core.ErrNoBracketing)
}
