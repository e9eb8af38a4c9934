// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors. Every message is prefixed with "core:" for easy grepping.
// Algorithms return either a sentinel or a *Error wrapping one; callers match
// with errors.Is.
var (
	// ErrInvalidArgument indicates malformed configuration supplied by the caller.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrInvalidInterval indicates lower ≥ upper where a strict interval is required.
	ErrInvalidInterval = errors.New("core: invalid interval")

	// ErrNoBracketing indicates the function values at the endpoints do not
	// straddle zero (or an expansion search failed to find such a pair).
	ErrNoBracketing = errors.New("core: function values at endpoints do not have different signs")

	// ErrTooManyEvaluations indicates the evaluation budget was reached before convergence.
	ErrTooManyEvaluations = errors.New("core: maximal count of evaluations exceeded")

	// ErrNoData indicates an empty coefficient vector (or a polynomial with no root to find).
	ErrNoData = errors.New("core: no data")

	// ErrCountExceeded is raised by the evaluation-count guard itself.
	// Solvers translate it into ErrTooManyEvaluations at the lifecycle boundary.
	ErrCountExceeded = errors.New("core: maximal count exceeded")
)

// Error is a structured failure: an operation tag, a sentinel kind and the
// numeric values involved (bounds, function values, budgets).
//
// It carries no localized text; Error() renders a stable, machine-friendly
// form and presentation is left to the caller.
type Error struct {
	// Op names the operation that failed, e.g. "brent.Solve" or "bracket.Search".
	Op string

	// Kind is one of the package sentinels.
	Kind error

	// Values is the numeric payload in operation-specific order.
	Values []float64
}

// Errorf builds a *Error. values are copied.
func Errorf(op string, kind error, values ...float64) *Error {
	var payload []float64
	if len(values) > 0 {
		payload = make([]float64, len(values))
		copy(payload, values)
	}

	return &Error{Op: op, Kind: kind, Values: payload}
}

// Error renders "op: kind [v1 v2 ...]".
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Op != "" {
		sb.WriteString(e.Op)
		sb.WriteString(": ")
	}
	if e.Kind != nil {
		sb.WriteString(e.Kind.Error())
	} else {
		sb.WriteString("unknown failure")
	}
	if len(e.Values) > 0 {
		sb.WriteString(" [")
		for i, v := range e.Values {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// Unwrap exposes Kind to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Kind }

// KindOf returns the sentinel behind err, or nil when err is not one of ours.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrInvalidArgument,
		ErrInvalidInterval,
		ErrNoBracketing,
		ErrTooManyEvaluations,
		ErrNoData,
		ErrCountExceeded,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
