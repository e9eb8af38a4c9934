// SPDX-License-Identifier: MIT

package solver

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/counter"
)

// StepFunc is the algorithm-specific part of a solve call.
type StepFunc func(s *Search) (float64, error)

// State of a Base.
type State int32

const (
	// Idle means no solve call has been set up yet.
	Idle State = iota
	// Configured means at least one solve call has been set up.
	Configured
)

// String returns "idle" or "configured".
func (st State) String() string {
	if st == Configured {
		return "configured"
	}

	return "idle"
}

// Result is the outcome of a successful Run.
type Result struct {
	Root        float64
	Evaluations int
}

// Base is the shared solver lifecycle. It holds configuration only; all
// per-call state lives in a Search, so a Base is safe for concurrent use.
type Base struct {
	name      string
	acc       core.Accuracy
	step      StepFunc
	log       *slog.Logger
	observers []Observer

	state    atomic.Int32
	lastEval atomic.Int64
	lastMax  atomic.Int64
}

// NewBase wires an algorithm step into the lifecycle.
//
// Errors:
//   - core.ErrInvalidArgument when acc is invalid or step is nil.
func NewBase(name string, acc core.Accuracy, step StepFunc, opts ...Option) (*Base, error) {
	if err := acc.Validate(); err != nil {
		return nil, err
	}
	if step == nil {
		return nil, core.Errorf("solver.NewBase: nil step", core.ErrInvalidArgument)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Base{
		name:      name,
		acc:       acc,
		step:      step,
		log:       o.logger.With(slog.String("solver", name)),
		observers: o.observers,
	}, nil
}

// Name is the algorithm name given at construction.
func (b *Base) Name() string { return b.name }

// Accuracy returns the tolerance contract.
func (b *Base) Accuracy() core.Accuracy { return b.acc }

// AbsoluteAccuracy returns the absolute tolerance.
func (b *Base) AbsoluteAccuracy() float64 { return b.acc.Absolute }

// RelativeAccuracy returns the relative tolerance.
func (b *Base) RelativeAccuracy() float64 { return b.acc.Relative }

// FunctionValueAccuracy returns the function-value tolerance.
func (b *Base) FunctionValueAccuracy() float64 { return b.acc.FunctionValue }

// Evaluations is the number of evaluations used by the last completed call.
func (b *Base) Evaluations() int { return int(b.lastEval.Load()) }

// MaxEvaluations is the budget of the last completed call.
func (b *Base) MaxEvaluations() int { return int(b.lastMax.Load()) }

// State reports Idle until the first setup, Configured afterwards.
func (b *Base) State() State { return State(b.state.Load()) }

// Solve searches [min, max] starting from its midpoint.
func (b *Base) Solve(maxEval int, f core.Function, min, max float64) (float64, error) {
	return b.SolveFrom(maxEval, f, min, max, bracket.Midpoint(min, max))
}

// SolveFrom searches [min, max] starting from start.
func (b *Base) SolveFrom(maxEval int, f core.Function, min, max, start float64) (float64, error) {
	res, err := b.Run(maxEval, f, min, max, start, core.AnySide)
	if err != nil {
		return 0, err
	}

	return res.Root, nil
}

// SolveSide is SolveFrom with an explicit AllowedSolution. Algorithms that do
// not bracket ignore side.
func (b *Base) SolveSide(maxEval int, f core.Function, min, max, start float64, side core.AllowedSolution) (float64, error) {
	res, err := b.Run(maxEval, f, min, max, start, side)
	if err != nil {
		return 0, err
	}

	return res.Root, nil
}

// Run is the full lifecycle: setup, step, bookkeeping.
//
// Errors:
//   - core.ErrInvalidArgument for a nil function.
//   - core.ErrTooManyEvaluations on the first evaluation when maxEval ≤ 0.
//   - anything the step returns (InvalidInterval, NoBracketing, TooManyEvaluations, NoData, ...).
func (b *Base) Run(maxEval int, f core.Function, min, max, start float64, side core.AllowedSolution) (Result, error) {
	return b.RunWith(b.step, maxEval, f, min, max, start, side)
}

// RunWith is Run with an alternative step. Algorithms exposing more than one
// kind of search (Laguerre's complex entry points) use it to share the
// lifecycle, budget and observers of their Base.
func (b *Base) RunWith(step StepFunc, maxEval int, f core.Function, min, max, start float64, side core.AllowedSolution) (Result, error) {
	if step == nil {
		return Result{}, core.Errorf(b.name+": nil step", core.ErrInvalidArgument)
	}
	began := time.Now()
	s, err := b.Setup(maxEval, f, min, max, start, side)
	if err != nil {
		b.finish(began, Search{op: b.name, evals: counter.New(maxEval)}, 0, err)
		return Result{}, err
	}
	root, err := step(s)
	b.finish(began, *s, root, err)
	if err != nil {
		return Result{}, err
	}

	return Result{Root: root, Evaluations: s.Evaluations()}, nil
}

// Setup builds the per-call Search: bounds, start value, bound function and
// a guard reset to (0, maxEval). It moves the Base to Configured. A budget
// of zero or less is accepted; the first Value or Increment then fails.
func (b *Base) Setup(maxEval int, f core.Function, min, max, start float64, side core.AllowedSolution) (*Search, error) {
	if f == nil {
		return nil, core.Errorf(b.name+": nil function", core.ErrInvalidArgument)
	}
	b.state.Store(int32(Configured))
	s := &Search{
		op:    b.name,
		f:     f,
		min:   min,
		max:   max,
		start: start,
		side:  side,
		acc:   b.acc,
		evals: counter.New(maxEval),
		log:   b.log,
	}
	b.log.Debug("setup",
		slog.Int("max_eval", maxEval),
		slog.Float64("min", min),
		slog.Float64("max", max),
		slog.Float64("start", start),
		slog.String("side", side.String()))

	return s, nil
}

func (b *Base) finish(began time.Time, s Search, root float64, err error) {
	used, budget := s.evals.Count(), s.evals.MaximalCount()
	b.lastEval.Store(int64(used))
	b.lastMax.Store(int64(budget))

	if err != nil {
		b.log.Debug("solve failed", slog.Int("evaluations", used), slog.Any("error", err))
	} else {
		b.log.Debug("solve converged", slog.Float64("root", root), slog.Int("evaluations", used))
	}

	if len(b.observers) == 0 {
		return
	}
	r := Report{
		Algorithm:      b.name,
		Evaluations:    used,
		MaxEvaluations: budget,
		Root:           root,
		Err:            err,
		Elapsed:        time.Since(began),
	}
	for _, obs := range b.observers {
		obs.ObserveSolve(r)
	}
}
