// Package solver implements the lifecycle shared by every univariate solver:
// accuracy configuration, per-call setup of the search interval, the
// evaluation-count guard and the hook into the algorithm-specific step.
//
// 🚀 How a solve call flows
//
//	Base.Run(maxEval, f, min, max, start, side)
//	  │
//	  ├─ setup: build a fresh Search{f, min, max, start, side, guard(0, maxEval)}
//	  ├─ step:  StepFunc(search), the algorithm (Brent, Laguerre, ...)
//	  │           └─ search.Value(x)  ← every evaluation increments the guard
//	  └─ record evaluations, notify the Observer, log the outcome
//
// Per-call state lives in Search, never on Base, so one Base may serve
// concurrent Run calls. Evaluations() reports the count of whichever call
// finished last.
//
// State:
//
//	Idle       : constructed, no search performed yet.
//	Configured : at least one setup has happened.
//
// Logging goes through log/slog; Base logs nothing unless WithLogger is
// supplied. Observers (see package metrics) receive a Report after each call.
package solver
