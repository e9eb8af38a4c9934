// Package counter provides the evaluation-count guard shared by every solver.
//
// An Incrementor is a plain value: the With* builders return reconfigured,
// reset copies and never touch the receiver, so a configured prototype can
// be reused freely. Increment is the single enforcement point of the
// "maximum evaluations" contract.
package counter
