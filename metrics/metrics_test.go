// SPDX-License-Identifier: MIT

package metrics_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/brent"
	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/metrics"
	"github.com/katalvlaran/rootfind/poly"
	"github.com/katalvlaran/rootfind/solver"
)

func TestOutcome(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, metrics.OutcomeConverged},
		{core.Errorf("x", core.ErrInvalidArgument), metrics.OutcomeInvalidArgument},
		{core.ErrInvalidInterval, metrics.OutcomeInvalidInterval},
		{fmt.Errorf("wrap: %w", core.ErrNoBracketing), metrics.OutcomeNoBracketing},
		{core.ErrTooManyEvaluations, metrics.OutcomeTooManyEvaluations},
		{core.ErrCountExceeded, metrics.OutcomeTooManyEvaluations},
		{core.ErrNoData, metrics.OutcomeNoData},
		{errors.New("other"), metrics.OutcomeError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, metrics.Outcome(tc.err))
	}
}

func TestRecorder_WithSolver(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	s := brent.NewDefault(solver.WithObserver(rec))
	p := poly.MustNew(-3, 5, 2)
	_, err = s.Solve(100, p, 0, 2)
	require.NoError(t, err)
	_, err = s.Solve(100, p, -4, -1)
	require.NoError(t, err)
	_, err = s.Solve(100, p, 1, 2)
	require.ErrorIs(t, err, core.ErrNoBracketing)

	n, err := testutil.GatherAndCount(reg, "rootfind_solves_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per outcome")

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, `rootfind_solves_total{algorithm="brent",outcome="converged"} 2`)
	assert.Contains(t, out, `rootfind_solves_total{algorithm="brent",outcome="no_bracketing"} 1`)
	assert.Contains(t, out, `rootfind_evaluations_count{algorithm="brent"} 3`)
	assert.Contains(t, out, "# TYPE rootfind_solve_duration_seconds histogram")
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
}
