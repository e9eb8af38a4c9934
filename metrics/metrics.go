// SPDX-License-Identifier: MIT

// Package metrics records solve outcomes as Prometheus metrics.
//
// Recorder implements solver.Observer; attach it with solver.WithObserver:
//
//	reg := prometheus.NewRegistry()
//	rec, _ := metrics.NewRecorder(reg)
//	s := brent.NewDefault(solver.WithObserver(rec))
//
// Exposed series:
//
//	rootfind_solves_total{algorithm, outcome}
//	rootfind_evaluations{algorithm}            (histogram)
//	rootfind_solve_duration_seconds{algorithm} (histogram)
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/solver"
)

const namespace = "rootfind"

// Outcome label values.
const (
	OutcomeConverged          = "converged"
	OutcomeInvalidArgument    = "invalid_argument"
	OutcomeInvalidInterval    = "invalid_interval"
	OutcomeNoBracketing       = "no_bracketing"
	OutcomeTooManyEvaluations = "too_many_evaluations"
	OutcomeNoData             = "no_data"
	OutcomeError              = "error"
)

// Recorder is a solver.Observer backed by Prometheus collectors.
type Recorder struct {
	solves      *prometheus.CounterVec
	evaluations *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

var _ solver.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Solve calls by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		evaluations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluations",
			Help:      "Evaluation budget units consumed per solve call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time per solve call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{r.solves, r.evaluations, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveSolve implements solver.Observer.
func (r *Recorder) ObserveSolve(rep solver.Report) {
	r.solves.WithLabelValues(rep.Algorithm, Outcome(rep.Err)).Inc()
	r.evaluations.WithLabelValues(rep.Algorithm).Observe(float64(rep.Evaluations))
	r.duration.WithLabelValues(rep.Algorithm).Observe(rep.Elapsed.Seconds())
}

// Outcome maps an error to its outcome label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeConverged
	}
	switch core.KindOf(err) {
	case core.ErrInvalidArgument:
		return OutcomeInvalidArgument
	case core.ErrInvalidInterval:
		return OutcomeInvalidInterval
	case core.ErrNoBracketing:
		return OutcomeNoBracketing
	case core.ErrTooManyEvaluations, core.ErrCountExceeded:
		return OutcomeTooManyEvaluations
	case core.ErrNoData:
		return OutcomeNoData
	default:
		return OutcomeError
	}
}

// WriteText gathers g and writes the Prometheus text exposition format to w.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
