// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/rootfind/bisection"
	"github.com/katalvlaran/rootfind/brent"
	"github.com/katalvlaran/rootfind/config"
	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/laguerre"
	"github.com/katalvlaran/rootfind/poly"
	"github.com/katalvlaran/rootfind/solver"
)

// realSolver is what every configured method offers the commands.
type realSolver interface {
	SolveSide(maxEval int, f core.Function, min, max, start float64, side core.AllowedSolution) (float64, error)
	Evaluations() int
	Name() string
}

// parseCoeffs reads "c0,c1,...,cn" (commas and/or spaces).
func parseCoeffs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("no coefficients in %q: %w", s, core.ErrNoData)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

func parsePolynomial(s string) (poly.Polynomial, error) {
	cs, err := parseCoeffs(s)
	if err != nil {
		return poly.Polynomial{}, err
	}

	return poly.New(cs...)
}

// newSolver builds the configured method; each call returns an independent instance.
func (a *app) newSolver() (realSolver, error) {
	acc := a.cfg.CoreAccuracy()
	opts := []solver.Option{solver.WithLogger(a.log)}
	if a.recorder != nil {
		opts = append(opts, solver.WithObserver(a.recorder))
	}
	switch a.cfg.Method {
	case config.MethodBrent:
		return brent.New(acc, opts...)
	case config.MethodLaguerre:
		return laguerre.New(acc, opts...)
	case config.MethodBisection:
		return bisection.New(acc, opts...)
	default:
		return nil, core.Errorf("rootfind: unknown method "+a.cfg.Method, core.ErrInvalidArgument)
	}
}

// dedupe sorts roots and merges those closer than tol.
func dedupe(roots []float64, tol float64) []float64 {
	if len(roots) == 0 {
		return roots
	}
	sorted := append([]float64(nil), roots...)
	sort.Float64s(sorted)
	out := sorted[:1]
	for _, r := range sorted[1:] {
		if math.Abs(r-out[len(out)-1]) > tol {
			out = append(out, r)
		}
	}

	return out
}
