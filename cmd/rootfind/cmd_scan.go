// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
	"github.com/katalvlaran/rootfind/poly"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		coeffs   string
		min, max float64
		parts    int
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Split [min, max] into parts and solve every bracketing part in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePolynomial(coeffs)
			if err != nil {
				return err
			}
			roots, err := a.scan(cmd.Context(), p, min, max, parts, workers)
			if err != nil {
				return err
			}
			for _, r := range roots {
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%.17g\n", r); err != nil {
					return err
				}
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&coeffs, "coeffs", "", "ascending coefficients")
	f.Float64Var(&min, "min", -10, "lower bound")
	f.Float64Var(&max, "max", 10, "upper bound")
	f.IntVar(&parts, "parts", 64, "number of sub-intervals")
	f.IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "concurrent solves")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}

// scan solves every bracketing sub-interval of [min, max] with its own solver
// instance and returns the sorted, de-duplicated roots.
func (a *app) scan(ctx context.Context, p poly.Polynomial, min, max float64, parts, workers int) ([]float64, error) {
	if err := bracket.VerifyInterval(min, max); err != nil {
		return nil, err
	}
	if parts <= 0 {
		return nil, core.Errorf("rootfind: scan parts", core.ErrInvalidArgument, float64(parts))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	side, err := a.cfg.AllowedSolution()
	if err != nil {
		return nil, err
	}

	width := (max - min) / float64(parts)
	found := make([]float64, parts)
	ok := make([]bool, parts)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < parts; i++ {
		i := i // per-iteration copy; go directive is 1.21 (pre-1.22 loopvar semantics)
		lo := min + float64(i)*width
		hi := lo + width
		if i == parts-1 {
			hi = max
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !bracket.IsBracketing(p, lo, hi) {
				return nil
			}
			s, err := a.newSolver()
			if err != nil {
				return err
			}
			root, err := s.SolveSide(a.cfg.MaxEvaluations, p, lo, hi, bracket.Midpoint(lo, hi), side)
			switch {
			case err == nil:
				found[i], ok[i] = root, true
			case errors.Is(err, core.ErrNoBracketing):
				a.log.Debug("part skipped", slog.Float64("lo", lo), slog.Float64("hi", hi))
			default:
				return fmt.Errorf("part [%g, %g]: %w", lo, hi, err)
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	roots := make([]float64, 0, parts)
	for i, r := range found {
		if ok[i] {
			roots = append(roots, r)
		}
	}
	acc := a.cfg.CoreAccuracy()
	roots = dedupe(roots, 2*acc.Absolute)
	a.log.Info("scan finished", slog.Int("parts", parts), slog.Int("roots", len(roots)))

	return roots, nil
}
