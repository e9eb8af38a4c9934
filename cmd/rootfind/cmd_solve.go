// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		coeffs   string
		min, max float64
		start    float64
		expand   bool
		lower    float64
		upper    float64
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find one real root of a polynomial in [min, max]",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePolynomial(coeffs)
			if err != nil {
				return err
			}
			side, err := a.cfg.AllowedSolution()
			if err != nil {
				return err
			}
			s, err := a.newSolver()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("start") {
				start = bracket.Midpoint(min, max)
			}

			root, err := s.SolveSide(a.cfg.MaxEvaluations, p, min, max, start, side)
			if errors.Is(err, core.ErrNoBracketing) && expand {
				a.log.Info("interval does not bracket a root, expanding", slog.Float64("start", start))
				iv, serr := bracket.Search(p, start, lower, upper,
					a.cfg.Bracket.Q, a.cfg.Bracket.R, a.cfg.Bracket.MaxIterations)
				if serr != nil {
					return serr
				}
				root, err = s.SolveSide(a.cfg.MaxEvaluations, p, iv.Lo, iv.Hi, bracket.Midpoint(iv.Lo, iv.Hi), side)
			}
			if err != nil {
				return err
			}
			a.log.Info("root found",
				slog.String("method", s.Name()),
				slog.Float64("root", root),
				slog.Int("evaluations", s.Evaluations()))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.17g\n", root)

			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&coeffs, "coeffs", "", "ascending coefficients, e.g. \"-3,5,2\"")
	f.Float64Var(&min, "min", 0, "lower bound")
	f.Float64Var(&max, "max", 1, "upper bound")
	f.Float64Var(&start, "start", 0, "initial guess (default: midpoint)")
	f.BoolVar(&expand, "expand", false, "expand the interval with a bracket search when it does not bracket a root")
	f.Float64Var(&lower, "search-min", -1e6, "lower limit of the bracket search used by --expand")
	f.Float64Var(&upper, "search-max", 1e6, "upper limit of the bracket search used by --expand")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}
