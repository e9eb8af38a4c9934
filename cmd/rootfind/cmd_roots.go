// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/cplx"
	"github.com/katalvlaran/rootfind/laguerre"
	"github.com/katalvlaran/rootfind/solver"
)

func newRootsCmd(a *app) *cobra.Command {
	var (
		coeffs    string
		initial   float64
		precision int
		label     string
	)
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "List every complex root of a polynomial (Laguerre with deflation)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseCoeffs(coeffs)
			if err != nil {
				return err
			}
			s, err := laguerre.New(a.cfg.CoreAccuracy(),
				solver.WithLogger(a.log), solver.WithObserver(a.recorder))
			if err != nil {
				return err
			}
			roots, err := s.SolveAllComplexWithBudget(a.cfg.MaxEvaluations, cs, initial)
			if err != nil {
				return err
			}
			a.log.Info("roots found", slog.Int("count", len(roots)), slog.Int("evaluations", s.Evaluations()))

			opts := cplx.FormatOptions{ImaginaryLabel: label, Precision: precision}
			for _, z := range roots {
				txt, ferr := cplx.Format(z, opts)
				if ferr != nil {
					return ferr
				}
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), txt); err != nil {
					return err
				}
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&coeffs, "coeffs", "", "ascending coefficients")
	f.Float64Var(&initial, "initial", 0, "starting point of the first iteration")
	f.IntVar(&precision, "precision", cplx.DefaultFormat().Precision, "significant digits (-1: shortest round-trip form)")
	f.StringVar(&label, "label", cplx.DefaultFormat().ImaginaryLabel, "imaginary unit label")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}
