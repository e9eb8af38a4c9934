// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/bracket"
)

func newBracketCmd(a *app) *cobra.Command {
	var (
		coeffs       string
		initial      float64
		lower, upper float64
	)
	cmd := &cobra.Command{
		Use:   "bracket",
		Short: "Expand outward from an initial point until the polynomial changes sign",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePolynomial(coeffs)
			if err != nil {
				return err
			}
			b := a.cfg.Bracket
			iv, err := bracket.Search(p, initial, lower, upper, b.Q, b.R, b.MaxIterations)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "[%.17g, %.17g] f=[%g, %g]\n", iv.Lo, iv.Hi, iv.FLo, iv.FHi)

			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&coeffs, "coeffs", "", "ascending coefficients")
	f.Float64Var(&initial, "initial", 0, "point to expand from")
	f.Float64Var(&lower, "min", -1e6, "lower limit")
	f.Float64Var(&upper, "max", 1e6, "upper limit")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}
