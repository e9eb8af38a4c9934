// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/render"
)

func newPlotCmd(a *app) *cobra.Command {
	var (
		coeffs   string
		min, max float64
		out      string
		parts    int
		title    string
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot a polynomial over [min, max] with its real roots marked",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePolynomial(coeffs)
			if err != nil {
				return err
			}
			roots, err := a.scan(cmd.Context(), p, min, max, parts, 0)
			if err != nil {
				return err
			}

			opts := render.DefaultOptions()
			opts.Title = title
			if opts.Title == "" {
				opts.Title = p.String()
			}
			if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
				opts.Format = ext
			}

			fh, err := os.Create(out)
			if err != nil {
				return err
			}
			defer fh.Close()
			w := bufio.NewWriter(fh)
			if err = render.Function(w, p, min, max, roots, opts); err != nil {
				return err
			}
			if err = w.Flush(); err != nil {
				return err
			}
			a.log.Info("plot written", "path", out, "roots", len(roots))

			return fh.Close()
		},
	}
	f := cmd.Flags()
	f.StringVar(&coeffs, "coeffs", "", "ascending coefficients")
	f.Float64Var(&min, "min", -10, "lower bound")
	f.Float64Var(&max, "max", 10, "upper bound")
	f.StringVarP(&out, "out", "o", "plot.png", "output file; the extension selects the format")
	f.IntVar(&parts, "parts", 64, "sub-intervals scanned for roots")
	f.StringVar(&title, "title", "", "figure title (default: the polynomial)")
	_ = cmd.MarkFlagRequired("coeffs")

	return cmd
}
