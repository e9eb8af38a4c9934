// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/config"
	"github.com/katalvlaran/rootfind/metrics"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath  string
	logLevel    string
	noColor     bool
	dumpMetrics bool
	method      string
	maxEval     int
	side        string

	cfg      config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	recorder *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "rootfind",
		Short:         "Find zeros of real polynomials (Brent, Laguerre, bisection)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.dumpMetrics || a.registry == nil {
				return nil
			}
			return metrics.WriteText(cmd.ErrOrStderr(), a.registry)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored log output")
	pf.BoolVar(&a.dumpMetrics, "metrics", false, "print Prometheus metrics to stderr on exit")
	pf.StringVar(&a.method, "method", "", "solver: brent, laguerre, bisection")
	pf.IntVar(&a.maxEval, "max-eval", 0, "evaluation budget per solve call")
	pf.StringVar(&a.side, "side", "", "allowed solution: any-side, left-side, right-side, below-side, above-side")

	root.AddCommand(
		newSolveCmd(a),
		newRootsCmd(a),
		newScanCmd(a),
		newBracketCmd(a),
		newPlotCmd(a),
		newConfigCmd(a),
	)

	return root
}

// init loads configuration, applies flag overrides and builds the logger and metrics.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = strings.ToLower(a.logLevel)
	}
	if a.noColor {
		cfg.Log.NoColor = true
	}
	if a.method != "" {
		cfg.Method = strings.ToLower(a.method)
	}
	if a.maxEval != 0 {
		cfg.MaxEvaluations = a.maxEval
	}
	if a.side != "" {
		cfg.Side = strings.ToLower(a.side)
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	a.cfg = cfg

	a.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      parseLevel(cfg.Log.Level),
		TimeFormat: time.TimeOnly,
		NoColor:    cfg.Log.NoColor || !isTerminal(os.Stderr),
	}))

	a.registry = prometheus.NewRegistry()
	a.recorder, err = metrics.NewRecorder(a.registry)

	return err
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}

	return fi.Mode()&os.ModeCharDevice != 0
}
