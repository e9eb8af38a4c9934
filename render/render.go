// SPDX-License-Identifier: MIT

// Package render draws a function over an interval, with its roots marked,
// using gonum/plot. It backs the `rootfind plot` command.
package render

import (
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg, tiff
	_ "gonum.org/v1/plot/vg/vgsvg" // svg

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
)

// Defaults for Options.
const (
	DefaultSamples = 400
	DefaultWidth   = 6 * vg.Inch
	DefaultHeight  = 4 * vg.Inch
	DefaultFormat  = "png"
)

// Options controls the rendered figure.
type Options struct {
	Title   string
	Samples int       // number of sample points, ≥ 2
	Width   vg.Length // figure width
	Height  vg.Length // figure height
	Format  string    // "png", "jpg", "tiff" or "svg"
}

// DefaultOptions returns 400 samples on a 6×4 inch PNG.
func DefaultOptions() Options {
	return Options{
		Samples: DefaultSamples,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Format:  DefaultFormat,
	}
}

// Samples evaluates f at n evenly spaced points of [lo, hi]. Non-finite
// values are dropped.
func Samples(f core.Function, lo, hi float64, n int) (plotter.XYs, error) {
	if err := bracket.VerifyInterval(lo, hi); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, core.Errorf("render.Samples", core.ErrInvalidArgument, float64(n))
	}
	pts := make(plotter.XYs, 0, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		y := f.Value(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}

	return pts, nil
}

// Function plots f over [lo, hi], marks roots on the x-axis and writes the
// figure to w in opts.Format.
func Function(w io.Writer, f core.Function, lo, hi float64, roots []float64, opts Options) error {
	if opts.Samples == 0 {
		opts.Samples = DefaultSamples
	}
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}

	pts, err := Samples(f, lo, hi, opts.Samples)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	axis, err := plotter.NewLine(plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(0.5)
	axis.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(axis)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	if len(roots) > 0 {
		marks := make(plotter.XYs, len(roots))
		for i, r := range roots {
			marks[i] = plotter.XY{X: r, Y: 0}
		}
		scatter, err := plotter.NewScatter(marks)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add("roots", scatter)
	}
	p.Legend.Add("f", line)

	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)

	return err
}
