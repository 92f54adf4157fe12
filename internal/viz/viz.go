// Package viz renders the diagnostic plots the example programs emit:
// training curves, predicted-vs-exact trajectories, error sweeps.
package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one named line of a plot.
type Series struct {
	Name string
	X, Y []float64
}

// Line writes a PNG line chart with one line per series.
func Line(path, title, xLabel, yLabel string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("viz: no series to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	args := make([]any, 0, 2*len(series))
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("viz: series %q has %d x values but %d y values", s.Name, len(s.X), len(s.Y))
		}
		pts := make(plotter.XYs, len(s.X))
		for i := range s.X {
			pts[i].X = s.X[i]
			pts[i].Y = s.Y[i]
		}
		args = append(args, s.Name, pts)
	}

	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("viz: adding series: %w", err)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("viz: saving %s: %w", path, err)
	}
	return nil
}
