// Package out renders solution and convergence plots to PNG files.
package out

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// exactSamples is the number of points used to draw the exact solution
// curve between the mesh endpoints.
const exactSamples = 200

// Compare writes a plot of the nodal finite element values against the
// densely sampled exact solution.
func Compare(path, title string, xs, u []float64, exact func(float64) float64) error {
	if len(xs) != len(u) {
		return fmt.Errorf("got %v nodal values for %v nodes", len(u), len(xs))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "u(x)"

	femPts := make(plotter.XYs, len(xs))
	for i := range xs {
		femPts[i].X = xs[i]
		femPts[i].Y = u[i]
	}

	left, right := xs[0], xs[len(xs)-1]
	exactPts := make(plotter.XYs, exactSamples+1)
	for i := range exactPts {
		x := left + (right-left)*float64(i)/float64(exactSamples)
		exactPts[i].X = x
		exactPts[i].Y = exact(x)
	}

	if err := plotutil.AddLines(p, "Exact", exactPts); err != nil {
		return err
	}
	if err := plotutil.AddLinePoints(p, "FEM", femPts); err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// Convergence writes a log-log plot of nodal error against mesh size.
func Convergence(path string, hs, errs []float64) error {
	if len(hs) != len(errs) {
		return fmt.Errorf("got %v errors for %v mesh sizes", len(errs), len(hs))
	}

	p := plot.New()
	p.Title.Text = "Convergence"
	p.X.Label.Text = "max element length h"
	p.Y.Label.Text = "max nodal error"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Y.Tick.Marker = plot.LogTicks{}

	pts := make(plotter.XYs, len(hs))
	for i := range hs {
		pts[i].X = hs[i]
		pts[i].Y = errs[i]
	}
	if err := plotutil.AddLinePoints(p, "L-inf error", pts); err != nil {
		return err
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
