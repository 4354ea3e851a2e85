package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"honnef.co/go/dubins"
)

var (
	pathColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	circleColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	pieceColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// pathXYs samples the positions of p every step.
func pathXYs(p dubins.Path, step float64) plotter.XYs {
	var pts plotter.XYs
	for q := range dubins.Samples(p, step) {
		pos := q.Position()
		pts = append(pts, plotter.XY{X: pos.X, Y: pos.Y})
	}
	return pts
}

// curvatureXYs samples the curvature of p every step, against the arc
// length.
func curvatureXYs(p dubins.Path, step float64) plotter.XYs {
	var pts plotter.XYs
	var s float64
	for q := range dubins.Samples(p, step) {
		pts = append(pts, plotter.XY{X: min(s, p.Length()), Y: q.Curvature()})
		s += step
	}
	return pts
}

// savePathPlot draws p, the ends of its pieces and the turning circles.
func savePathPlot(p dubins.Compound, circles []dubins.Circle, step float64, file string) error {
	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Path (length %.3f)", p.Length())
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "y"

	for _, c := range circles {
		var pts plotter.XYs
		for pt := range c.Points(90) {
			pts = append(pts, plotter.XY{X: pt.X, Y: pt.Y})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = circleColor
		line.Width = vg.Points(0.5)
		line.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		pl.Add(line)
	}

	line, err := plotter.NewLine(pathXYs(p, step))
	if err != nil {
		return err
	}
	line.Color = pathColor
	line.Width = vg.Points(1.5)
	pl.Add(line)
	pl.Legend.Add("path", line)

	var ends plotter.XYs
	for _, piece := range dubins.Pieces(p) {
		pos := piece.Start().Position()
		ends = append(ends, plotter.XY{X: pos.X, Y: pos.Y})
	}
	pos := p.End().Position()
	ends = append(ends, plotter.XY{X: pos.X, Y: pos.Y})
	scatter, err := plotter.NewScatter(ends)
	if err != nil {
		return err
	}
	scatter.Color = pieceColor
	pl.Add(scatter)
	pl.Legend.Add("pieces", scatter)

	pl.Legend.Top = true
	pl.Legend.Left = false
	pl.Legend.XOffs = -10
	pl.Legend.YOffs = -10

	if err := pl.Save(8*vg.Inch, 8*vg.Inch, file); err != nil {
		return fmt.Errorf("save path plot: %w", err)
	}
	return nil
}

// saveCurvaturePlot draws the curvature profile of p.
func saveCurvaturePlot(p dubins.Path, step float64, file string) error {
	pl := plot.New()
	pl.Title.Text = "Curvature profile"
	pl.X.Label.Text = "Arc length"
	pl.Y.Label.Text = "Curvature"

	line, err := plotter.NewLine(curvatureXYs(p, step))
	if err != nil {
		return err
	}
	line.Color = pathColor
	line.Width = vg.Points(1)
	pl.Add(line)

	if err := pl.Save(14*vg.Inch, 6*vg.Inch, file); err != nil {
		return fmt.Errorf("save curvature plot: %w", err)
	}
	return nil
}
