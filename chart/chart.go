// Package chart renders run results as image files with gonum.org/v1/plot.
//
// Two figures are produced:
//
//   - FitnessCurve: mean and best-ever fitness per generation.
//   - BestTour: the best tour as a closed polyline from and back to the depot.
//
// The output format follows the file extension (.png, .svg, .pdf, .jpg,
// .jpeg, .eps, .tif, .tiff).
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/beehive/ga"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// ErrNoData is returned when there is nothing to draw.
	ErrNoData = errors.New("chart: no data")

	// ErrUnsupportedFormat is returned for extensions the plot backend cannot encode.
	ErrUnsupportedFormat = errors.New("chart: unsupported image format")
)

// Figure size shared by every chart.
const (
	width  = 8 * vg.Inch
	height = 6 * vg.Inch
)

var (
	meanColor  = color.RGBA{R: 0, G: 80, B: 255, A: 255}
	bestColor  = color.RGBA{R: 220, G: 0, B: 0, A: 255}
	tourColor  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	depotColor = color.RGBA{R: 230, G: 160, B: 0, A: 255}
)

var formats = map[string]struct{}{
	".png": {}, ".svg": {}, ".pdf": {}, ".jpg": {}, ".jpeg": {},
	".eps": {}, ".tif": {}, ".tiff": {},
}

func checkFormat(path string) error {
	if _, ok := formats[strings.ToLower(filepath.Ext(path))]; !ok {
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	return nil
}

// FitnessCurve plots the mean fitness and the best-ever fitness of every
// generation in stats and writes the figure to path.
func FitnessCurve(stats []ga.GenerationStats, path string) error {
	if err := checkFormat(path); err != nil {
		return fmt.Errorf("fitness curve: %w", err)
	}
	if len(stats) == 0 {
		return fmt.Errorf("fitness curve: %w", ErrNoData)
	}

	var (
		mean = make(plotter.XYs, len(stats))
		best = make(plotter.XYs, len(stats))
	)
	for i, s := range stats {
		mean[i] = plotter.XY{X: float64(s.Generation), Y: s.Mean}
		best[i] = plotter.XY{X: float64(s.Generation), Y: s.BestEver}
	}

	p := plot.New()
	p.Title.Text = "Average fitness per generation"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Tour length"
	p.Add(plotter.NewGrid())

	meanLine, meanDots, err := plotter.NewLinePoints(mean)
	if err != nil {
		return fmt.Errorf("fitness curve: %w", err)
	}
	meanLine.Color = meanColor
	meanLine.Width = vg.Points(1.5)
	meanDots.GlyphStyle.Color = meanColor
	meanDots.GlyphStyle.Shape = draw.CircleGlyph{}

	bestLine, err := plotter.NewLine(best)
	if err != nil {
		return fmt.Errorf("fitness curve: %w", err)
	}
	bestLine.Color = bestColor
	bestLine.Width = vg.Points(1.5)
	bestLine.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(meanLine, meanDots, bestLine)
	p.Legend.Add("mean", meanLine, meanDots)
	p.Legend.Add("best ever", bestLine)
	p.Legend.Top = true

	if err = p.Save(width, height, path); err != nil {
		return fmt.Errorf("fitness curve: %w", err)
	}

	return nil
}

// BestTour draws the closed tour depot → stops... → depot, marks every flower
// and highlights the depot, then writes the figure to path.
func BestTour(depot ga.Point, stops []ga.Point, path string) error {
	if err := checkFormat(path); err != nil {
		return fmt.Errorf("best tour: %w", err)
	}
	if len(stops) == 0 {
		return fmt.Errorf("best tour: %w", ErrNoData)
	}

	var (
		route   = make(plotter.XYs, 0, len(stops)+2)
		flowers = make(plotter.XYs, len(stops))
	)
	route = append(route, plotter.XY{X: depot.X, Y: depot.Y})
	for i, s := range stops {
		route = append(route, plotter.XY{X: s.X, Y: s.Y})
		flowers[i] = plotter.XY{X: s.X, Y: s.Y}
	}
	route = append(route, plotter.XY{X: depot.X, Y: depot.Y})

	p := plot.New()
	p.Title.Text = "Best bee path"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(route)
	if err != nil {
		return fmt.Errorf("best tour: %w", err)
	}
	line.Color = tourColor
	line.Width = vg.Points(1)

	dots, err := plotter.NewScatter(flowers)
	if err != nil {
		return fmt.Errorf("best tour: %w", err)
	}
	dots.GlyphStyle.Shape = draw.CircleGlyph{}
	dots.GlyphStyle.Color = meanColor
	dots.GlyphStyle.Radius = vg.Points(2.5)

	hive, err := plotter.NewScatter(plotter.XYs{{X: depot.X, Y: depot.Y}})
	if err != nil {
		return fmt.Errorf("best tour: %w", err)
	}
	hive.GlyphStyle.Shape = draw.PyramidGlyph{}
	hive.GlyphStyle.Color = depotColor
	hive.GlyphStyle.Radius = vg.Points(5)

	p.Add(line, dots, hive)
	p.Legend.Add("path", line)
	p.Legend.Add("flowers", dots)
	p.Legend.Add("hive", hive)

	if err = p.Save(width, width, path); err != nil {
		return fmt.Errorf("best tour: %w", err)
	}

	return nil
}
