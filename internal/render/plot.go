package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

var supportedFormats = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
	".svg": true, ".pdf": true, ".eps": true,
}

// NewLinePlot draws values against times inside the scene's plot box.
func NewLinePlot(scene Scene, times, values []float64) (*plot.Plot, error) {
	if len(times) != len(values) || len(times) == 0 {
		return nil, fmt.Errorf("%w: plot data invalid (%d times, %d values)", dynamo.ErrInvalidArgument, len(times), len(values))
	}

	p := plot.New()
	p.Title.Text = scene.Title
	p.X.Label.Text = scene.XLabel
	p.Y.Label.Text = scene.YLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i].X = times[i]
		pts[i].Y = values[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)

	// Fixed limits, applied after Add so autoscaling cannot widen them.
	p.X.Min, p.X.Max = scene.PlotBox.XMin, scene.PlotBox.XMax
	p.Y.Min, p.Y.Max = scene.PlotBox.YMin, scene.PlotBox.YMax

	return p, nil
}

// SavePlot writes a static line plot. The format follows the file
// extension.
func SavePlot(path string, scene Scene, times, values []float64) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedFormats[ext] {
		return fmt.Errorf("%w: unsupported plot format %q", dynamo.ErrInvalidArgument, ext)
	}

	p, err := NewLinePlot(scene, times, values)
	if err != nil {
		return err
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := p.Save(scene.Width, scene.Height, path); err != nil {
		return fmt.Errorf("%w: write plot %s: %w", dynamo.ErrIO, path, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: cannot create directory: %w", dynamo.ErrIO, err)
	}
	return nil
}
