package render

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// Box is an axis-aligned region in data coordinates.
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (b Box) Width() float64  { return b.XMax - b.XMin }
func (b Box) Height() float64 { return b.YMax - b.YMin }

// Scene describes how one scenario is drawn: limits of the static plot,
// limits of an animation frame and the body drawn in it.
type Scene struct {
	Title  string
	XLabel string
	YLabel string

	PlotBox  Box
	StageBox Box

	Radius   float64 // radius of the drawn body, in data units
	Vertical bool    // body moves along y; otherwise along x
	Floor    bool    // draw the line y = 0 across the stage

	Width  vg.Length
	Height vg.Length
	DPI    int
}

// BallScene frames a ball dropped from x0: a fixed stage four units to each
// side, from just below the floor to the drop height plus the radius.
func BallScene(tStart, tEnd, x0, radius float64) Scene {
	return Scene{
		Title:    "bouncing ball",
		XLabel:   "time (s)",
		YLabel:   "height (m)",
		PlotBox:  Box{XMin: tStart, XMax: tEnd, YMin: 0, YMax: x0 + radius},
		StageBox: Box{XMin: -4, XMax: 4, YMin: -1, YMax: x0 + radius},
		Radius:   radius,
		Vertical: true,
		Floor:    true,
		Width:    6.41 * vg.Inch,
		Height:   8.8 * vg.Inch,
		DPI:      72,
	}
}

// OscillatorScene frames an oscillator released at x0. The static plot spans
// [tStart, tEnd] by ±|x0|; the stage shows the mass moving along x.
func OscillatorScene(tStart, tEnd, x0 float64) Scene {
	amp := math.Abs(x0)
	if amp == 0 {
		amp = 1
	}
	return Scene{
		Title:    "plot",
		XLabel:   "time (s)",
		YLabel:   "x",
		PlotBox:  Box{XMin: tStart, XMax: tEnd, YMin: -amp, YMax: amp},
		StageBox: Box{XMin: -1.25 * amp, XMax: 1.25 * amp, YMin: -0.75 * amp, YMax: 0.75 * amp},
		Radius:   0.1 * amp,
		Width:    8 * vg.Inch,
		Height:   6 * vg.Inch,
		DPI:      72,
	}
}

// Center returns the body position on the stage for a trace value.
func (s Scene) Center(value float64) (x, y float64) {
	if s.Vertical {
		return 0, value
	}
	return value, 0
}
