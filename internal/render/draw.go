package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const circleSegments = 48

var (
	bodyColor  = color.RGBA{B: 255, A: 255}
	floorColor = color.Black
)

// DrawFrame renders one frame of the stage: floor, body and the simulated
// and real time labels.
func DrawFrame(sess *Session, scene Scene, fr Frame) (image.Image, error) {
	elapsed := sess.Mark(fr)

	p := plot.New()
	box := scene.StageBox

	if scene.Floor {
		floor, err := plotter.NewLine(plotter.XYs{{X: box.XMin, Y: 0}, {X: box.XMax, Y: 0}})
		if err != nil {
			return nil, err
		}
		floor.LineStyle.Color = floorColor
		p.Add(floor)
	}

	cx, cy := scene.Center(fr.Value)
	body, err := plotter.NewPolygon(circle(cx, cy, scene.Radius))
	if err != nil {
		return nil, err
	}
	body.Color = bodyColor
	body.LineStyle.Color = bodyColor
	p.Add(body)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: box.XMin + 0.05*box.Width(), Y: box.YMin + 0.90*box.Height()},
			{X: box.XMin + 0.05*box.Width(), Y: box.YMin + 0.85*box.Height()},
		},
		Labels: []string{
			fmt.Sprintf("time = %.1fs", fr.Time),
			fmt.Sprintf("real time = %.1fs", elapsed.Seconds()),
		},
	})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.X.Min, p.X.Max = box.XMin, box.XMax
	p.Y.Min, p.Y.Max = box.YMin, box.YMax

	c := vgimg.NewWith(
		vgimg.UseWH(scene.Width, scene.Height),
		vgimg.UseDPI(dpi(scene)),
	)
	p.Draw(vgdraw.New(c))
	return c.Image(), nil
}

func circle(cx, cy, r float64) plotter.XYs {
	pts := make(plotter.XYs, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i].X = cx + r*math.Cos(a)
		pts[i].Y = cy + r*math.Sin(a)
	}
	return pts
}

func dpi(scene Scene) int {
	if scene.DPI <= 0 {
		return 72
	}
	return scene.DPI
}
