package analysis

import (
	"strings"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

type Point struct{ X, Y float64 }

// PhasePortrait is the trajectory in the (position, velocity) plane.
type PhasePortrait struct {
	Points []Point
}

func NewPhasePortrait(tr *dynamo.Trajectory) *PhasePortrait {
	p := &PhasePortrait{Points: make([]Point, tr.Len())}
	for i := range p.Points {
		p.Points[i] = Point{X: tr.Position[i], Y: tr.Velocity[i]}
	}
	return p
}

// ASCII draws the portrait on a width x height character grid, with the
// axes drawn where they cross the visible area.
func (p *PhasePortrait) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}

	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX, maxX = minX-rangeX*0.1, maxX+rangeX*0.1
	minY, maxY = minY-rangeY*0.1, maxY+rangeY*0.1
	rangeX, rangeY = maxX-minX, maxY-minY

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	col := func(x float64) int { return int((x - minX) / rangeX * float64(width-1)) }
	row := func(y float64) int { return height - 1 - int((y-minY)/rangeY*float64(height-1)) }

	for _, pt := range p.Points {
		r, c := row(pt.Y), col(pt.X)
		if r >= 0 && r < height && c >= 0 && c < width {
			grid[r][c] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		c := col(0)
		for r := 0; r < height; r++ {
			if grid[r][c] == ' ' {
				grid[r][c] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		r := row(0)
		for c := 0; c < width; c++ {
			if grid[r][c] == ' ' {
				grid[r][c] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.WriteString(string(line))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Crossings returns the interpolated times at which the position passes
// upward through level.
func Crossings(tr *dynamo.Trajectory, level float64) []float64 {
	var out []float64
	for i := 1; i < tr.Len(); i++ {
		prev, curr := tr.Position[i-1], tr.Position[i]
		if prev < level && curr >= level {
			frac := (level - prev) / (curr - prev)
			out = append(out, tr.Times[i-1]+frac*(tr.Times[i]-tr.Times[i-1]))
		}
	}
	return out
}

// Period is the mean spacing of upward zero crossings, or 0 with fewer
// than two crossings.
func Period(tr *dynamo.Trajectory) float64 {
	c := Crossings(tr, 0)
	if len(c) < 2 {
		return 0
	}
	return (c[len(c)-1] - c[0]) / float64(len(c)-1)
}
