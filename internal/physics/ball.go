package physics

import (
	"fmt"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

const (
	DefaultGravity     = 9.81
	DefaultRestitution = 0.55
	DefaultBallRadius  = 1.0
)

// Ball falls freely under gravity and bounces on a floor at height 0.
// Position is the height of the ball's centre, so contact happens when it
// drops to Radius.
type Ball struct {
	G      float64 // gravitational acceleration
	E      float64 // restitution coefficient in [0, 1]
	Radius float64
}

func NewBall() *Ball {
	return &Ball{
		G:      DefaultGravity,
		E:      DefaultRestitution,
		Radius: DefaultBallRadius,
	}
}

func (b *Ball) Acceleration(x, v, t float64) float64 {
	return -b.G
}

// Constrain is applied after the unconstrained update. On contact the
// normal force cancels gravity for the step, the velocity is reflected and
// scaled by E, and the ball is put back on the floor.
func (b *Ball) Constrain(s dynamo.Sample) (dynamo.Sample, bool) {
	if s.Position > b.Radius {
		return s, false
	}
	s.Acceleration = 0
	s.Velocity += -(1 + b.E) * s.Velocity
	s.Position = b.Radius
	return s, true
}

// Energy is the mechanical energy per unit mass, measured from the floor.
func (b *Ball) Energy(s dynamo.Sample) float64 {
	return b.G*s.Position + 0.5*s.Velocity*s.Velocity
}

func (b *Ball) GetParams() map[string]float64 {
	return map[string]float64{
		"g":      b.G,
		"e":      b.E,
		"radius": b.Radius,
	}
}

func (b *Ball) SetParam(name string, value float64) error {
	switch name {
	case "g":
		b.G = value
	case "e":
		if value < 0 || value > 1 {
			return fmt.Errorf("restitution must be in [0, 1], got %g", value)
		}
		b.E = value
	case "radius":
		b.Radius = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
