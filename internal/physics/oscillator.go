package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

const (
	DefaultNaturalFrequency = 2 * math.Pi
	DefaultDampingRatio     = 0.5
)

// Oscillator is x'' + 2*B*W0*x' + W0^2*x = 0.
type Oscillator struct {
	W0 float64 // natural frequency, rad/s
	B  float64 // damping ratio
}

func NewOscillator() *Oscillator {
	return &Oscillator{
		W0: DefaultNaturalFrequency,
		B:  DefaultDampingRatio,
	}
}

func (o *Oscillator) Acceleration(x, v, t float64) float64 {
	return -2*o.B*o.W0*v - o.W0*o.W0*x
}

// Energy is the mechanical energy per unit mass.
func (o *Oscillator) Energy(s dynamo.Sample) float64 {
	return 0.5*s.Velocity*s.Velocity + 0.5*o.W0*o.W0*s.Position*s.Position
}

func (o *Oscillator) GetParams() map[string]float64 {
	return map[string]float64{
		"w0": o.W0,
		"b":  o.B,
	}
}

func (o *Oscillator) SetParam(name string, value float64) error {
	switch name {
	case "w0":
		o.W0 = value
	case "b":
		o.B = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
