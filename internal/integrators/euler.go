package integrators

import "github.com/san-kum/eulerlab/internal/dynamo"

// SemiImplicitEuler updates velocity first and then advances position with
// the new velocity. This ordering keeps the energy of undamped oscillators
// bounded.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (e *SemiImplicitEuler) Step(law dynamo.Law, s dynamo.Sample, t, dt float64) dynamo.Sample {
	a := law.Acceleration(s.Position, s.Velocity, t)
	v := s.Velocity + a*dt
	x := s.Position + v*dt
	return dynamo.Sample{Acceleration: a, Velocity: v, Position: x}
}

// Euler is the plain explicit update, advancing position with the old
// velocity.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(law dynamo.Law, s dynamo.Sample, t, dt float64) dynamo.Sample {
	a := law.Acceleration(s.Position, s.Velocity, t)
	x := s.Position + s.Velocity*dt
	v := s.Velocity + a*dt
	return dynamo.Sample{Acceleration: a, Velocity: v, Position: x}
}
