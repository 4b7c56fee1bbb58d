// Package physics provides the acceleration laws for the simulated
// scenarios.
//
// Each model implements [dynamo.Law]; models with a contact rule also
// implement [dynamo.Constraint]:
//
//   - [Oscillator]: linear damped harmonic oscillator
//   - [Ball]: ball falling onto a floor and bouncing with energy loss
//
// Both implement [dynamo.Hamiltonian] and [Configurable], so their energy can
// be monitored and their parameters adjusted by name.
//
// # Energy
//
//	osc := physics.NewOscillator()
//	energy := osc.Energy(sample)
package physics

// Configurable exposes named parameters for presets and interactive use.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
