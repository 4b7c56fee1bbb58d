package dynamo

import (
	"fmt"
	"math"
)

// Sample is the state of a second-order system at one time index.
// Acceleration is the value that produced the sample.
type Sample struct {
	Acceleration float64
	Velocity     float64
	Position     float64
}

func (s Sample) IsValid() bool {
	for _, v := range [3]float64{s.Acceleration, s.Velocity, s.Position} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Sample) String() string {
	return fmt.Sprintf("a=%.6g v=%.6g x=%.6g", s.Acceleration, s.Velocity, s.Position)
}

// Law computes acceleration from the current state.
type Law interface {
	Acceleration(position, velocity, t float64) float64
}

// LawFunc adapts a plain function to the Law interface.
type LawFunc func(position, velocity, t float64) float64

func (f LawFunc) Acceleration(position, velocity, t float64) float64 {
	return f(position, velocity, t)
}

// Constraint corrects a sample after the unconstrained update. The bool
// result reports whether the correction was applied.
type Constraint interface {
	Constrain(s Sample) (Sample, bool)
}

type Stepper interface {
	Step(law Law, s Sample, t, dt float64) Sample
}

type Hamiltonian interface {
	Energy(s Sample) float64
}

type Metric interface {
	Name() string
	Observe(s Sample, t float64)
	Value() float64
	Reset()
}

// Observer is notified of every recorded sample. contact reports whether
// a constraint corrected it.
type Observer interface {
	OnSample(i int, s Sample, t float64, contact bool)
}

type Config struct {
	TStart        float64
	TEnd          float64
	Dt            float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		TStart: 0,
		TEnd:   10.0,
		Dt:     0.01,
	}
}

// Trajectory holds the parallel sequences produced by one run. All four
// slices have the same length; Times is the full time span, including its
// trailing sample past the end time.
type Trajectory struct {
	Times        []float64
	Acceleration []float64
	Velocity     []float64
	Position     []float64
}

func NewTrajectory(capacity int) *Trajectory {
	return &Trajectory{
		Times:        make([]float64, 0, capacity),
		Acceleration: make([]float64, 0, capacity),
		Velocity:     make([]float64, 0, capacity),
		Position:     make([]float64, 0, capacity),
	}
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

func (tr *Trajectory) Append(t float64, s Sample) {
	tr.Times = append(tr.Times, t)
	tr.Acceleration = append(tr.Acceleration, s.Acceleration)
	tr.Velocity = append(tr.Velocity, s.Velocity)
	tr.Position = append(tr.Position, s.Position)
}

func (tr *Trajectory) At(i int) Sample {
	return Sample{
		Acceleration: tr.Acceleration[i],
		Velocity:     tr.Velocity[i],
		Position:     tr.Position[i],
	}
}

// Compress downsamples the position sequence to fps frames per simulated
// second. See [Compress].
func (tr *Trajectory) Compress(fps float64) (Trace, error) {
	idx, err := CompressIndices(fps, tr.Times)
	if err != nil {
		return Trace{}, err
	}
	trace := Trace{
		Indices: idx,
		Times:   make([]float64, len(idx)),
		Values:  make([]float64, len(idx)),
	}
	for k, i := range idx {
		trace.Times[k] = tr.Times[i]
		trace.Values[k] = tr.Position[i]
	}
	return trace, nil
}

// Trace is a compressed (value, time) sequence ready for rendering.
// Indices points back into the source trajectory.
type Trace struct {
	Indices []int
	Times   []float64
	Values  []float64
}

func (t Trace) Len() int { return len(t.Times) }
