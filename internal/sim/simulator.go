package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

type Simulator struct {
	law        dynamo.Law
	integrator dynamo.Stepper
	constraint dynamo.Constraint
	metrics    []dynamo.Metric
	observers  []dynamo.Observer
}

// New builds a simulator. constraint may be nil.
func New(law dynamo.Law, integrator dynamo.Stepper, constraint dynamo.Constraint) *Simulator {
	return &Simulator{
		law:        law,
		integrator: integrator,
		constraint: constraint,
		metrics:    make([]dynamo.Metric, 0),
		observers:  make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

type Result struct {
	Trajectory  *dynamo.Trajectory
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Contacts    int
}

// Run integrates from (x0, v0) over the time span of cfg. Every span entry
// gets one recorded sample; the state is updated between consecutive
// entries only, so the trajectory has exactly len(span) samples and no
// update follows the last one.
func (s *Simulator) Run(ctx context.Context, x0, v0 float64, cfg dynamo.Config) (*Result, error) {
	span, err := dynamo.TimeSpan(cfg.TStart, cfg.TEnd, cfg.Dt)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Trajectory: dynamo.NewTrajectory(len(span)),
		Metrics:    make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	sample := dynamo.Sample{
		Acceleration: s.law.Acceleration(x0, v0, span[0]),
		Velocity:     v0,
		Position:     x0,
	}
	s.record(result, 0, span[0], sample, false)

	initialEnergy := s.computeEnergy(sample)

	for i := 1; i < len(span); i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		next := s.integrator.Step(s.law, sample, span[i-1], cfg.Dt)

		contact := false
		if s.constraint != nil {
			next, contact = s.constraint.Constrain(next)
		}

		if cfg.ValidateState && !next.IsValid() {
			return result, &dynamo.SimulationError{
				Step:    i,
				Time:    span[i],
				Sample:  next,
				Wrapped: dynamo.ErrInvalidState,
			}
		}

		sample = next
		result.StepsTaken++
		if contact {
			result.Contacts++
		}
		s.record(result, i, span[i], sample, contact)
	}

	finalEnergy := s.computeEnergy(sample)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) record(result *Result, i int, t float64, sample dynamo.Sample, contact bool) {
	result.Trajectory.Append(t, sample)
	for _, m := range s.metrics {
		m.Observe(sample, t)
	}
	for _, obs := range s.observers {
		obs.OnSample(i, sample, t, contact)
	}
}

func (s *Simulator) computeEnergy(sample dynamo.Sample) float64 {
	if h, ok := s.law.(dynamo.Hamiltonian); ok {
		return h.Energy(sample)
	}
	return 0
}

// RunWithCallback streams samples to callback instead of collecting them.
// Returning false from callback stops the run early.
func (s *Simulator) RunWithCallback(ctx context.Context, x0, v0 float64, cfg dynamo.Config, callback func(i int, sample dynamo.Sample, t float64) bool) error {
	span, err := dynamo.TimeSpan(cfg.TStart, cfg.TEnd, cfg.Dt)
	if err != nil {
		return err
	}

	sample := dynamo.Sample{
		Acceleration: s.law.Acceleration(x0, v0, span[0]),
		Velocity:     v0,
		Position:     x0,
	}
	if !callback(0, sample, span[0]) {
		return nil
	}

	for i := 1; i < len(span); i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		sample = s.integrator.Step(s.law, sample, span[i-1], cfg.Dt)
		if s.constraint != nil {
			sample, _ = s.constraint.Constrain(sample)
		}

		if cfg.ValidateState && !sample.IsValid() {
			return fmt.Errorf("invalid state at t=%.4f: %w", span[i], dynamo.ErrInvalidState)
		}

		if !callback(i, sample, span[i]) {
			return nil
		}
	}

	return nil
}
