package experiment

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/eulerlab/internal/config"
	"github.com/san-kum/eulerlab/internal/dynamo"
	"github.com/san-kum/eulerlab/internal/render"
	"github.com/san-kum/eulerlab/internal/sim"
)

// Result is a finished run: the full trajectory, the trace to animate and
// the metric values.
type Result struct {
	Trajectory   *dynamo.Trajectory
	Trace        dynamo.Trace
	Scene        render.Scene
	Metrics      map[string]float64
	EnergyDrift  float64
	Contacts     int
	FirstContact float64 // NaN without contact or without a contact rule
	Peaks        []float64
	Elapsed      time.Duration
}

type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	logger    *log.Logger
	scenario  *Scenario
	simulator *sim.Simulator
}

type Option func(*Experiment)

func WithLogger(l *log.Logger) Option {
	return func(e *Experiment) { e.logger = l }
}

func WithRegistry(r *Registry) Option {
	return func(e *Experiment) { e.registry = r }
}

func New(cfg *config.Config, opts ...Option) *Experiment {
	e := &Experiment{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = NewRegistry()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Setup validates the configuration and wires law, stepper, constraint and
// metrics into a simulator. Run calls it when needed.
func (e *Experiment) Setup() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	sc, err := e.registry.GetScenario(e.cfg)
	if err != nil {
		return err
	}
	stepper, err := e.registry.GetIntegrator(e.cfg.Integrator)
	if err != nil {
		return err
	}

	e.simulator = sim.New(sc.Law, stepper, sc.Constraint)
	for _, m := range sc.Metrics {
		e.simulator.AddMetric(m)
	}
	for _, o := range sc.Observers {
		e.simulator.AddObserver(o)
	}
	e.scenario = sc

	e.logger.Debug("experiment ready", "scenario", sc.Name, "integrator", e.cfg.Integrator, "dt", e.cfg.StepSize)
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.simulator == nil {
		if err := e.Setup(); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	res, err := e.simulator.Run(ctx, e.scenario.X0, e.scenario.V0, e.cfg.SimConfig())
	if err != nil {
		return nil, err
	}

	out := &Result{
		Trajectory:   res.Trajectory,
		Scene:        e.scenario.Scene,
		Metrics:      res.Metrics,
		EnergyDrift:  res.EnergyDrift,
		Contacts:     res.Contacts,
		FirstContact: firstContact(e.scenario),
	}
	if e.scenario.peaks != nil {
		out.Peaks = e.scenario.peaks.Heights()
	}

	if e.cfg.Mode == config.ModeAnimate {
		out.Trace, err = res.Trajectory.Compress(e.cfg.FPS)
		if err != nil {
			return nil, err
		}
	} else {
		out.Trace = fullTrace(res.Trajectory)
	}
	out.Elapsed = time.Since(start)

	e.logger.Debug("experiment done",
		"samples", out.Trajectory.Len(),
		"frames", out.Trace.Len(),
		"elapsed", out.Elapsed)
	return out, nil
}

// Scenario returns the wired scenario, or nil before Setup.
func (e *Experiment) Scenario() *Scenario {
	return e.scenario
}

// Output writes the artifact selected by cfg.Mode: a static position plot,
// an animated GIF, or nothing.
func Output(result *Result, cfg *config.Config) error {
	switch cfg.Mode {
	case config.ModePlot:
		return render.SavePlot(cfg.OutputPath, result.Scene, result.Trajectory.Times, result.Trajectory.Position)
	case config.ModeAnimate:
		frames := render.NewFrames(result.Trace)
		return render.WriteGIF(cfg.OutputPath, frames, result.Scene, cfg.WriterFPS, render.NewSession(nil))
	case config.ModeNone:
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q", dynamo.ErrInvalidArgument, cfg.Mode)
	}
}

func fullTrace(tr *dynamo.Trajectory) dynamo.Trace {
	n := tr.Len()
	trace := dynamo.Trace{
		Indices: make([]int, n),
		Times:   make([]float64, n),
		Values:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		trace.Indices[i] = i
	}
	copy(trace.Times, tr.Times)
	copy(trace.Values, tr.Position)
	return trace
}

func firstContact(sc *Scenario) float64 {
	if sc.contacts == nil {
		return math.NaN()
	}
	return sc.contacts.FirstContact()
}
