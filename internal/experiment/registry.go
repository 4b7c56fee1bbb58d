package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/eulerlab/internal/config"
	"github.com/san-kum/eulerlab/internal/dynamo"
	"github.com/san-kum/eulerlab/internal/integrators"
	"github.com/san-kum/eulerlab/internal/metrics"
	"github.com/san-kum/eulerlab/internal/physics"
	"github.com/san-kum/eulerlab/internal/render"
)

// Scenario is everything needed to simulate and draw one configured run.
type Scenario struct {
	Name       string
	Law        dynamo.Law
	Constraint dynamo.Constraint // nil when the scenario has no contact rule
	X0, V0     float64
	Scene      render.Scene
	Metrics    []dynamo.Metric
	Observers  []dynamo.Observer

	peaks    *metrics.Peaks
	contacts *metrics.Contacts
}

type Builder func(cfg *config.Config) (*Scenario, error)

type Registry struct {
	scenarios   map[string]Builder
	integrators map[string]func() dynamo.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		scenarios:   make(map[string]Builder),
		integrators: make(map[string]func() dynamo.Stepper),
	}

	r.scenarios[config.ScenarioOscillator] = buildOscillator
	r.scenarios[config.ScenarioBall] = buildBall

	r.integrators[config.IntegratorSemiImplicit] = func() dynamo.Stepper { return integrators.NewSemiImplicitEuler() }
	r.integrators[config.IntegratorEuler] = func() dynamo.Stepper { return integrators.NewEuler() }

	return r
}

// Register adds or replaces a scenario builder.
func (r *Registry) Register(name string, b Builder) {
	r.scenarios[name] = b
}

func (r *Registry) GetScenario(cfg *config.Config) (*Scenario, error) {
	fn, ok := r.scenarios[cfg.Scenario]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownScenario, cfg.Scenario)
	}
	return fn(cfg)
}

func (r *Registry) GetIntegrator(name string) (dynamo.Stepper, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown integrator: %s", dynamo.ErrInvalidArgument, name)
	}
	return fn(), nil
}

func (r *Registry) ListScenarios() []string {
	return sortedKeys(r.scenarios)
}

func (r *Registry) ListIntegrators() []string {
	return sortedKeys(r.integrators)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func applyParams(m physics.Configurable, params map[string]float64) error {
	for _, name := range sortedKeys(params) {
		if err := m.SetParam(name, params[name]); err != nil {
			return fmt.Errorf("%w: %w", dynamo.ErrInvalidArgument, err)
		}
	}
	return nil
}

func buildOscillator(cfg *config.Config) (*Scenario, error) {
	osc := physics.NewOscillator()
	if err := applyParams(osc, cfg.GetParams()); err != nil {
		return nil, err
	}
	x0, v0 := cfg.InitialState()
	return &Scenario{
		Name:    config.ScenarioOscillator,
		Law:     osc,
		X0:      x0,
		V0:      v0,
		Scene:   render.OscillatorScene(cfg.TStart, cfg.TEnd, x0),
		Metrics: []dynamo.Metric{metrics.NewEnergy(osc), metrics.NewEnergyDrift(osc)},
	}, nil
}

func buildBall(cfg *config.Config) (*Scenario, error) {
	ball := physics.NewBall()
	if err := applyParams(ball, cfg.GetParams()); err != nil {
		return nil, err
	}
	x0, v0 := cfg.InitialState()
	peaks := metrics.NewPeaks()
	contacts := metrics.NewContacts()
	return &Scenario{
		Name:       config.ScenarioBall,
		Law:        ball,
		Constraint: ball,
		X0:         x0,
		V0:         v0,
		Scene:      render.BallScene(cfg.TStart, cfg.TEnd, x0, ball.Radius),
		Metrics:    []dynamo.Metric{metrics.NewEnergy(ball), peaks, contacts},
		Observers:  []dynamo.Observer{contacts},
		peaks:      peaks,
		contacts:   contacts,
	}, nil
}
