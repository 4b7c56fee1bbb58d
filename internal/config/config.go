package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

const (
	ScenarioOscillator = "oscillator"
	ScenarioBall       = "ball"

	ModePlot    = "plot"
	ModeAnimate = "animate"
	ModeNone    = "none"

	IntegratorSemiImplicit = "semi-implicit"
	IntegratorEuler        = "euler"
)

const (
	DefaultFPS       = 30.0
	DefaultWriterFPS = 15.0

	DefaultOscillatorDt   = 0.1
	DefaultOscillatorTEnd = 10.0
	DefaultOscillatorX0   = 2.0
	DefaultOscillatorW0   = 2 * math.Pi
	DefaultOscillatorB    = 0.5

	DefaultBallDt     = 0.01
	DefaultBallTEnd   = 5.0
	DefaultBallX0     = 10.0
	DefaultBallG      = 9.81
	DefaultBallE      = 0.55
	DefaultBallRadius = 1.0
)

// Config holds every named option of a run. It is read once and not
// mutated while the run is in progress.
type Config struct {
	Scenario   string           `yaml:"scenario"`
	Integrator string           `yaml:"integrator"`
	Mode       string           `yaml:"mode"`
	TStart     float64          `yaml:"t_start"`
	TEnd       float64          `yaml:"t_end"`
	StepSize   float64          `yaml:"step_size"`
	FPS        float64          `yaml:"fps"`
	WriterFPS  float64          `yaml:"writer_fps"`
	OutputPath string           `yaml:"output_path"`
	Oscillator OscillatorConfig `yaml:"oscillator"`
	Ball       BallConfig       `yaml:"ball"`
}

type OscillatorConfig struct {
	W0 float64 `yaml:"w0"`
	B  float64 `yaml:"b"`
	X0 float64 `yaml:"x0"`
	V0 float64 `yaml:"v0"`
}

type BallConfig struct {
	G      float64 `yaml:"g"`
	E      float64 `yaml:"e"`
	Radius float64 `yaml:"radius"`
	X0     float64 `yaml:"x0"`
	V0     float64 `yaml:"v0"`
}

// DefaultConfig returns the constants of the given scenario. An unknown
// scenario falls back to the ball.
func DefaultConfig(scenario string) *Config {
	cfg := &Config{
		Integrator: IntegratorSemiImplicit,
		FPS:        DefaultFPS,
		WriterFPS:  DefaultWriterFPS,
		Oscillator: OscillatorConfig{
			W0: DefaultOscillatorW0,
			B:  DefaultOscillatorB,
			X0: DefaultOscillatorX0,
		},
		Ball: BallConfig{
			G:      DefaultBallG,
			E:      DefaultBallE,
			Radius: DefaultBallRadius,
			X0:     DefaultBallX0,
		},
	}

	switch scenario {
	case ScenarioOscillator:
		cfg.Scenario = ScenarioOscillator
		cfg.Mode = ModePlot
		cfg.TEnd = DefaultOscillatorTEnd
		cfg.StepSize = DefaultOscillatorDt
		cfg.OutputPath = "plots/oscillator.png"
	default:
		cfg.Scenario = ScenarioBall
		cfg.Mode = ModeAnimate
		cfg.TEnd = DefaultBallTEnd
		cfg.StepSize = DefaultBallDt
		cfg.OutputPath = "gifs/ball_bouncing.gif"
	}
	return cfg
}

// Load reads a YAML file on top of the defaults of the scenario it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var head struct {
		Scenario string `yaml:"scenario"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	cfg := DefaultConfig(head.Scenario)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Scenario {
	case ScenarioOscillator, ScenarioBall:
	default:
		return fmt.Errorf("%w: %q", dynamo.ErrUnknownScenario, c.Scenario)
	}

	switch c.Mode {
	case ModePlot, ModeAnimate, ModeNone:
	default:
		return fmt.Errorf("%w: unknown mode %q", dynamo.ErrInvalidArgument, c.Mode)
	}

	switch c.Integrator {
	case IntegratorSemiImplicit, IntegratorEuler:
	default:
		return fmt.Errorf("%w: unknown integrator %q", dynamo.ErrInvalidArgument, c.Integrator)
	}

	if !positive(c.StepSize) {
		return fmt.Errorf("%w: step_size must be positive, got %v", dynamo.ErrInvalidArgument, c.StepSize)
	}
	if !positive(c.FPS) {
		return fmt.Errorf("%w: fps must be positive, got %v", dynamo.ErrInvalidArgument, c.FPS)
	}
	if !positive(c.WriterFPS) {
		return fmt.Errorf("%w: writer_fps must be positive, got %v", dynamo.ErrInvalidArgument, c.WriterFPS)
	}
	if math.IsNaN(c.TStart) || math.IsNaN(c.TEnd) {
		return fmt.Errorf("%w: time bounds must be numbers", dynamo.ErrInvalidArgument)
	}
	if c.Mode != ModeNone && c.OutputPath == "" {
		return fmt.Errorf("%w: output_path is required in %s mode", dynamo.ErrInvalidArgument, c.Mode)
	}

	switch c.Scenario {
	case ScenarioOscillator:
		if !positive(c.Oscillator.W0) {
			return fmt.Errorf("%w: w0 must be positive, got %v", dynamo.ErrInvalidArgument, c.Oscillator.W0)
		}
	case ScenarioBall:
		if c.Ball.E < 0 || c.Ball.E > 1 {
			return fmt.Errorf("%w: restitution must be in [0, 1], got %v", dynamo.ErrInvalidArgument, c.Ball.E)
		}
		if !positive(c.Ball.Radius) {
			return fmt.Errorf("%w: radius must be positive, got %v", dynamo.ErrInvalidArgument, c.Ball.Radius)
		}
	}
	return nil
}

// InitialState returns the starting position and velocity of the scenario.
func (c *Config) InitialState() (x0, v0 float64) {
	if c.Scenario == ScenarioOscillator {
		return c.Oscillator.X0, c.Oscillator.V0
	}
	return c.Ball.X0, c.Ball.V0
}

func (c *Config) SimConfig() dynamo.Config {
	return dynamo.Config{
		TStart: c.TStart,
		TEnd:   c.TEnd,
		Dt:     c.StepSize,
	}
}

func (c *Config) GetParams() map[string]float64 {
	if c.Scenario == ScenarioOscillator {
		return map[string]float64{
			"w0": c.Oscillator.W0,
			"b":  c.Oscillator.B,
		}
	}
	return map[string]float64{
		"g":      c.Ball.G,
		"e":      c.Ball.E,
		"radius": c.Ball.Radius,
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Set assigns a numeric option by name. Scenario parameters apply to the
// configured scenario only.
func (c *Config) Set(name string, value float64) error {
	switch name {
	case "t_start":
		c.TStart = value
	case "t_end":
		c.TEnd = value
	case "dt", "step_size":
		c.StepSize = value
	case "fps":
		c.FPS = value
	case "writer_fps":
		c.WriterFPS = value
	case "x0", "v0":
		c.setInitial(name, value)
	default:
		return c.setParam(name, value)
	}
	return nil
}

func (c *Config) setInitial(name string, value float64) {
	switch {
	case c.Scenario == ScenarioOscillator && name == "x0":
		c.Oscillator.X0 = value
	case c.Scenario == ScenarioOscillator:
		c.Oscillator.V0 = value
	case name == "x0":
		c.Ball.X0 = value
	default:
		c.Ball.V0 = value
	}
}

func (c *Config) setParam(name string, value float64) error {
	if c.Scenario == ScenarioOscillator {
		switch name {
		case "w0":
			c.Oscillator.W0 = value
			return nil
		case "b":
			c.Oscillator.B = value
			return nil
		}
	} else {
		switch name {
		case "g":
			c.Ball.G = value
			return nil
		case "e":
			c.Ball.E = value
			return nil
		case "radius":
			c.Ball.Radius = value
			return nil
		}
	}
	return fmt.Errorf("%w: unknown option %q for %s", dynamo.ErrInvalidArgument, name, c.Scenario)
}
