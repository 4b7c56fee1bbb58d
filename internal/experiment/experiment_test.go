package experiment

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/eulerlab/internal/config"
	"github.com/san-kum/eulerlab/internal/dynamo"
)

func TestRegistryLists(t *testing.T) {
	r := NewRegistry()

	scenarios := r.ListScenarios()
	if len(scenarios) != 2 || scenarios[0] != "ball" || scenarios[1] != "oscillator" {
		t.Errorf("scenarios = %v", scenarios)
	}

	ints := r.ListIntegrators()
	if len(ints) != 2 || ints[0] != "euler" || ints[1] != "semi-implicit" {
		t.Errorf("integrators = %v", ints)
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()

	cfg := config.DefaultConfig(config.ScenarioBall)
	cfg.Scenario = "pendulum"
	if _, err := r.GetScenario(cfg); !errors.Is(err, dynamo.ErrUnknownScenario) {
		t.Errorf("unknown scenario: got %v", err)
	}

	if _, err := r.GetIntegrator("rk4"); !errors.Is(err, dynamo.ErrInvalidArgument) {
		t.Errorf("unknown integrator: got %v", err)
	}
}

func TestScenarioParams(t *testing.T) {
	cfg := config.DefaultConfig(config.ScenarioBall)
	cfg.Ball.E = 1
	cfg.Ball.Radius = 0.5

	sc, err := NewRegistry().GetScenario(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Constraint == nil {
		t.Fatal("ball scenario has no constraint")
	}
	if sc.Scene.Radius != 0.5 {
		t.Errorf("scene radius = %v, want 0.5", sc.Scene.Radius)
	}
	if sc.X0 != 10 || sc.V0 != 0 {
		t.Errorf("initial state = (%v, %v)", sc.X0, sc.V0)
	}

	osc, err := NewRegistry().GetScenario(config.DefaultConfig(config.ScenarioOscillator))
	if err != nil {
		t.Fatal(err)
	}
	if osc.Constraint != nil {
		t.Error("oscillator should have no constraint")
	}
}

func TestRunOscillator(t *testing.T) {
	cfg := config.DefaultConfig(config.ScenarioOscillator)
	res, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := res.Trajectory.Len(); got != 102 {
		t.Errorf("samples = %d, want 102", got)
	}
	if res.Trace.Len() != res.Trajectory.Len() {
		t.Errorf("plot mode trace has %d entries, want %d", res.Trace.Len(), res.Trajectory.Len())
	}
	if res.Trajectory.Position[0] != 2 {
		t.Errorf("x0 = %v, want 2", res.Trajectory.Position[0])
	}
	for _, name := range []string{"energy", "energy_drift"} {
		if _, ok := res.Metrics[name]; !ok {
			t.Errorf("missing metric %q", name)
		}
	}
	if !math.IsNaN(res.FirstContact) {
		t.Errorf("oscillator first contact = %v, want NaN", res.FirstContact)
	}
	if res.Contacts != 0 {
		t.Errorf("oscillator contacts = %d", res.Contacts)
	}
}

func TestRunBall(t *testing.T) {
	cfg := config.DefaultConfig(config.ScenarioBall)
	res, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := res.Trajectory.Len(); got != 502 {
		t.Errorf("samples = %d, want 502", got)
	}
	if got := res.Trace.Len(); got != 151 {
		t.Errorf("frames = %d, want 151", got)
	}
	if res.Trace.Indices[0] != 0 {
		t.Errorf("first frame index = %d, want 0", res.Trace.Indices[0])
	}

	if len(res.Peaks) < 3 || res.Peaks[0] != 10 {
		t.Fatalf("peaks = %v", res.Peaks)
	}
	for i := 1; i < len(res.Peaks); i++ {
		if res.Peaks[i] >= res.Peaks[i-1] {
			t.Errorf("peak %d = %v not below %v", i, res.Peaks[i], res.Peaks[i-1])
		}
	}

	if res.Contacts == 0 {
		t.Error("ball never touched the floor")
	}
	if res.FirstContact < 1.3 || res.FirstContact > 1.4 {
		t.Errorf("first contact at %v, want about 1.35", res.FirstContact)
	}
	for i, x := range res.Trajectory.Position {
		if x < cfg.Ball.Radius {
			t.Fatalf("sample %d below floor: %v", i, x)
		}
	}
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig(config.ScenarioBall)
	cfg.StepSize = 0

	_, err := New(cfg).Run(context.Background())
	if !errors.Is(err, dynamo.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(config.DefaultConfig(config.ScenarioBall)).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestOutputModes(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		scenario string
		mode     string
		file     string
	}{
		{"plot", config.ScenarioOscillator, config.ModePlot, "osc.png"},
		{"animate", config.ScenarioBall, config.ModeAnimate, "ball.gif"},
		{"none", config.ScenarioBall, config.ModeNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig(tt.scenario)
			cfg.Mode = tt.mode
			cfg.TEnd = 0.3
			cfg.FPS = 10
			cfg.OutputPath = filepath.Join(dir, "out", tt.file)

			res, err := New(cfg).Run(context.Background())
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if err := Output(res, cfg); err != nil {
				t.Fatalf("Output: %v", err)
			}

			if tt.file == "" {
				return
			}
			info, err := os.Stat(cfg.OutputPath)
			if err != nil {
				t.Fatalf("artifact missing: %v", err)
			}
			if info.Size() == 0 {
				t.Error("artifact is empty")
			}
		})
	}
}

func TestOutputUnknownMode(t *testing.T) {
	cfg := config.DefaultConfig(config.ScenarioOscillator)
	res, err := New(cfg).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	cfg.Mode = "video"
	if err := Output(res, cfg); !errors.Is(err, dynamo.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}
