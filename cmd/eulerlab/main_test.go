package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/eulerlab/internal/config"
	"github.com/san-kum/eulerlab/internal/dynamo"
)

func subcommand(t *testing.T, name string) *cobra.Command {
	t.Helper()
	root := newRootCmd()
	cmd, _, err := root.Find([]string{name})
	if err != nil {
		t.Fatalf("find %s: %v", name, err)
	}
	return cmd
}

func setFlags(t *testing.T, cmd *cobra.Command, kv ...string) {
	t.Helper()
	for i := 0; i+1 < len(kv); i += 2 {
		if err := cmd.Flags().Set(kv[i], kv[i+1]); err != nil {
			t.Fatalf("set --%s: %v", kv[i], err)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	cmd := subcommand(t, "run")

	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scenario != config.ScenarioBall || cfg.StepSize != 0.01 || cfg.Mode != config.ModeAnimate {
		t.Errorf("default config = %+v", cfg)
	}

	cfg, err = resolveConfig(cmd, []string{"oscillator"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StepSize != 0.1 || cfg.Oscillator.X0 != 2 {
		t.Errorf("oscillator config = %+v", cfg)
	}
}

func TestResolveFlagsOverride(t *testing.T) {
	cmd := subcommand(t, "run")
	setFlags(t, cmd, "dt", "0.02", "e", "1", "x0", "5", "mode", "none")

	cfg, err := resolveConfig(cmd, []string{"ball"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StepSize != 0.02 || cfg.Ball.E != 1 || cfg.Ball.X0 != 5 || cfg.Mode != config.ModeNone {
		t.Errorf("flags not applied: %+v", cfg)
	}
	// Unset flags keep the defaults.
	if cfg.FPS != config.DefaultFPS || cfg.Ball.Radius != 1 {
		t.Errorf("unset flags leaked: %+v", cfg)
	}
}

func TestResolvePreset(t *testing.T) {
	cmd := subcommand(t, "run")
	setFlags(t, cmd, "preset", "elastic", "t-end", "2")

	cfg, err := resolveConfig(cmd, []string{"ball"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Ball.E != 1 || cfg.TEnd != 2 {
		t.Errorf("preset config = %+v", cfg)
	}

	cmd = subcommand(t, "run")
	setFlags(t, cmd, "preset", "nope")
	if _, err := resolveConfig(cmd, []string{"ball"}); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestResolveConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := "scenario: oscillator\nstep_size: 0.05\noscillator:\n  b: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := subcommand(t, "config")
	setFlags(t, cmd, "config", path, "w0", "3")

	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scenario != config.ScenarioOscillator || cfg.StepSize != 0.05 {
		t.Errorf("file not applied: %+v", cfg)
	}
	if cfg.Oscillator.B != 0 || cfg.Oscillator.W0 != 3 || cfg.Oscillator.X0 != 2 {
		t.Errorf("oscillator = %+v", cfg.Oscillator)
	}

	cmd = subcommand(t, "config")
	setFlags(t, cmd, "config", path)
	if _, err := resolveConfig(cmd, []string{"ball"}); err == nil {
		t.Error("expected scenario mismatch error")
	}
}

func TestResolveInvalid(t *testing.T) {
	cmd := subcommand(t, "run")
	setFlags(t, cmd, "dt", "-1")
	if _, err := resolveConfig(cmd, nil); !errors.Is(err, dynamo.ErrInvalidArgument) {
		t.Errorf("negative dt: got %v", err)
	}

	cmd = subcommand(t, "run")
	if _, err := resolveConfig(cmd, []string{"pendulum"}); !errors.Is(err, dynamo.ErrUnknownScenario) {
		t.Errorf("unknown scenario: got %v", err)
	}
}

func TestSelectColumn(t *testing.T) {
	tr := dynamo.NewTrajectory(1)
	tr.Append(0, dynamo.Sample{Acceleration: -1, Velocity: 2, Position: 3})

	for name, want := range map[string]float64{"acceleration": -1, "velocity": 2, "position": 3} {
		got, err := selectColumn(tr, name)
		if err != nil || got[0] != want {
			t.Errorf("%s = %v, %v", name, got, err)
		}
	}
	if _, err := selectColumn(tr, "jerk"); !errors.Is(err, dynamo.ErrInvalidArgument) {
		t.Errorf("unknown column: got %v", err)
	}
}

func TestRunWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	root := newRootCmd()
	root.SetArgs([]string{
		"run", "oscillator",
		"--t-end", "1",
		"--output", filepath.Join(dir, "osc.svg"),
		"--csv", filepath.Join(dir, "osc.csv"),
		"--json", filepath.Join(dir, "osc.json"),
		"--no-chart",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"osc.svg", "osc.csv", "osc.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
}

func TestParseGrid(t *testing.T) {
	names, ranges, err := parseGrid([]string{"b=0, 0.5,1", "dt=0.01"})
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "b" || names[1] != "dt" {
		t.Errorf("names = %v", names)
	}
	if len(ranges[0]) != 3 || ranges[0][1] != 0.5 || ranges[1][0] != 0.01 {
		t.Errorf("ranges = %v", ranges)
	}

	for _, bad := range [][]string{nil, {"b"}, {"=1"}, {"b=x"}} {
		if _, _, err := parseGrid(bad); !errors.Is(err, dynamo.ErrInvalidArgument) {
			t.Errorf("parseGrid(%q): got %v", bad, err)
		}
	}
}
