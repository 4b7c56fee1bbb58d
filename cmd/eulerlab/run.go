package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/eulerlab/internal/config"
	"github.com/san-kum/eulerlab/internal/experiment"
	"github.com/san-kum/eulerlab/internal/export"
	"github.com/san-kum/eulerlab/internal/viz"
)

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	scenario := ""
	if len(args) > 0 {
		scenario = args[0]
	}

	var cfg *config.Config
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if scenario != "" && scenario != loaded.Scenario {
			return nil, fmt.Errorf("config file is for %q, not %q", loaded.Scenario, scenario)
		}
		cfg = loaded
		scenario = loaded.Scenario
	}

	if scenario == "" {
		scenario = config.ScenarioBall
	}

	if preset != "" {
		if configFile != "" {
			return nil, fmt.Errorf("--preset and --config are mutually exclusive")
		}
		cfg = config.GetPreset(scenario, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scenario))
		}
	}

	if cfg == nil {
		cfg = config.DefaultConfig(scenario)
		// DefaultConfig falls back to the ball; keep the name so Validate
		// reports it.
		cfg.Scenario = scenario
	}

	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("integrator") {
		cfg.Integrator = integrator
	}
	if changed("mode") {
		cfg.Mode = mode
	}
	if changed("t-start") {
		cfg.TStart = tStart
	}
	if changed("t-end") {
		cfg.TEnd = tEnd
	}
	if changed("dt") {
		cfg.StepSize = dt
	}
	if changed("fps") {
		cfg.FPS = fps
	}
	if changed("writer-fps") {
		cfg.WriterFPS = writerFPS
	}
	if changed("output") {
		cfg.OutputPath = output
	}

	switch cfg.Scenario {
	case config.ScenarioOscillator:
		if changed("x0") {
			cfg.Oscillator.X0 = x0
		}
		if changed("v0") {
			cfg.Oscillator.V0 = v0
		}
		if changed("w0") {
			cfg.Oscillator.W0 = w0
		}
		if changed("b") {
			cfg.Oscillator.B = damping
		}
	default:
		if changed("x0") {
			cfg.Ball.X0 = x0
		}
		if changed("v0") {
			cfg.Ball.V0 = v0
		}
		if changed("g") {
			cfg.Ball.G = gravity
		}
		if changed("e") {
			cfg.Ball.E = restitution
		}
		if changed("radius") {
			cfg.Ball.Radius = radius
		}
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("running", "scenario", cfg.Scenario, "integrator", cfg.Integrator, "dt", cfg.StepSize, "t_end", cfg.TEnd)

	exp := experiment.New(cfg, experiment.WithLogger(logger))
	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	logger.Debug("simulated", "samples", result.Trajectory.Len(), "frames", result.Trace.Len(), "elapsed", result.Elapsed)

	if err := experiment.Output(result, cfg); err != nil {
		return err
	}
	if cfg.Mode != config.ModeNone {
		logger.Info("wrote output", "path", cfg.OutputPath, "mode", cfg.Mode)
	}

	if err := writeArtifacts(cfg, result); err != nil {
		return err
	}

	printSummary(cfg, result)
	return nil
}

func writeArtifacts(cfg *config.Config, result *experiment.Result) error {
	if csvPath != "" {
		if err := export.SaveCSV(csvPath, result.Trajectory); err != nil {
			return err
		}
		logger.Info("wrote trajectory", "path", csvPath, "samples", result.Trajectory.Len())
	}
	if jsonPath != "" {
		info := export.RunInfo{
			Scenario:   cfg.Scenario,
			Integrator: cfg.Integrator,
			Dt:         cfg.StepSize,
			TStart:     cfg.TStart,
			TEnd:       cfg.TEnd,
			Metrics:    result.Metrics,
		}
		if err := export.SaveJSON(jsonPath, info, result.Trajectory); err != nil {
			return err
		}
		logger.Info("wrote trajectory", "path", jsonPath, "samples", result.Trajectory.Len())
	}
	return nil
}

func printSummary(cfg *config.Config, result *experiment.Result) {
	var b strings.Builder
	b.WriteString(viz.Title.Render(fmt.Sprintf("%s · %s", cfg.Scenario, cfg.Integrator)))
	b.WriteString("\n")
	b.WriteString(viz.Metric("samples", fmt.Sprintf("%d", result.Trajectory.Len())))
	b.WriteString("  ")
	b.WriteString(viz.Metric("frames", fmt.Sprintf("%d", result.Trace.Len())))
	b.WriteString("  ")
	b.WriteString(viz.Metric("elapsed", result.Elapsed.String()))
	b.WriteString("\n")

	for _, name := range sortedNames(result.Metrics) {
		b.WriteString(viz.Metric(name, fmt.Sprintf("%.6f", result.Metrics[name])))
		b.WriteString("\n")
	}
	if cfg.Scenario == config.ScenarioBall {
		b.WriteString(viz.Metric("contacts", fmt.Sprintf("%d", result.Contacts)))
		if !math.IsNaN(result.FirstContact) {
			b.WriteString("  ")
			b.WriteString(viz.Metric("first contact", fmt.Sprintf("%.2fs", result.FirstContact)))
		}
		b.WriteString("\n")
		if len(result.Peaks) > 0 {
			b.WriteString(viz.Metric("peaks", formatPeaks(result.Peaks, 6)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(viz.Metric("energy drift", fmt.Sprintf("%.3e", result.EnergyDrift)))
		b.WriteString("\n")
	}
	fmt.Println(viz.Panel.Render(strings.TrimRight(b.String(), "\n")))

	if !noChart && result.Trajectory.Len() > 1 {
		fmt.Println(asciigraph.Plot(result.Trajectory.Position,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("position, %g to %g s", cfg.TStart, cfg.TEnd)),
		))
	}
}

func formatPeaks(peaks []float64, n int) string {
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	parts := make([]string, len(peaks))
	for i, p := range peaks {
		parts[i] = fmt.Sprintf("%.3f", p)
	}
	return strings.Join(parts, ", ")
}

func playScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	// Playback always needs the compressed trace and never writes a file.
	cfg.Mode = config.ModeAnimate

	result, err := experiment.New(cfg, experiment.WithLogger(logger)).Run(context.Background())
	if err != nil {
		return err
	}
	logger.Debug("playing", "frames", result.Trace.Len(), "fps", cfg.FPS)

	p := tea.NewProgram(viz.NewPlayer(result.Trace, result.Scene, cfg.FPS, nil), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
