package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Config sources
	configFile string
	preset     string
	// Run options, applied only when set on the command line
	integrator string
	mode       string
	tStart     float64
	tEnd       float64
	dt         float64
	fps        float64
	writerFPS  float64
	output     string
	x0         float64
	v0         float64
	// Scenario parameters
	w0          float64
	damping     float64
	gravity     float64
	restitution float64
	radius      float64
	// Artifacts
	csvPath  string
	jsonPath string
	noChart  bool
	// plot command
	column string
	// config command
	savePath string

	logLevel string
	logger   = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "eulerlab",
	})
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "eulerlab",
		Short:         "forward-euler simulation of an oscillator and a bouncing ball",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(lvl)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "simulate a scenario and write its plot or animation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().StringVar(&csvPath, "csv", "", "also write the trajectory as CSV")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "also write the trajectory and metrics as JSON")
	runCmd.Flags().BoolVar(&noChart, "no-chart", false, "skip the terminal chart")

	playCmd := &cobra.Command{
		Use:   "play [scenario]",
		Short: "play a scenario in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playScenario,
	}
	addConfigFlags(playCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [file.csv]",
		Short: "chart a trajectory CSV in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCSV,
	}
	plotCmd.Flags().StringVar(&column, "column", "position", "column to chart (acceleration, velocity, position)")

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config [scenario]",
		Short: "print the resolved configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  dumpConfig,
	}
	addConfigFlags(configCmd)
	configCmd.Flags().StringVar(&savePath, "save", "", "write the configuration to a file instead of stdout")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [scenario]",
		Short: "frequency analysis and phase portrait",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeScenario,
	}
	addConfigFlags(analyzeCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "grid search over options, minimizing a metric",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepScenario,
	}
	addConfigFlags(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&grid, "grid", nil, "option values as name=v1,v2,... (repeatable)")
	sweepCmd.Flags().StringVar(&metric, "metric", "energy", "metric to minimize")

	batchCmd := &cobra.Command{
		Use:   "batch [file.yaml]",
		Short: "run a scripted batch of simulations",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	rootCmd.AddCommand(runCmd, playCmd, plotCmd, presetsCmd, configCmd, analyzeCmd, sweepCmd, batchCmd)
	return rootCmd
}

func addConfigFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.StringVar(&integrator, "integrator", "semi-implicit", "integrator (semi-implicit, euler)")
	f.StringVar(&mode, "mode", "", "output mode (plot, animate, none)")
	f.Float64Var(&tStart, "t-start", 0, "start time")
	f.Float64Var(&tEnd, "t-end", 0, "end time")
	f.Float64Var(&dt, "dt", 0, "step size")
	f.Float64Var(&fps, "fps", 30, "animation frames per simulated second")
	f.Float64Var(&writerFPS, "writer-fps", 15, "playback rate written into the gif")
	f.StringVar(&output, "output", "", "output path (.png, .svg, .pdf or .gif)")
	f.Float64Var(&x0, "x0", 0, "initial position")
	f.Float64Var(&v0, "v0", 0, "initial velocity")
	f.Float64Var(&w0, "w0", 0, "natural angular frequency (oscillator)")
	f.Float64Var(&damping, "b", 0, "damping ratio (oscillator)")
	f.Float64Var(&gravity, "g", 0, "gravitational acceleration (ball)")
	f.Float64Var(&restitution, "e", 0, "restitution coefficient (ball)")
	f.Float64Var(&radius, "radius", 0, "ball radius (ball)")
}
