package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/eulerlab/internal/analysis"
	"github.com/san-kum/eulerlab/internal/automation"
	"github.com/san-kum/eulerlab/internal/config"
	"github.com/san-kum/eulerlab/internal/dynamo"
	"github.com/san-kum/eulerlab/internal/experiment"
	"github.com/san-kum/eulerlab/internal/optim"
)

var (
	grid   []string
	metric string
)

func analyzeScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg.Mode = config.ModeNone

	result, err := experiment.New(cfg, experiment.WithLogger(logger)).Run(context.Background())
	if err != nil {
		return err
	}
	tr := result.Trajectory

	freq, err := analysis.DominantFrequency(tr, cfg.StepSize)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "scenario\t%s\n", cfg.Scenario)
	fmt.Fprintf(w, "samples\t%d\n", tr.Len())
	fmt.Fprintf(w, "dominant frequency\t%.4f Hz\n", freq)
	if cfg.Scenario == config.ScenarioOscillator {
		if p := analysis.Period(tr); p > 0 {
			fmt.Fprintf(w, "measured period\t%.4f s\n", p)
		}
		if b := cfg.Oscillator.B; b < 1 {
			fmt.Fprintf(w, "damped natural frequency\t%.4f Hz\n", cfg.Oscillator.W0*math.Sqrt(1-b*b)/(2*math.Pi))
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println("\nphase portrait (position vs velocity):")
	fmt.Print(analysis.NewPhasePortrait(tr).ASCII(70, 20))
	return nil
}

func sweepScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	names, ranges, err := parseGrid(grid)
	if err != nil {
		return err
	}
	search, err := optim.NewGridSearch(names, ranges)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("sweeping", "scenario", cfg.Scenario, "metric", metric, "runs", search.Size())
	best, points, err := search.Search(ctx, optim.MetricEvaluator(cfg, metric))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.Join(names, "\t"), metric)
	for _, p := range points {
		cols := make([]string, len(names))
		for i, n := range names {
			cols[i] = strconv.FormatFloat(p.Params[n], 'g', -1, 64)
		}
		val := fmt.Sprintf("%.6g", p.Value)
		if p.Err != nil {
			val = "error: " + p.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\n", strings.Join(cols, "\t"), val)
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nbest: %s -> %s = %.6g\n", formatParams(best.Params), metric, best.Value)
	return nil
}

// parseGrid reads entries of the form name=v1,v2,...
func parseGrid(entries []string) ([]string, [][]float64, error) {
	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("%w: at least one --grid entry is required", dynamo.ErrInvalidArgument)
	}
	names := make([]string, 0, len(entries))
	ranges := make([][]float64, 0, len(entries))
	for _, e := range entries {
		name, list, ok := strings.Cut(e, "=")
		if !ok || name == "" || list == "" {
			return nil, nil, fmt.Errorf("%w: grid entry %q is not name=v1,v2", dynamo.ErrInvalidArgument, e)
		}
		var vals []float64
		for _, s := range strings.Split(list, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: grid entry %q: %w", dynamo.ErrInvalidArgument, e, err)
			}
			vals = append(vals, v)
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}
	return names, ranges, nil
}

func formatParams(p map[string]float64) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%g", k, p[k])
	}
	return strings.Join(parts, " ")
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := automation.LoadBatch(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.NewRunner(logger).Run(ctx, b)
	for _, r := range results {
		logger.Info("finished", "name", r.Name, "scenario", r.Config.Scenario, "samples", r.Result.Trajectory.Len(), "path", r.Config.OutputPath)
	}
	return err
}
