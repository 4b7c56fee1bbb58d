package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/eulerlab/internal/config"
	"github.com/san-kum/eulerlab/internal/dynamo"
	"github.com/san-kum/eulerlab/internal/export"
)

func plotCSV(cmd *cobra.Command, args []string) error {
	tr, err := export.LoadCSV(args[0])
	if err != nil {
		return err
	}
	data, err := selectColumn(tr, column)
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return fmt.Errorf("%w: %s has %d samples, need at least 2", dynamo.ErrInvalidArgument, args[0], len(data))
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s, %g to %g s", column, tr.Times[0], tr.Times[len(tr.Times)-1])),
	))
	return nil
}

func selectColumn(tr *dynamo.Trajectory, name string) ([]float64, error) {
	switch name {
	case "position":
		return tr.Position, nil
	case "velocity":
		return tr.Velocity, nil
	case "acceleration":
		return tr.Acceleration, nil
	}
	return nil, fmt.Errorf("%w: unknown column %q", dynamo.ErrInvalidArgument, name)
}

func listPresets(cmd *cobra.Command, args []string) error {
	scenarios := []string{config.ScenarioBall, config.ScenarioOscillator}
	if len(args) > 0 {
		scenarios = args[:1]
	}
	for _, s := range scenarios {
		presets := config.ListPresets(s)
		if len(presets) == 0 {
			fmt.Printf("no presets for scenario: %s\n", s)
			continue
		}
		fmt.Printf("presets for %s:\n", s)
		for _, p := range presets {
			fmt.Printf("  %s\n", p)
		}
	}
	return nil
}

func dumpConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			return fmt.Errorf("%w: %w", dynamo.ErrIO, err)
		}
		logger.Info("wrote config", "path", savePath)
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func sortedNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
