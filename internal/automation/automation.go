package automation

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/eulerlab/internal/config"
	"github.com/san-kum/eulerlab/internal/dynamo"
	"github.com/san-kum/eulerlab/internal/experiment"
	"github.com/san-kum/eulerlab/internal/export"
)

// Batch is a scripted list of runs.
type Batch struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Runs        []Step `yaml:"runs"`
}

// Step is one run. Its configuration starts from Config (a file, resolved
// relative to the batch file), else Preset, else the scenario defaults;
// Set, Mode and Output are applied on top.
type Step struct {
	Name     string             `yaml:"name"`
	Scenario string             `yaml:"scenario"`
	Preset   string             `yaml:"preset"`
	Config   string             `yaml:"config"`
	Set      map[string]float64 `yaml:"set"`
	Mode     string             `yaml:"mode"`
	Output   string             `yaml:"output"`
	CSV      string             `yaml:"csv"`
}

type StepResult struct {
	Name   string
	Config *config.Config
	Result *experiment.Result
}

// LoadBatch reads a batch file. Relative config paths in its steps are
// resolved against the file's directory.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dynamo.ErrIO, err)
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", dynamo.ErrInvalidArgument, path, err)
	}
	if len(b.Runs) == 0 {
		return nil, fmt.Errorf("%w: %s has no runs", dynamo.ErrInvalidArgument, path)
	}

	dir := filepath.Dir(path)
	for i := range b.Runs {
		if c := b.Runs[i].Config; c != "" && !filepath.IsAbs(c) {
			b.Runs[i].Config = filepath.Join(dir, c)
		}
	}
	return &b, nil
}

// Resolve builds and validates the configuration of a step.
func (s Step) Resolve() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case s.Config != "":
		loaded, err := config.Load(s.Config)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", s.Config, err)
		}
		cfg = loaded
	case s.Preset != "":
		cfg = config.GetPreset(s.Scenario, s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: unknown preset %q for %q", dynamo.ErrInvalidArgument, s.Preset, s.Scenario)
		}
	default:
		cfg = config.DefaultConfig(s.Scenario)
		cfg.Scenario = s.Scenario
	}

	for name, v := range s.Set {
		if err := cfg.Set(name, v); err != nil {
			return nil, err
		}
	}
	if s.Mode != "" {
		cfg.Mode = s.Mode
	}
	if s.Output != "" {
		cfg.OutputPath = s.Output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type Runner struct {
	logger *log.Logger
}

// NewRunner logs progress to logger; nil discards it.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{logger: logger}
}

// Run executes the steps in order and stops at the first failure. Results
// of the steps that finished are returned along with the error.
func (r *Runner) Run(ctx context.Context, b *Batch) ([]StepResult, error) {
	results := make([]StepResult, 0, len(b.Runs))

	for i, step := range b.Runs {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step %d", i+1)
		}
		r.logger.Info("batch step", "n", i+1, "of", len(b.Runs), "name", name)

		cfg, err := step.Resolve()
		if err != nil {
			return results, fmt.Errorf("%s: %w", name, err)
		}

		res, err := experiment.New(cfg, experiment.WithLogger(r.logger)).Run(ctx)
		if err != nil {
			return results, fmt.Errorf("%s: run: %w", name, err)
		}
		if err := experiment.Output(res, cfg); err != nil {
			return results, fmt.Errorf("%s: output: %w", name, err)
		}
		if step.CSV != "" {
			if err := export.SaveCSV(step.CSV, res.Trajectory); err != nil {
				return results, fmt.Errorf("%s: csv: %w", name, err)
			}
		}

		results = append(results, StepResult{Name: name, Config: cfg, Result: res})
	}

	return results, nil
}
