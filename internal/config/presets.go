package config

import "sort"

var Presets = map[string]map[string]*Config{
	ScenarioOscillator: {
		"damped": {
			Scenario: ScenarioOscillator, Integrator: IntegratorSemiImplicit, Mode: ModePlot,
			TEnd: 10.0, StepSize: 0.1, FPS: DefaultFPS, WriterFPS: DefaultWriterFPS,
			OutputPath: "plots/oscillator.png",
			Oscillator: OscillatorConfig{W0: DefaultOscillatorW0, B: 0.5, X0: 2},
		},
		"undamped": {
			Scenario: ScenarioOscillator, Integrator: IntegratorSemiImplicit, Mode: ModePlot,
			TEnd: 10.0, StepSize: 0.01, FPS: DefaultFPS, WriterFPS: DefaultWriterFPS,
			OutputPath: "plots/oscillator_undamped.png",
			Oscillator: OscillatorConfig{W0: DefaultOscillatorW0, B: 0, X0: 1},
		},
		"coarse": {
			Scenario: ScenarioOscillator, Integrator: IntegratorEuler, Mode: ModePlot,
			TEnd: 10.0, StepSize: 0.05, FPS: DefaultFPS, WriterFPS: DefaultWriterFPS,
			OutputPath: "plots/oscillator_explicit.png",
			Oscillator: OscillatorConfig{W0: DefaultOscillatorW0, B: 0, X0: 1},
		},
	},
	ScenarioBall: {
		"classic": {
			Scenario: ScenarioBall, Integrator: IntegratorSemiImplicit, Mode: ModeAnimate,
			TEnd: 5.0, StepSize: 0.01, FPS: 30, WriterFPS: 15,
			OutputPath: "gifs/ball_bouncing.gif",
			Ball:       BallConfig{G: DefaultBallG, E: 0.55, Radius: 1, X0: 10},
		},
		"elastic": {
			Scenario: ScenarioBall, Integrator: IntegratorSemiImplicit, Mode: ModeAnimate,
			TEnd: 10.0, StepSize: 0.01, FPS: 30, WriterFPS: 30,
			OutputPath: "gifs/ball_elastic.gif",
			Ball:       BallConfig{G: DefaultBallG, E: 1, Radius: 1, X0: 10},
		},
		"inelastic": {
			Scenario: ScenarioBall, Integrator: IntegratorSemiImplicit, Mode: ModeAnimate,
			TEnd: 3.0, StepSize: 0.01, FPS: 30, WriterFPS: 30,
			OutputPath: "gifs/ball_inelastic.gif",
			Ball:       BallConfig{G: DefaultBallG, E: 0, Radius: 1, X0: 10},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(scenario, preset string) *Config {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := scenarioPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(scenario string) []string {
	scenarioPresets, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
