// Package analysis characterizes a finished trajectory.
//
//   - [PowerSpectrum] and [DominantFrequency]: amplitude spectrum of the
//     position signal, computed with github.com/mjibson/go-dsp/fft
//   - [NewPhasePortrait]: the (position, velocity) plane, drawable as text
//   - [Crossings] and [Period]: level crossings of the position
//
// For the oscillator the dominant frequency can be compared with the
// damped natural frequency w0*sqrt(1-b^2)/(2π):
//
//	f, err := analysis.DominantFrequency(result.Trajectory, cfg.StepSize)
package analysis
