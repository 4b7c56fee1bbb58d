package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

// Spectrum is the one-sided amplitude spectrum of a uniformly sampled
// signal.
type Spectrum struct {
	Freqs []float64 // Hz
	Power []float64
}

// PowerSpectrum removes the mean of values, sampled every dt seconds, and
// returns the amplitude of each non-negative frequency bin.
func PowerSpectrum(values []float64, dt float64) (Spectrum, error) {
	n := len(values)
	if n < 2 {
		return Spectrum{}, fmt.Errorf("%w: need at least 2 samples, got %d", dynamo.ErrInvalidArgument, n)
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return Spectrum{}, fmt.Errorf("%w: sample interval must be positive, got %v", dynamo.ErrInvalidArgument, dt)
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range values {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)
	bins := n/2 + 1
	s := Spectrum{
		Freqs: make([]float64, bins),
		Power: make([]float64, bins),
	}
	for k := 0; k < bins; k++ {
		s.Freqs[k] = float64(k) / (float64(n) * dt)
		s.Power[k] = cmplx.Abs(coeffs[k]) / float64(n)
	}
	return s, nil
}

// Dominant returns the frequency of the strongest non-zero bin.
func (s Spectrum) Dominant() float64 {
	best, freq := 0.0, 0.0
	for k := 1; k < len(s.Power); k++ {
		if s.Power[k] > best {
			best, freq = s.Power[k], s.Freqs[k]
		}
	}
	return freq
}

// DominantFrequency is the dominant frequency of the position signal of a
// trajectory sampled every dt seconds.
func DominantFrequency(tr *dynamo.Trajectory, dt float64) (float64, error) {
	s, err := PowerSpectrum(tr.Position, dt)
	if err != nil {
		return 0, err
	}
	return s.Dominant(), nil
}
