package dynamo

import (
	"fmt"
	"math"
)

// TimeSpan returns the sample times from tStart, advancing by step while the
// current value is <= tEnd, followed by exactly one more value past tEnd.
// Values accumulate by repeated addition. For tStart < tEnd the length is
// floor((tEnd-tStart)/step) + 2.
func TimeSpan(tStart, tEnd, step float64) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: step size must be positive and finite, got %v", ErrInvalidArgument, step)
	}
	if !isFinite(tStart) || !isFinite(tEnd) {
		return nil, fmt.Errorf("%w: time bounds must be finite, got [%v, %v]", ErrInvalidArgument, tStart, tEnd)
	}

	n := 1
	if tEnd >= tStart {
		n = int((tEnd-tStart)/step) + 2
	}
	span := make([]float64, 0, n)

	current := tStart
	for current <= tEnd {
		span = append(span, current)
		next := current + step
		if next == current {
			return nil, fmt.Errorf("%w: step size %v vanishes at t=%v", ErrInvalidArgument, step, current)
		}
		current = next
	}
	span = append(span, current)

	return span, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
