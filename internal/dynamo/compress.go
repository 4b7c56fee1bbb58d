package dynamo

import (
	"fmt"
	"math"
)

// CompressIndices selects the indices of times to keep for playback at fps
// frames per simulated second. Index 0 is always kept. A running threshold
// starts at 1/fps; each sample whose time reaches it is kept and the
// threshold advances by 1/fps. The threshold accumulates and is never
// re-snapped, so a skipped crossing shifts every later frame.
func CompressIndices(fps float64, times []float64) ([]int, error) {
	if !(fps > 0) || math.IsInf(fps, 0) {
		return nil, fmt.Errorf("%w: frame rate must be positive and finite, got %v", ErrInvalidArgument, fps)
	}
	if len(times) == 0 {
		return []int{}, nil
	}

	period := 1 / fps
	threshold := period

	idx := []int{0}
	for i := 1; i < len(times); i++ {
		if times[i] >= threshold {
			idx = append(idx, i)
			threshold += period
		}
	}
	return idx, nil
}

// Compress is a lossy forward-only filter that keeps the samples of x at
// the indices chosen by [CompressIndices]. No interpolation is performed.
func Compress(fps float64, x, times []float64) ([]float64, []float64, error) {
	if len(x) != len(times) {
		return nil, nil, fmt.Errorf("%w: value and time sequences differ in length (%d != %d)", ErrInvalidArgument, len(x), len(times))
	}
	idx, err := CompressIndices(fps, times)
	if err != nil {
		return nil, nil, err
	}

	xs := make([]float64, len(idx))
	ts := make([]float64, len(idx))
	for k, i := range idx {
		xs[k] = x[i]
		ts[k] = times[i]
	}
	return xs, ts, nil
}
