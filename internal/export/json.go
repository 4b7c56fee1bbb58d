package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

// RunInfo identifies the run a trajectory came from.
type RunInfo struct {
	Scenario   string
	Integrator string
	Dt         float64
	TStart     float64
	TEnd       float64
	Metrics    map[string]float64
}

type Document struct {
	Scenario     string             `json:"scenario"`
	Integrator   string             `json:"integrator"`
	Dt           float64            `json:"dt"`
	TStart       float64            `json:"t_start"`
	TEnd         float64            `json:"t_end"`
	Samples      int                `json:"samples"`
	Metrics      map[string]float64 `json:"metrics"`
	Times        []float64          `json:"times"`
	Acceleration []float64          `json:"acceleration"`
	Velocity     []float64          `json:"velocity"`
	Position     []float64          `json:"position"`
}

func NewDocument(info RunInfo, tr *dynamo.Trajectory) Document {
	// JSON has no NaN or Inf; such metrics are left out.
	metrics := make(map[string]float64, len(info.Metrics))
	for k, v := range info.Metrics {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			metrics[k] = v
		}
	}
	return Document{
		Scenario:     info.Scenario,
		Integrator:   info.Integrator,
		Dt:           info.Dt,
		TStart:       info.TStart,
		TEnd:         info.TEnd,
		Samples:      tr.Len(),
		Metrics:      metrics,
		Times:        tr.Times,
		Acceleration: tr.Acceleration,
		Velocity:     tr.Velocity,
		Position:     tr.Position,
	}
}

func WriteJSON(w io.Writer, info RunInfo, tr *dynamo.Trajectory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(info, tr)); err != nil {
		return fmt.Errorf("%w: encode json: %w", dynamo.ErrIO, err)
	}
	return nil
}

func SaveJSON(path string, info RunInfo, tr *dynamo.Trajectory) error {
	return saveFile(path, func(w io.Writer) error { return WriteJSON(w, info, tr) })
}
