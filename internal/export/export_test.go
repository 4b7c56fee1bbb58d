package export

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

func sampleTrajectory() *dynamo.Trajectory {
	tr := dynamo.NewTrajectory(3)
	tr.Append(0, dynamo.Sample{Acceleration: -9.81, Velocity: 0, Position: 10})
	tr.Append(0.01, dynamo.Sample{Acceleration: -9.81, Velocity: -0.0981, Position: 9.999019})
	tr.Append(0.02, dynamo.Sample{Acceleration: -9.81, Velocity: -0.1962, Position: 9.997057})
	return tr
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleTrajectory()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "time,acceleration,velocity,position", lines[0])
	assert.Equal(t, "0,-9.81,0,10", lines[1])
	assert.Equal(t, "0.01,-9.81,-0.0981,9.999019", lines[2])
}

func TestCSVRoundTripFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "ball.csv")
	want := sampleTrajectory()

	require.NoError(t, SaveCSV(path, want))

	got, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, want.Times, got.Times)
	assert.Equal(t, want.Position, got.Position)
	assert.Equal(t, want.Velocity, got.Velocity)
	assert.Equal(t, want.Acceleration, got.Acceleration)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", dynamo.ErrIO},
		{"wrong header", "t,a,v,x\n0,0,0,0\n", dynamo.ErrInvalidArgument},
		{"bad number", "time,acceleration,velocity,position\n0,abc,0,1\n", dynamo.ErrInvalidArgument},
		{"short row", "time,acceleration,velocity,position\n0,1\n", dynamo.ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadCSVMissing(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, dynamo.ErrIO)
}

func TestSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := SaveCSV(filepath.Join(blocker, "out.csv"), sampleTrajectory())
	assert.ErrorIs(t, err, dynamo.ErrIO)

	err = SaveJSON(filepath.Join(blocker, "out.json"), RunInfo{}, sampleTrajectory())
	assert.ErrorIs(t, err, dynamo.ErrIO)
}

func TestWriteJSON(t *testing.T) {
	info := RunInfo{
		Scenario:   "ball",
		Integrator: "semi-implicit",
		Dt:         0.01,
		TStart:     0,
		TEnd:       0.02,
		Metrics: map[string]float64{
			"contacts":      0,
			"first_contact": math.NaN(),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, info, sampleTrajectory()))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "ball", doc.Scenario)
	assert.Equal(t, "semi-implicit", doc.Integrator)
	assert.Equal(t, 3, doc.Samples)
	assert.Equal(t, []float64{10, 9.999019, 9.997057}, doc.Position)
	assert.Contains(t, doc.Metrics, "contacts")
	assert.NotContains(t, doc.Metrics, "first_contact")
}

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "run.json")
	require.NoError(t, SaveJSON(path, RunInfo{Scenario: "oscillator"}, sampleTrajectory()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"scenario": "oscillator"`)
}
