package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

var csvHeader = []string{"time", "acceleration", "velocity", "position"}

// WriteCSV writes one row per sample under a fixed header.
func WriteCSV(w io.Writer, tr *dynamo.Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: %w", dynamo.ErrIO, err)
	}

	row := make([]string, len(csvHeader))
	for i := 0; i < tr.Len(); i++ {
		row[0] = formatFloat(tr.Times[i])
		row[1] = formatFloat(tr.Acceleration[i])
		row[2] = formatFloat(tr.Velocity[i])
		row[3] = formatFloat(tr.Position[i])
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%w: %w", dynamo.ErrIO, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %w", dynamo.ErrIO, err)
	}
	return nil
}

func SaveCSV(path string, tr *dynamo.Trajectory) error {
	return saveFile(path, func(w io.Writer) error { return WriteCSV(w, tr) })
}

// ReadCSV parses a trajectory written by WriteCSV.
func ReadCSV(r io.Reader) (*dynamo.Trajectory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", dynamo.ErrIO, err)
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, fmt.Errorf("%w: unexpected column %q, want %q", dynamo.ErrInvalidArgument, header[i], name)
		}
	}

	tr := dynamo.NewTrajectory(0)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", dynamo.ErrIO, err)
		}

		var vals [4]float64
		for j, field := range record {
			vals[j], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %w", dynamo.ErrInvalidArgument, line, csvHeader[j], err)
			}
		}
		tr.Append(vals[0], dynamo.Sample{Acceleration: vals[1], Velocity: vals[2], Position: vals[3]})
	}
	return tr, nil
}

func LoadCSV(path string) (*dynamo.Trajectory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dynamo.ErrIO, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func saveFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", dynamo.ErrIO, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", dynamo.ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", dynamo.ErrIO, cerr)
		}
	}()

	return write(f)
}
