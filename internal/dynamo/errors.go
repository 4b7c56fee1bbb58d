package dynamo

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidArgument indicates a non-positive step size, frame rate or
	// another parameter that would make a run diverge or never terminate.
	ErrInvalidArgument = errors.New("dynamo: invalid argument")

	// ErrIO indicates an output artifact could not be written.
	ErrIO = errors.New("dynamo: output failure")

	// ErrInvalidState indicates a sample with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrUnknownScenario indicates a scenario name with no registered builder.
	ErrUnknownScenario = errors.New("dynamo: unknown scenario")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	Sample  Sample
	Wrapped error
}

func (e *SimulationError) Error() string {
	return e.Wrapped.Error()
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
