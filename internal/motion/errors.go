package motion

import (
	"errors"
	"fmt"
)

// Domain errors for rig operations.
var (
	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("motion: parameter out of valid bounds")

	// ErrInvalidState indicates a frame holding NaN or Inf angles.
	ErrInvalidState = errors.New("motion: invalid state (NaN or Inf detected)")

	// ErrContextCanceled indicates the frame loop was interrupted.
	ErrContextCanceled = errors.New("motion: animation canceled by context")
)

// SimulationError wraps an error with the tick it happened on.
type SimulationError struct {
	Tick    int
	Frame   Frame
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}

func boundsError(name string, value float64, reason string) error {
	return fmt.Errorf("%w: %s=%g %s", ErrParameterBounds, name, value, reason)
}
