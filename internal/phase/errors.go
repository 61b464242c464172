package phase

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrStepUnderflow indicates an adaptive timestep shrank below its floor.
	ErrStepUnderflow = errors.New("phase: adaptive timestep below minimum")

	// ErrUnstable indicates the simulation became numerically unstable.
	ErrUnstable = errors.New("phase: simulation unstable (state diverged)")
)

// StepSizeError is the fatal result of an adaptive solver whose retry loop
// shrank dt below the configured floor. It is terminal: callers are expected
// to raise the tolerance, lower the floor, or inspect the configuration for
// a physical near-collision, not to retry.
type StepSizeError struct {
	Attempted float64
	Floor     float64
	Tolerance float64
}

func (e *StepSizeError) Error() string {
	return fmt.Sprintf("step size %.3e below floor %.3e at tolerance %.1e", e.Attempted, e.Floor, e.Tolerance)
}

func (e *StepSizeError) Unwrap() error { return ErrStepUnderflow }
