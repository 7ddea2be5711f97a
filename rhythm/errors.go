package rhythm

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind this package reports: the
// caller asked for an impossible pattern. It is a contract violation,
// not a recoverable runtime state — check it with errors.Is.
var ErrInvalidInput = errors.New("rhythm: invalid input")

var (
	// ErrZeroSteps wraps ErrInvalidInput: a pattern needs at least one step.
	ErrZeroSteps = fmt.Errorf("%w: steps must be at least 1", ErrInvalidInput)
	// ErrPulsesExceedSteps wraps ErrInvalidInput: pulses must fit in [0, steps].
	ErrPulsesExceedSteps = fmt.Errorf("%w: pulses must lie within [0, steps]", ErrInvalidInput)
)
