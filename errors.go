package timeit

import "errors"

// Errors that can be returned by the timer.
var (
	// ErrInvalidLoops is returned when an explicit iteration count is zero
	// or negative.
	ErrInvalidLoops = errors.New("timeit: loop count must be positive")

	// ErrInvalidConfig is returned when an option value is out of range.
	ErrInvalidConfig = errors.New("timeit: invalid configuration")
)
