package partition

import "errors"

var (
	// ErrNoWorkers indicates a non-positive worker count.
	ErrNoWorkers = errors.New("partition: worker count must be > 0")
	// ErrIndexOutOfRange indicates a worker index outside [0, workers).
	ErrIndexOutOfRange = errors.New("partition: worker index out of range")
	// ErrNegativeTotal indicates a negative total row count.
	ErrNegativeTotal = errors.New("partition: total rows must be >= 0")
)
