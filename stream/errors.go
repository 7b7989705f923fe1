package stream

import "errors"

var (
	// ErrShortTransfer indicates a write or read loop terminated before the
	// expected byte count was transferred (peer closed early or stalled write).
	ErrShortTransfer = errors.New("stream: short transfer")
	// ErrInvalidCount indicates a negative element count was requested.
	ErrInvalidCount = errors.New("stream: element count must be >= 0")
)
