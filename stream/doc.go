// Package stream implements the unidirectional channel transport between a
// worker and the coordinator: an ordered, reliable byte stream carrying a
// raw block of fixed-width integers.
//
// Wire format: each element is one little-endian int64 (8 bytes), row-major,
// with NO header or length prefix. Producer and consumer independently
// compute the expected byte count from the same partitioner output — this
// implicit contract is preserved deliberately, so a truncated stream is
// detectable only as a short transfer (ErrShortTransfer), never recoverable.
//
// Each Channel has exactly one producer end (worker-owned, write+close) and
// one consumer end (coordinator-owned, read+close). Single writer, single
// reader: no locking is ever required. The producer MUST close its end after
// writing so the consumer can observe end-of-stream.
package stream
