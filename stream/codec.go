// SPDX-License-Identifier: MIT

package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ElemSize is the wire width of one matrix element in bytes (int64).
// Both ends of a channel derive their expected byte counts from it.
const ElemSize = 8

// WriteBlock encodes block as little-endian int64 values and writes every
// byte onto w.
// Implementation:
//   - Stage 1: encode the whole block into one contiguous buffer.
//   - Stage 2: write loop — retry on partial writes until all bytes are out
//     or the writer reports an unrecoverable error.
//
// Behavior highlights:
//   - An empty block writes nothing and succeeds immediately.
//   - A writer that accepts zero bytes without error is treated as stalled
//     and surfaces ErrShortTransfer instead of spinning forever.
//
// Errors:
//   - ErrShortTransfer (stalled writer), or the writer's own error wrapped
//     with the wrote/want byte counts.
//
// Complexity: Time O(len(block)), Space O(len(block)*ElemSize).
func WriteBlock(w io.Writer, block []int64) error {
	if len(block) == 0 {
		return nil // zero-length range: nothing to transfer
	}

	// Encode once, contiguously; row-major order is the caller's contract.
	buf := make([]byte, len(block)*ElemSize)
	for i, v := range block {
		binary.LittleEndian.PutUint64(buf[i*ElemSize:], uint64(v))
	}

	// Partial-write retry loop, per the channel contract.
	written := 0
	for written < len(buf) {
		n, err := w.Write(buf[written:])
		written += n
		if err != nil {
			return fmt.Errorf("stream: wrote %d of %d bytes: %w", written, len(buf), err)
		}
		if n == 0 {
			return fmt.Errorf("stream: wrote %d of %d bytes: %w", written, len(buf), ErrShortTransfer)
		}
	}

	return nil
}

// ReadBlock reads exactly count little-endian int64 values from r.
// Implementation:
//   - Stage 1: validate count; a zero count is immediately satisfied without
//     touching the reader at all.
//   - Stage 2: io.ReadFull for count*ElemSize bytes; early end-of-stream maps
//     to ErrShortTransfer with the got/want byte counts.
//   - Stage 3: decode into a fresh []int64.
//
// Behavior highlights:
//   - The expected length is computed by the caller, never read off the wire
//     (the stream carries no framing).
//   - Premature closure is a hard collection failure — the partial payload is
//     discarded, never zero-filled into a result.
//
// Errors:
//   - ErrInvalidCount (count < 0), ErrShortTransfer (early EOF/closure), or
//     the reader's own error wrapped with context.
//
// Complexity: Time O(count), Space O(count*ElemSize) transient + O(count).
func ReadBlock(r io.Reader, count int) ([]int64, error) {
	if count < 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrInvalidCount)
	}
	if count == 0 {
		return []int64{}, nil // empty range: satisfied without a read
	}

	buf := make([]byte, count*ElemSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("stream: read %d of %d bytes: %w", n, len(buf), ErrShortTransfer)
		}

		return nil, fmt.Errorf("stream: read %d of %d bytes: %w", n, len(buf), err)
	}

	block := make([]int64, count)
	for i := range block {
		block[i] = int64(binary.LittleEndian.Uint64(buf[i*ElemSize:]))
	}

	return block, nil
}
