// SPDX-License-Identifier: MIT

package partition

import "fmt"

// Range is a half-open interval [Start, End) of row indices assigned to
// exactly one worker. A zero-length range (Start == End) is legal and means
// the worker has no rows; this happens whenever workers > total.
type Range struct {
	Start int // first row index in the range (inclusive)
	End   int // one past the last row index (exclusive)
}

// Len returns the number of rows in the range.
// Complexity: O(1).
func (r Range) Len() int { return r.End - r.Start }

// String renders the range as "[start,end)" for diagnostics.
// Complexity: O(1).
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Split maps a worker index to its contiguous row range.
// Implementation:
//   - Stage 1: validate total >= 0, workers > 0, 0 <= index < workers.
//   - Stage 2: base = total/workers, extra = total%workers; the first `extra`
//     indices receive base+1 rows, the rest receive base rows, with offsets
//     accumulated in index order.
//
// Behavior highlights:
//   - Deterministic: the result depends only on (total, workers, index).
//   - Fair: range sizes differ by at most one, and no range with index >=
//     total%workers is ever larger than an earlier one.
//
// Inputs:
//   - total: total number of rows to distribute (>= 0).
//   - workers: fixed worker count (> 0).
//   - index: worker index in [0, workers).
//
// Returns:
//   - Range: the half-open row interval for this worker.
//
// Errors:
//   - ErrNegativeTotal, ErrNoWorkers, ErrIndexOutOfRange.
//
// Complexity:
//   - Time O(1), Space O(1).
func Split(total, workers, index int) (Range, error) {
	if total < 0 {
		return Range{}, ErrNegativeTotal
	}
	if workers <= 0 {
		return Range{}, ErrNoWorkers
	}
	if index < 0 || index >= workers {
		return Range{}, fmt.Errorf("index %d of %d workers: %w", index, workers, ErrIndexOutOfRange)
	}

	base := total / workers  // rows every worker receives
	extra := total % workers // remainder spread over the first `extra` workers

	// Workers below the remainder threshold take base+1 rows each.
	if index < extra {
		start := index * (base + 1)

		return Range{Start: start, End: start + base + 1}, nil
	}

	// Later workers take base rows, offset past the widened ranges.
	start := extra*(base+1) + (index-extra)*base

	return Range{Start: start, End: start + base}, nil
}

// SplitAll returns the ranges for every worker index in order.
// The returned slice has length `workers`; consecutive ranges are adjacent,
// the first starts at 0 and the last ends at total.
//
// Errors: ErrNegativeTotal, ErrNoWorkers (validated once up front).
// Complexity: Time O(workers), Space O(workers).
func SplitAll(total, workers int) ([]Range, error) {
	if total < 0 {
		return nil, ErrNegativeTotal
	}
	if workers <= 0 {
		return nil, ErrNoWorkers
	}

	ranges := make([]Range, workers)
	for i := 0; i < workers; i++ {
		r, err := Split(total, workers, i)
		if err != nil {
			return nil, err // unreachable after the guards above; kept for symmetry
		}
		ranges[i] = r
	}

	return ranges, nil
}
