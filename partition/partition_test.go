// Package partition_test contains unit tests for the static row-range
// partitioner.
package partition_test

import (
	"testing"

	"github.com/katalvlaran/parmul/partition"
	"github.com/stretchr/testify/require"
)

// TestSplitConcreteTenByFour checks the canonical N=10, P=4 layout.
func TestSplitConcreteTenByFour(t *testing.T) {
	want := []partition.Range{
		{Start: 0, End: 3}, // worker 0 absorbs one remainder row
		{Start: 3, End: 6}, // worker 1 absorbs the other
		{Start: 6, End: 8},
		{Start: 8, End: 10},
	}

	got, err := partition.SplitAll(10, 4) // split ten rows over four workers
	require.NoError(t, err)               // valid inputs must not fail
	require.Equal(t, want, got)           // exact expected ranges
}

// TestSplitConcreteTenByThree checks the N=10, P=3 layout.
func TestSplitConcreteTenByThree(t *testing.T) {
	want := []partition.Range{
		{Start: 0, End: 4},
		{Start: 4, End: 7},
		{Start: 7, End: 10},
	}

	got, err := partition.SplitAll(10, 3)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestSplitSingleWorker ensures P=1 yields the full interval [0, N).
func TestSplitSingleWorker(t *testing.T) {
	r, err := partition.Split(10, 1, 0)
	require.NoError(t, err)
	require.Equal(t, partition.Range{Start: 0, End: 10}, r)
}

// TestSplitMoreWorkersThanRows ensures zero-length tail ranges when P > N.
func TestSplitMoreWorkersThanRows(t *testing.T) {
	got, err := partition.SplitAll(3, 5) // three rows over five workers
	require.NoError(t, err)

	want := []partition.Range{
		{Start: 0, End: 1},
		{Start: 1, End: 2},
		{Start: 2, End: 3},
		{Start: 3, End: 3}, // empty, but still deterministic
		{Start: 3, End: 3},
	}
	require.Equal(t, want, got)

	for _, r := range got[3:] {
		require.Zero(t, r.Len()) // tail workers receive no rows
	}
}

// TestSplitProperties verifies disjointness, exact union and fairness over a
// grid of (total, workers) combinations.
func TestSplitProperties(t *testing.T) {
	for total := 0; total <= 16; total++ {
		for workers := 1; workers <= 8; workers++ {
			ranges, err := partition.SplitAll(total, workers)
			require.NoError(t, err)
			require.Len(t, ranges, workers)

			extra := total % workers
			covered := 0 // running row counter: proves adjacency + exact union
			for i, r := range ranges {
				require.GreaterOrEqual(t, r.Len(), 0, "total=%d workers=%d index=%d", total, workers, i)
				require.Equal(t, covered, r.Start, "ranges must be adjacent and ordered")
				covered = r.End

				// Sizes differ by at most one row across all workers.
				require.InDelta(t, total/workers, r.Len(), 1)

				// Early workers (index < extra) are never smaller than later ones.
				if i < extra {
					require.Equal(t, total/workers+1, r.Len())
				} else {
					require.Equal(t, total/workers, r.Len())
				}
			}
			require.Equal(t, total, covered, "union must be exactly [0,total)")
		}
	}
}

// TestSplitValidation exercises every sentinel error path.
func TestSplitValidation(t *testing.T) {
	_, err := partition.Split(10, 0, 0) // no workers
	require.ErrorIs(t, err, partition.ErrNoWorkers)

	_, err = partition.Split(10, -2, 0) // negative workers
	require.ErrorIs(t, err, partition.ErrNoWorkers)

	_, err = partition.Split(10, 4, -1) // negative index
	require.ErrorIs(t, err, partition.ErrIndexOutOfRange)

	_, err = partition.Split(10, 4, 4) // index == workers
	require.ErrorIs(t, err, partition.ErrIndexOutOfRange)

	_, err = partition.Split(-1, 4, 0) // negative total
	require.ErrorIs(t, err, partition.ErrNegativeTotal)

	_, err = partition.SplitAll(-1, 4)
	require.ErrorIs(t, err, partition.ErrNegativeTotal)
	_, err = partition.SplitAll(10, 0)
	require.ErrorIs(t, err, partition.ErrNoWorkers)
}

// TestRangeString pins the diagnostic rendering used in error messages.
func TestRangeString(t *testing.T) {
	require.Equal(t, "[3,6)", partition.Range{Start: 3, End: 6}.String())
}
