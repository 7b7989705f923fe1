// SPDX-License-Identifier: MIT

package perf

import "fmt"

// Snapshot is one point-in-time reading of all three counters.
// Raw snapshots are only meaningful as differences; see Delta.
type Snapshot struct {
	Cycles       uint64 // CPU cycles consumed by this process (0 when unavailable)
	Ticks        uint64 // monotonic clock reading in nanoseconds
	Instructions uint64 // retired instructions (0 when unavailable)
}

// String renders the snapshot for console diagnostics.
// Complexity: O(1).
func (s Snapshot) String() string {
	return fmt.Sprintf("cycles=%d ticks=%d instructions=%d", s.Cycles, s.Ticks, s.Instructions)
}

// Delta returns the per-counter difference after - before.
// Both snapshots must come from the same Counters instance; the counters are
// monotonic over a process lifetime, so the differences never underflow.
// Complexity: O(1).
func Delta(before, after Snapshot) Snapshot {
	return Snapshot{
		Cycles:       after.Cycles - before.Cycles,
		Ticks:        after.Ticks - before.Ticks,
		Instructions: after.Instructions - before.Instructions,
	}
}
