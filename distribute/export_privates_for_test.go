// SPDX-License-Identifier: MIT

// White-box bridges for the external test package (distribute_test).
// Production code must never reference these names.

package distribute

import (
	"github.com/katalvlaran/parmul/matrix"
	"github.com/katalvlaran/parmul/partition"
	"github.com/katalvlaran/parmul/stream"
)

// Worker re-exports the unexported worker for fault-injection tests.
type Worker = worker

// SpawnWorker bridges spawnWorker.
func SpawnWorker(id int, rows partition.Range, a, b *matrix.Dense) *Worker {
	return spawnWorker(id, rows, a, b)
}

// Collect bridges collect.
func Collect(w *Worker, out *matrix.Dense) error {
	return collect(w, out)
}

// Reap bridges the done-channel wait used by the coordinator.
func Reap(w *Worker) { <-w.done }

// SpawnTruncating launches a faulty worker that computes its block correctly
// but delivers only the first keep elements before closing cleanly. It
// simulates a producer dying mid-transfer, which the collector must detect
// as a short transfer.
func SpawnTruncating(id int, rows partition.Range, a, b *matrix.Dense, keep int) *Worker {
	w := &worker{
		id:   id,
		rows: rows,
		ch:   stream.NewChannel(),
		done: make(chan struct{}),
	}
	go func() {
		defer close(w.done)

		block, err := matrix.MulRows(a, b, rows)
		if err != nil {
			w.ch.AbortProducer(err)

			return
		}
		_ = stream.WriteBlock(w.ch.Producer(), block[:keep])
		_ = w.ch.CloseProducer()
	}()

	return w
}
