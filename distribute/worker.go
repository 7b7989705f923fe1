// SPDX-License-Identifier: MIT

package distribute

import (
	"github.com/katalvlaran/parmul/matrix"
	"github.com/katalvlaran/parmul/partition"
	"github.com/katalvlaran/parmul/stream"
)

// worker is one isolated compute unit: it owns private copies of the inputs,
// the producer end of its channel, and a done signal the coordinator reaps.
// Workers never touch shared result storage and never talk to each other.
type worker struct {
	id   int             // worker index, also its position in the range list
	rows partition.Range // output rows this worker computes
	ch   *stream.Channel // unidirectional worker→coordinator transport
	done chan struct{}   // closed when the worker goroutine has fully exited
}

// spawnWorker launches a worker for the given row range. The caller passes
// matrices the worker may treat as private; the coordinator hands each worker
// its own clones, so nothing is ever shared across workers.
// Complexity: O(1) beyond the goroutine launch.
func spawnWorker(id int, rows partition.Range, a, b *matrix.Dense) *worker {
	w := &worker{
		id:   id,
		rows: rows,
		ch:   stream.NewChannel(),
		done: make(chan struct{}),
	}
	go w.run(a, b)

	return w
}

// run is the worker body: compute the block, write it, half-close.
// Implementation:
//   - Stage 1: MulRows over the assigned range on the private inputs.
//   - Stage 2: write the full block onto the producer end; the write blocks
//     until the coordinator drains it.
//   - Stage 3: close the producer end so the consumer observes end-of-stream.
//
// Any failure aborts the channel with the cause instead of closing cleanly,
// so the coordinator sees an errored transfer, never a silent truncation.
// The done channel closes on every path; reaping cannot hang.
func (w *worker) run(a, b *matrix.Dense) {
	defer close(w.done)

	block, err := matrix.MulRows(a, b, w.rows)
	if err != nil {
		w.ch.AbortProducer(err)

		return
	}

	if err = stream.WriteBlock(w.ch.Producer(), block); err != nil {
		w.ch.AbortProducer(err)

		return
	}

	_ = w.ch.CloseProducer()
}
