// SPDX-License-Identifier: MIT

// Package distribute: the coordinator side of the pipeline.
//
// MAIN DESCRIPTION:
// The coordinator owns the full lifecycle of one distributed multiplication:
// it computes the trusted reference, assigns row ranges, spawns the workers,
// collects every block over the channels, reaps every worker, and verifies
// the assembled matrix. It is the only goroutine that ever writes into the
// result matrix through SetRows, and the ranges it writes are disjoint.
//
// Behavior highlights:
//   - The expected byte count per worker is derived from the partition, never
//     from the wire: a short stream is a detected failure, not a hang.
//   - Collection is all-or-nothing per worker but independent across workers;
//     one failed channel never prevents draining and reaping the others.
//   - Reaping is unconditional. No run returns with a live worker behind it.

package distribute

import (
	"fmt"

	"github.com/katalvlaran/parmul/matrix"
	"github.com/katalvlaran/parmul/partition"
	"github.com/katalvlaran/parmul/stream"
	"golang.org/x/sync/errgroup"
)

// Coordinator runs distributed multiplications under a fixed configuration.
// Construct with NewCoordinator; the zero value is not usable.
type Coordinator struct {
	opts Options // resolved configuration (workers, seeded size)
}

// NewCoordinator builds a coordinator from functional options.
// Complexity: Time O(len(opts)), Space O(1).
func NewCoordinator(opts ...Option) *Coordinator {
	return &Coordinator{opts: gatherOptions(opts...)}
}

// Report is the complete outcome of one distributed run.
type Report struct {
	C          *matrix.Dense     // matrix assembled from worker blocks
	CRef       *matrix.Dense     // serially computed reference product
	Ranges     []partition.Range // row range assigned to each worker, by index
	Collection []error           // per-worker collection outcome; nil means success
	OK         bool              // every block collected AND C equals CRef
}

// Err condenses the report into a single error: the first per-worker
// collection failure, ErrVerificationFailed when all blocks arrived but the
// matrices differ, or nil for a fully successful run.
// Complexity: Time O(workers), Space O(1).
func (r *Report) Err() error {
	for _, err := range r.Collection {
		if err != nil {
			return err
		}
	}
	if !r.OK {
		return ErrVerificationFailed
	}

	return nil
}

// Run executes the full pipeline for C = A×B.
// Implementation:
//   - Stage 1: validate operands; compute the serial reference before any
//     worker exists, so the oracle can never be influenced by the run.
//   - Stage 2: split rows(A) fairly over the configured worker count and
//     spawn one worker per range, each with private clones of A and B.
//   - Stage 3: collect all blocks concurrently; each collector reads exactly
//     rows.Len()*cols(B) elements and places them at the range's offsets.
//     Failures are recorded per worker, never propagated mid-collection.
//   - Stage 4: reap every worker (await goroutine exit), success or failure.
//   - Stage 5: compare the assembled matrix to the reference.
//
// Behavior highlights:
//   - A worker count above rows(A) is legal: tail workers hold zero-length
//     ranges and transfer nothing.
//   - Run returns a non-nil error only for setup failures; transport and
//     verification outcomes live in the Report (see Report.Err).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, or a wrapped partition/allocation
//     failure.
//
// Complexity:
//   - Time O(r*n*c) compute (twice: reference + distributed) + O(r*c) wire,
//     Space O(workers * (r*n + n*c)) for the per-worker clones.
func (c *Coordinator) Run(a, b *matrix.Dense) (*Report, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.Cols() != b.Rows() {
		return nil, ErrDimensionMismatch
	}

	// Trusted oracle first: same kernel, single pass, no channels involved.
	ref, err := matrix.Mul(a, b)
	if err != nil {
		return nil, fmt.Errorf("distribute: reference: %w", err)
	}

	ranges, err := partition.SplitAll(a.Rows(), c.opts.workers)
	if err != nil {
		return nil, fmt.Errorf("distribute: partition: %w", err)
	}

	out, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("distribute: result: %w", err)
	}

	// Spawn: every worker gets its own deep copies, nothing is shared.
	workers := make([]*worker, len(ranges))
	for i, rng := range ranges {
		workers[i] = spawnWorker(i, rng, a.Clone(), b.Clone())
	}

	// Collect concurrently. Each goroutine records its outcome and returns
	// nil: a failed channel must not cancel the siblings, because every
	// worker still has to be drained and reaped.
	failures := make([]error, len(workers))
	var g errgroup.Group
	for i, w := range workers {
		i, w := i, w
		g.Go(func() error {
			failures[i] = collect(w, out)

			return nil
		})
	}
	_ = g.Wait() // collectors never return errors; Wait is a pure barrier

	// Reap unconditionally: no worker outlives the run.
	for _, w := range workers {
		<-w.done
	}

	rep := &Report{C: out, CRef: ref, Ranges: ranges, Collection: failures}
	rep.OK = allNil(failures) && matrix.Equal(out, ref)

	return rep, nil
}

// RunSeeded builds the deterministic demo inputs (sequential A, near-identity
// B, both size×size from the options) and runs the pipeline on them.
// Errors: allocation failures, plus everything Run can return.
// Complexity: as Run with r = n = c = size.
func (c *Coordinator) RunSeeded() (*Report, error) {
	a, err := matrix.NewSequential(c.opts.size)
	if err != nil {
		return nil, fmt.Errorf("distribute: seed A: %w", err)
	}
	b, err := matrix.NewNearIdentity(c.opts.size)
	if err != nil {
		return nil, fmt.Errorf("distribute: seed B: %w", err)
	}

	return c.Run(a, b)
}

// collect drains one worker's channel and places the block into out.
// The consumer end is always closed on exit, so a straggling producer fails
// fast instead of blocking forever.
// Complexity: Time O(rows.Len() * cols), Space O(rows.Len() * cols).
func collect(w *worker, out *matrix.Dense) error {
	defer func() { _ = w.ch.CloseConsumer() }()

	// Expected count derived from the partition, independently of the wire.
	want := w.rows.Len() * out.Cols()
	block, err := stream.ReadBlock(w.ch.Consumer(), want)
	if err != nil {
		return fmt.Errorf("distribute: worker %d rows %s: %w", w.id, w.rows, err)
	}

	if err = matrix.SetRows(out, w.rows, block); err != nil {
		return fmt.Errorf("distribute: worker %d rows %s: %w", w.id, w.rows, err)
	}

	return nil
}

// allNil reports whether every recorded outcome is a success.
// Complexity: Time O(len(errs)), Space O(1).
func allNil(errs []error) bool {
	for _, err := range errs {
		if err != nil {
			return false
		}
	}

	return true
}
