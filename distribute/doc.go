// SPDX-License-Identifier: MIT

// Package distribute orchestrates row-partitioned parallel matrix
// multiplication: a coordinator fans the output rows of C = A×B out over a
// fixed set of isolated workers, collects each worker's block over a
// unidirectional byte channel, and verifies the assembled result against a
// serially computed reference.
//
// What the package provides:
//
//	✔ Coordinator — spawn → collect → reap → verify pipeline (Run, RunSeeded)
//	✔ Report — assembled result, reference, per-worker collection outcomes
//	✔ Functional options — worker count and seeded demo size (WithWorkers, WithSize)
//
// Pipeline (Run):
//   - Stage 1: validate operands, then compute the reference product serially.
//   - Stage 2: split [0, rows(A)) fairly across the worker count; spawn one
//     worker per range, each with its own deep copies of A and B and the
//     producer end of a fresh channel.
//   - Stage 3: collect all blocks concurrently, each consumer reading the
//     exact byte count implied by its worker's range. Failures are recorded
//     per worker; collection never stops early.
//   - Stage 4: reap every worker unconditionally, success or failure.
//   - Stage 5: verify the assembled matrix element-for-element against the
//     reference.
//
// Determinism: the partition, the kernel loop order and the wire order are
// all fixed, so for given inputs every run assembles the identical matrix.
//
// Failure semantics: a worker that cannot produce its full block aborts its
// channel; the coordinator records that worker's error in Report.Collection
// and marks the run as failed. Partial blocks are discarded, never patched
// into the result.
package distribute
