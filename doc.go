// Package parmul is a compact playground for distributed, row-partitioned
// dense matrix multiplication with a built-in correctness oracle.
//
// 🚀 What is parmul?
//
//	A small, deterministic library that splits C = A×B by contiguous row
//	ranges across a fixed set of isolated workers, streams each block back
//	over a dedicated one-way byte channel, reassembles the result and
//	verifies it bit-for-bit against a serial reference:
//		• partition/  — static row-range load balancing (remainder spread fairly)
//		• matrix/     — row-major int64 Dense storage, kernels, verifier, seeds
//		• stream/     — unidirectional channel transport + raw fixed-width framing
//		• distribute/ — worker lifecycle and the orchestrating Coordinator
//		• perf/       — cycle / wall-tick / instruction counters for diagnostics
//
// ✨ Why parmul?
//
//   - Deterministic by construction – fixed loop orders, stable partitions
//   - Honest failure surface – sentinel errors, short transfers reported,
//     never silently zero-filled
//   - Single-writer/single-reader per channel – no locks anywhere
//
// Quick sketch of the data flow:
//
//	A, B ──► reference Mul ──► C_ref
//	A, B ──► worker[i] (rows [s,e)) ──► channel[i] ──► Coordinator ──► C
//	                                             C == C_ref ? PASS : FAIL
//
// See cmd/parmul for the runnable demo and cmd/perfstat for the counter
// sampling utility.
//
//	go get github.com/katalvlaran/parmul
package parmul
