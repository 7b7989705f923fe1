// Package partition provides static row-range load balancing for a fixed
// worker count.
//
// The partitioner maps a worker index to a contiguous half-open interval of
// row indices. With total rows T and P workers, the first T%P workers each
// receive one extra row, so range sizes never differ by more than one and
// the remainder is absorbed by the earliest workers instead of piling up on
// the last one.
//
// All functions are pure and deterministic in (total, workers, index):
// the ranges for indices 0..P-1 are pairwise disjoint and their union is
// exactly [0, total).
package partition
