// Package matrix provides the integer dense-matrix data model for
// row-partitioned multiplication: row-major storage, the row-block compute
// kernel, the serial reference computer and the element-wise verifier.
//
// The matrix package provides:
//
//   - Dense: a cache-friendly row-major int64 buffer with safe At/Set
//     accessors (sentinel errors, never panics at the public surface).
//   - MulRows: the row-range kernel producing a flat row-major block of
//     C = A×B for a contiguous interval of output rows.
//   - Mul: the trusted serial reference, running the identical kernel over
//     the full row range so a correct distributed run matches bit-for-bit.
//   - SetRows: block placement back into a result matrix at fixed offsets.
//   - Equal: the pass/fail oracle comparing two matrices element-wise.
//   - NewSequential / NewNearIdentity: the deterministic seed inputs used
//     by the demo coordinator.
//
// All kernels use fixed loop orders and int64 accumulation; overflow is the
// caller's concern (values are assumed small enough for a 64-bit sum).
package matrix
