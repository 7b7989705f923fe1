// SPDX-License-Identifier: MIT

// Package matrix: multiplication kernels and block placement.
//
// Purpose:
//   - Declare the canonical row-range kernel (MulRows) shared by the
//     distributed workers and the serial reference computer (Mul), so both
//     paths use the identical arithmetic rule and match bit-for-bit.
//   - Define operation tags and uniform error wrapping for error reporting.
//
// Notes:
//   - MulRows produces a flat row-major block; SetRows writes such a block
//     back into a destination matrix at the range's fixed offsets. Together
//     they are the compute half of the worker/coordinator contract.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/parmul/partition"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMulRows = "MulRows"
	opMul     = "Mul"
	opSetRows = "SetRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Returns plain sentinels; call sites wrap with the operation tag.
// Complexity: O(1).
func validateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// validateRowRange ensures rows is a well-formed sub-interval of [0, total).
// A zero-length range anywhere inside [0, total] is legal.
// Complexity: O(1).
func validateRowRange(rows partition.Range, total int) error {
	if rows.Start > rows.End {
		return ErrOutOfRange
	}
	if rows.Start < 0 || rows.End > total {
		return ErrOutOfRange
	}

	return nil
}

// MulRows computes the output rows [rows.Start, rows.End) of C = A×B as a
// flat row-major int64 block.
// Implementation:
//   - Stage 1: validate operands (non-nil, inner dimensions) and the row range.
//   - Stage 2: fixed r→c→k triple loop with direct flat indexing and an
//     int64 accumulator per cell.
//
// Behavior highlights:
//   - Deterministic loop order; inputs are never mutated.
//   - A zero-length range yields an empty (non-nil) block, never an error.
//   - This is the ONLY multiply rule in the package: the serial reference and
//     every distributed worker run exactly this code, which is what makes the
//     element-for-element verification meaningful.
//
// Inputs:
//   - a: left matrix (r × n); rows are partitioned over a.Rows().
//   - b: right matrix (n × c).
//   - rows: half-open output row interval within [0, a.Rows()].
//
// Returns:
//   - []int64: rows.Len() * b.Cols() elements in row-major order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange (wrapped with opMulRows).
//
// Complexity:
//   - Time O(rows.Len() * n * c), Space O(rows.Len() * c) for the block.
func MulRows(a, b *Dense, rows partition.Range) ([]int64, error) {
	// Validate operands via the canonical validators.
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulRows, err)
	}
	if err := validateRowRange(rows, a.r); err != nil {
		return nil, matrixErrorf(opMulRows, fmt.Errorf("rows %s of %d: %w", rows, a.r, err))
	}

	inner, cols := a.c, b.c
	block := make([]int64, rows.Len()*cols) // flat row-major output block

	var (
		r, c, k int   // loop iterators (fixed r→c→k order)
		sum     int64 // per-cell accumulator
		baseA   int   // flat base offset of row r in a
		baseOut int   // flat base offset of row r in the block
	)
	for r = rows.Start; r < rows.End; r++ {
		baseA = r * inner
		baseOut = (r - rows.Start) * cols
		for c = 0; c < cols; c++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += a.data[baseA+k] * b.data[k*cols+c] // accumulate a(r,k)*b(k,c)
			}
			block[baseOut+c] = sum
		}
	}

	return block, nil
}

// Mul performs the full multiplication C = A×B in one sequential pass.
// This is the trusted reference computer: it runs MulRows over the complete
// row range [0, a.Rows()) and materializes the result, so any correct
// distributed computation over the same inputs matches it bit-for-bit.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opMul).
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	full := partition.Range{Start: 0, End: a.r}
	block, err := MulRows(a, b, full)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	copy(res.data, block) // full-range block is the whole result buffer

	return res, nil
}

// SetRows writes a flat row-major block into m at the given row range.
// The block length must be exactly rows.Len() * m.Cols(); the write touches
// only the rows inside the range, which is what lets concurrent collectors
// place disjoint blocks into one result matrix without locking.
//
// Errors:
//   - ErrNilMatrix (nil destination), ErrOutOfRange (range outside m),
//     ErrDimensionMismatch (block length vs range size), wrapped with opSetRows.
//
// Complexity: Time O(rows.Len() * cols), Space O(1).
func SetRows(m *Dense, rows partition.Range, block []int64) error {
	if m == nil {
		return matrixErrorf(opSetRows, ErrNilMatrix)
	}
	if err := validateRowRange(rows, m.r); err != nil {
		return matrixErrorf(opSetRows, fmt.Errorf("rows %s of %d: %w", rows, m.r, err))
	}
	if len(block) != rows.Len()*m.c {
		return matrixErrorf(opSetRows, fmt.Errorf("block %d elements for %s×%d: %w",
			len(block), rows, m.c, ErrDimensionMismatch))
	}

	// Single contiguous copy: rows are adjacent in row-major storage.
	copy(m.data[rows.Start*m.c:rows.End*m.c], block)

	return nil
}
