// SPDX-License-Identifier: MIT

// Package matrix: deterministic seed builders for the demo pipeline.
// These are fixed test patterns, not a general input format: the coordinator
// and the verifier both rely on their determinism.

package matrix

// Sequential/near-identity seed constants. Named so the fill rules below and
// the tests never diverge on magic numbers.
const (
	seedBase     = 1 // offset in A[i][j] = i + j + seedBase
	seedDiagonal = 2 // diagonal value in the near-identity pattern
	seedOffDiag  = 1 // off-diagonal value in the near-identity pattern
)

// NewSequential builds the n×n matrix with A[i][j] = i + j + 1.
// Deterministic seed input for the demo coordinator.
//
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: Time O(n²), Space O(n²).
func NewSequential(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j, base int
	for i = 0; i < n; i++ { // fixed i→j fill order
		base = i * n
		for j = 0; j < n; j++ {
			m.data[base+j] = int64(i + j + seedBase)
		}
	}

	return m, nil
}

// NewNearIdentity builds the n×n matrix with B[i][j] = 2 on the diagonal and
// 1 elsewhere. Multiplying by it keeps results small and human-checkable:
// C[i][j] becomes rowsum(A, i) + A[i][j].
//
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: Time O(n²), Space O(n²).
func NewNearIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if i == j {
				m.data[base+j] = seedDiagonal
			} else {
				m.data[base+j] = seedOffDiag
			}
		}
	}

	return m, nil
}
