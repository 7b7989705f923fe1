// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether a and b hold identical values at every position.
// This is the pass/fail oracle for the distributed pipeline: it scans all
// r*c cells in fixed order and returns false on the first mismatch.
//
// Behavior highlights:
//   - Pure and total: nil operands or differing shapes compare unequal
//     rather than erroring (a malformed result is simply not equal to the
//     reference).
//   - Deterministic flat 0..n-1 scan over the backing slices.
//
// Complexity: Time O(r*c) worst case, Space O(1).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b // both nil compare equal; one nil does not
	}
	if a.r != b.r || a.c != b.c {
		return false
	}

	for idx := range a.data { // fixed order ensures a stable first-mismatch point
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}
