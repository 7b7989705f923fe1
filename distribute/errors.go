// SPDX-License-Identifier: MIT

package distribute

import "errors"

// NOTE ON NAMING & PREFIXING:
// Sentinels carry the "distribute:" prefix so a wrapped chain printed by a
// caller still names the failing layer. Match with errors.Is, never by string.

var (
	// ErrNilMatrix indicates a nil operand was passed to Run.
	ErrNilMatrix = errors.New("distribute: nil matrix operand")

	// ErrDimensionMismatch indicates cols(A) != rows(B), so no product exists.
	ErrDimensionMismatch = errors.New("distribute: inner dimensions differ")

	// ErrVerificationFailed indicates every worker delivered its block, yet the
	// assembled matrix differs from the serial reference. This is a logic
	// failure, not a transport failure, and should never occur.
	ErrVerificationFailed = errors.New("distribute: assembled result differs from reference")
)
