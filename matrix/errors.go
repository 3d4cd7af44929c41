// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. Nothing in this package panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across rank
// logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> index.

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadBuffer indicates a backing buffer whose length is not rows*cols.
	ErrBadBuffer = errors.New("matrix: buffer length does not match shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where
	// a.Cols != b.Rows. The kernel reports it instead of producing a wrongly
	// shaped result.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
