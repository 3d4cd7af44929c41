// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix surface consumed by the kernel.
// *Dense is the only implementation in this module; the interface exists so the
// kernel can be exercised through a generic (non-flat) path in tests and by
// callers holding other integer matrix types.
package matrix

// Matrix is a two-dimensional int32 array.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows (>= 0).
	Rows() int

	// Cols returns the number of columns (>= 0).
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange if i or j is outside the shape.
	At(i, j int) (int32, error)
}
