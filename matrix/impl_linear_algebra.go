// SPDX-License-Identifier: MIT
// Package matrix: the local multiply kernel and reductions.
//
// Purpose:
//   - Mul: C = A × B for a row-block A and a full right operand B.
//   - Checksum: sum of all elements with a 64-bit accumulator.
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf.
//   - Multiply/accumulate is int32 with two's-complement wraparound. Overflow is
//     never reported; results for large n·maxValue² are wrapped values.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opChecksum = "Checksum"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: if A and B are *Dense, use i→k→j over the flat row-major
//     buffers and skip zero A[i,k]; otherwise use i→j→k through At.
//
// Behavior highlights:
//   - One allocation for C; no temporaries.
//   - A with zero rows yields a 0×B.Cols result, never an error.
//   - int32 wraparound on overflow, identical in both paths.
//
// Inputs:
//   - A: left matrix with shape (r × n), typically a rank's row-block.
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  int32
		acc     int32
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Checksum returns the sum of all elements of m in an int64 accumulator, so
// an n×n result of int32 values cannot overflow for any practical n.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Checksum(m *Dense) (int64, error) {
	if m == nil {
		return 0, matrixErrorf(opChecksum, ErrNilMatrix)
	}

	return SumInt32(m.data), nil
}

// SumInt32 sums a flat int32 buffer into an int64.
func SumInt32(data []int32) int64 {
	var s int64
	for _, v := range data {
		s += int64(v)
	}

	return s
}
