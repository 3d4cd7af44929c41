// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major int32 buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Let row-blocks travel through scatter/gather as plain []int32 slices.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(1); At/Set: O(1);
//     Clone: O(r*c); RowBlock: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRowBlock = "RowBlock"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major int32 matrix.
//   - r,c hold dimensions (rows, cols); zero is a legal value for either.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>= 0)
	data []int32 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of rows*cols elements.
//
// Behavior highlights:
//   - 0×c and r×0 matrices are legal: a rank owning no rows holds a 0×n block.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int32, rows*cols)}, nil
}

// NewDenseFrom wraps an existing row-major buffer WITHOUT copying.
// Ownership of data passes to the returned Dense; the caller must not keep
// mutating it through another reference.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//   - ErrBadBuffer (len(data) != rows*cols).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDenseFrom(rows, cols int, data []int32) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d) len=%d: %w", rows, cols, len(data), ErrBadBuffer)
	}
	if data == nil {
		data = []int32{}
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewIdentity returns an n×n identity matrix (1 on the main diagonal, 0 elsewhere).
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Len returns the number of stored elements (rows*cols).
func (m *Dense) Len() int { return len(m.data) }

// Data exposes the flat row-major buffer. It is the same slice the matrix
// reads and writes: handing it to a collective transfers the block, not a copy.
func (m *Dense) Data() []int32 { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int32, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int32) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RowBlock returns a no-copy view of rows [first, first+count) as a count×c
// Dense sharing storage with m. Mutations through the view are visible in m.
//
// Errors:
//   - ErrOutOfRange if the block does not fit inside m.
//
// Complexity: O(1).
func (m *Dense) RowBlock(first, count int) (*Dense, error) {
	if first < 0 || count < 0 || first+count > m.r {
		return nil, denseErrorf(ctxRowBlock, first, count, ErrOutOfRange)
	}
	lo, hi := first*m.c, (first+count)*m.c

	return &Dense{r: count, c: m.c, data: m.data[lo:hi:hi]}, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]int32, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and elements as m.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging: one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
