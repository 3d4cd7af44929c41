// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Dense type and the kernel.
//   • Offer a naive reference multiply to compare the kernel against.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmpi/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) kernel path.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fromRows builds a Dense from literal rows (all rows must have equal length).
func fromRows(tb testing.TB, rows [][]int32) *matrix.Dense {
	tb.Helper()
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	flat := make([]int32, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	m, err := matrix.NewDenseFrom(r, c, flat)
	if err != nil {
		tb.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// fillRand fills m with values in [-limit, limit] from a seeded source.
func fillRand(tb testing.TB, m *matrix.Dense, seed int64, limit int32) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for i := range data {
		data[i] = int32(rng.Int63n(2*int64(limit)+1) - int64(limit))
	}
}

// naiveMul is the textbook i-j-k reference with int32 wraparound.
func naiveMul(a, b *matrix.Dense) []int32 {
	out := make([]int32, a.Rows()*b.Cols())
	ad, bd := a.Data(), b.Data()
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var acc int32
			for k := 0; k < a.Cols(); k++ {
				acc += ad[i*a.Cols()+k] * bd[k*b.Cols()+j]
			}
			out[i*b.Cols()+j] = acc
		}
	}

	return out
}
