// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmpi/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroRows verifies that empty row-blocks are legal values.
func TestNewDenseZeroRows(t *testing.T) {
	m, err := matrix.NewDense(0, 4)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Zero(t, m.Len())
	require.NotNil(t, m.Data())
}

func TestNewDenseFrom(t *testing.T) {
	buf := []int32{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, buf)
	require.NoError(t, err)

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int32(4), v)

	// No copy: writes through buf are visible.
	buf[5] = 60
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int32(60), v)

	_, err = matrix.NewDenseFrom(2, 2, buf)
	require.ErrorIs(t, err, matrix.ErrBadBuffer)

	_, err = matrix.NewDenseFrom(-2, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	empty, err := matrix.NewDenseFrom(0, 3, nil)
	require.NoError(t, err)
	require.Zero(t, empty.Len())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, -789))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int32(-789), val)
	require.Equal(t, int32(-789), m.Data()[5])
}

func TestIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Data())

	_, err = matrix.NewIdentity(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowBlock checks views share storage and reject out-of-range blocks.
func TestRowBlock(t *testing.T) {
	m := fromRows(t, [][]int32{{1, 2}, {3, 4}, {5, 6}})

	blk, err := m.RowBlock(1, 2)
	require.NoError(t, err)
	require.Equal(t, 2, blk.Rows())
	require.Equal(t, []int32{3, 4, 5, 6}, blk.Data())

	require.NoError(t, blk.Set(0, 0, 30))
	v, _ := m.At(1, 0)
	require.Equal(t, int32(30), v)

	empty, err := m.RowBlock(3, 0)
	require.NoError(t, err)
	require.Zero(t, empty.Len())

	_, err = m.RowBlock(2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RowBlock(-1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestCloneEqualString(t *testing.T) {
	m := fromRows(t, [][]int32{{1, -2}, {3, 4}})
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 0, 9))
	require.False(t, m.Equal(c))
	require.False(t, m.Equal(mustDense(t, 2, 3)))
	require.False(t, m.Equal(nil))

	require.Equal(t, "[1, -2]\n[3, 4]\n", m.String())
}
