// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mousemonitor/stepfit/matrix"
)

// TestNewDense_Shapes checks legal and illegal shapes, including zero rows.
func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(0, 3) // empty per-sample table is legal
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 3, m.Cols())

	_, err = matrix.NewDense(2, 0)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "zero columns must be rejected")

	_, err = matrix.NewDense(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "negative rows must be rejected")
}

// TestNewDenseFromRows covers copy semantics and ragged input.
func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)

	src[0][0] = 100 // must not leak into m
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtSet_OutOfRange verifies that public indexers never panic.
func TestAtSet_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRow_IsView ensures Row returns a view sharing storage with the matrix.
func TestRow_IsView(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 3)
	row[2] = 7

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, origVal)
}

// TestFill checks row-major ingestion and length validation.
func TestFill(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Fill([]float64{1, 2, 3, 4}))
	v, _ := m.At(1, 0)
	assert.Equal(t, 3.0, v)

	assert.ErrorIs(t, m.Fill([]float64{1}), matrix.ErrDimensionMismatch)
}

// TestTranspose checks (j,i) = (i,j) and the zero-row guard.
func TestTranspose(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr, err := m.Transpose()
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	v, _ := tr.At(2, 1)
	assert.Equal(t, 6.0, v)

	empty, _ := matrix.NewDense(0, 2)
	_, err = empty.Transpose()
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
