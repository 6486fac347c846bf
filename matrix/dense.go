// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Allow zero-row matrices: a cost table for an empty signal is legal.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone/Transpose: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxRow  = "Row"  // method tag used in error wrappers
	ctxFill = "Fill" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows >= 0, cols >= 1).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows >= 0 && cols > 0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - rows == 0 is legal (an empty per-sample table); cols == 0 is not,
//     because a state space with no states cannot be decoded.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a [][]float64 literal into a new Dense.
//
// Implementation:
//   - Stage 1: reject an empty literal (no column count can be inferred) with ErrBadShape.
//   - Stage 2: reject rows of unequal length with ErrRaggedRows.
//   - Stage 3: copy row by row into the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - For a zero-row matrix use NewDense(0, cols).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrBadShape)
	}
	cols := len(rows[0])
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
// No numeric policy is applied here; +Inf is a legitimate cost
// ("forbidden state"). Use ValidateFinite/ValidateNoNaN where needed.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a no-copy view of row i (length Cols()).
// Mutations through the returned slice are visible in m.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// Fill overwrites the whole matrix from a row-major slice of length Rows()*Cols().
// Complexity: O(r*c).
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return fmt.Errorf("Dense.%s: got %d values for %dx%d: %w", ctxFill, len(data), m.r, m.c, ErrDimensionMismatch)
	}
	copy(m.data, data)

	return nil
}

// Clone returns a deep copy; mutations do not affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Transpose returns a new c×r matrix with entries (j,i) = m(i,j).
// Loop order is fixed (row → col) for determinism.
//
// Errors:
//   - ErrBadShape when m has zero rows (the result would have zero columns).
//
// Complexity: O(r*c).
func (m *Dense) Transpose() (*Dense, error) {
	if m.r == 0 {
		return nil, fmt.Errorf("Dense.Transpose: %w", ErrBadShape)
	}
	t := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			t.data[j*t.c+i] = m.data[i*m.c+j]
		}
	}

	return t, nil
}

// String renders rows as bracketed, comma-separated lines (diagnostics only).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
