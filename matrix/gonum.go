// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Let callers build cost or transition tables with gonum and hand them to
//     the decoder without writing their own copy loops.
//   - Export a Dense back to gonum for downstream linear algebra.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum mat.Matrix into a new Dense.
//
// Implementation:
//   - Stage 1: reject nil with ErrNilMatrix.
//   - Stage 2: read Dims() and allocate.
//   - Stage 3: copy in row-major order via At(i, j).
//
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			m.data[base+j] = src.At(i, j)
		}
	}

	return m, nil
}

// ToGonum copies m into a new *mat.Dense.
// gonum forbids zero-sized dense matrices, so a zero-row m yields an empty
// mat.Dense (IsEmpty() == true).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	if m.r == 0 {
		return &mat.Dense{}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
