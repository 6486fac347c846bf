// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every routine returns these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)) and tests match them via errors.Is.
// No routine panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping. Wrap at the detection site with coordinates or the
// operation name; callers still use errors.Is to match.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> ragged rows -> dimension mismatch -> NaN/Inf.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows, or cols <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrRaggedRows indicates that a [][]float64 literal has rows of unequal length.
	ErrRaggedRows = errors.New("matrix: rows have unequal length")
)
