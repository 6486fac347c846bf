// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels (min-plus reduction, decoder) minimal by delegating
//     shape/nil/numeric checks here.
//   - Wrap sentinels with the validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Numeric scans run in row-major order and stop at the first violation.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.r, m.c), ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Nil vectors are rejected only when n > 0.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(%d != %d)", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for off, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, off/m.c, off%m.c, ErrNaNInf))
		}
	}

	return nil
}

// ValidateNoNaNOrNegInf rejects NaN and -Inf entries but accepts +Inf.
// +Inf is the min-plus "zero" and reads as "never choose this cell".
// Complexity: O(r*c).
func ValidateNoNaNOrNegInf(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for off, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, -1) {
			return validatorErrorf("ValidateNoNaNOrNegInf", denseErrorf(ctxAt, off/m.c, off%m.c, ErrNaNInf))
		}
	}

	return nil
}

// VecHasNaNOrNegInf reports whether x contains NaN or -Inf.
// Complexity: O(len(x)).
func VecHasNaNOrNegInf(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, -1) {
			return true
		}
	}

	return false
}
