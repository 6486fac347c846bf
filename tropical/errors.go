// SPDX-License-Identifier: MIT

package tropical

import "errors"

var (
	// ErrInvalidStates indicates a state count below 1.
	ErrInvalidStates = errors.New("tropical: number of states must be >= 1")

	// ErrInvalidPenalty indicates a NaN, ±Inf or negative switching penalty.
	ErrInvalidPenalty = errors.New("tropical: penalty must be finite and >= 0")

	// ErrNaNOperand indicates NaN (or -Inf) inside a min-plus operand,
	// which would make the cost ordering undefined.
	ErrNaNOperand = errors.New("tropical: operand contains NaN or -Inf")
)
