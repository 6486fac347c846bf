// SPDX-License-Identifier: MIT

package viterbi

import "errors"

var (
	// ErrStateMismatch indicates that the cost matrix column count differs
	// from the transition matrix order.
	ErrStateMismatch = errors.New("viterbi: cost columns must equal transition order")

	// ErrInvalidCost indicates a NaN or -Inf entry in the cost matrix.
	// +Inf is accepted and marks a state as forbidden for that sample.
	ErrInvalidCost = errors.New("viterbi: cost matrix contains NaN or -Inf")

	// ErrInvalidTransition indicates a NaN or -Inf entry in the transition matrix.
	ErrInvalidTransition = errors.New("viterbi: transition matrix contains NaN or -Inf")

	// ErrInvalidPath indicates a state path of the wrong length or with a
	// state index outside [0, nStates).
	ErrInvalidPath = errors.New("viterbi: invalid state path")
)
