// SPDX-License-Identifier: MIT

package segment

import (
	"errors"

	"github.com/mousemonitor/stepfit/tropical"
)

var (
	// ErrInvalidSignal indicates a NaN or ±Inf sample.
	ErrInvalidSignal = errors.New("segment: signal contains NaN or Inf")

	// ErrInvalidPenalty is the tropical sentinel, re-exported so callers of
	// this package can match it without importing tropical.
	ErrInvalidPenalty = tropical.ErrInvalidPenalty

	// ErrNoLevels indicates an empty level set.
	ErrNoLevels = errors.New("segment: at least one level is required")

	// ErrInvalidLevel indicates a NaN or ±Inf reference level.
	ErrInvalidLevel = errors.New("segment: level must be finite")

	// ErrDuplicateLevel indicates the same level listed twice.
	ErrDuplicateLevel = errors.New("segment: duplicate level")

	// ErrNilCost indicates a nil CostFunc.
	ErrNilCost = errors.New("segment: cost function is nil")

	// ErrStateOutOfRange indicates a state index with no matching level.
	ErrStateOutOfRange = errors.New("segment: state index out of range")
)
