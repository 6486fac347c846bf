// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mousemonitor/stepfit/matrix"
)

// CostFunc prices assigning one sample to one reference level.
// It must return a non-NaN value, >= 0 by convention; +Inf forbids the pair.
type CostFunc func(sample, level float64) float64

// AbsoluteCost is the L1 mismatch |sample - level| used by the binary driver.
func AbsoluteCost(sample, level float64) float64 {
	return math.Abs(sample - level)
}

// SquaredCost is the L2 mismatch (sample - level)².
func SquaredCost(sample, level float64) float64 {
	d := sample - level

	return d * d
}

// validateSignal rejects NaN and ±Inf samples.
func validateSignal(signal []float64) error {
	if floats.HasNaN(signal) {
		return fmt.Errorf("NaN sample: %w", ErrInvalidSignal)
	}
	for i, x := range signal {
		if math.IsInf(x, 0) {
			return fmt.Errorf("sample %d is %v: %w", i, x, ErrInvalidSignal)
		}
	}

	return nil
}

// LevelCosts builds the len(signal)×len(levels) cost matrix
// costs[t][s] = cost(signal[t], levels[s]).
//
// An empty signal yields a 0×len(levels) matrix, not an error.
//
// Errors:
//   - ErrInvalidSignal, ErrNoLevels, ErrNilCost.
//
// Complexity: O(T·L).
func LevelCosts(signal, levels []float64, cost CostFunc) (*matrix.Dense, error) {
	if err := validateSignal(signal); err != nil {
		return nil, fmt.Errorf("LevelCosts: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("LevelCosts: %w", ErrNoLevels)
	}
	if cost == nil {
		return nil, fmt.Errorf("LevelCosts: %w", ErrNilCost)
	}

	costs, err := matrix.NewDense(len(signal), len(levels))
	if err != nil {
		return nil, fmt.Errorf("LevelCosts: %w", err)
	}
	for t, x := range signal {
		row, _ := costs.Row(t)
		for s, level := range levels {
			row[s] = cost(x, level)
		}
	}

	return costs, nil
}
