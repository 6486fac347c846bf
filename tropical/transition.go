// SPDX-License-Identifier: MIT

package tropical

import (
	"fmt"
	"math"

	"github.com/mousemonitor/stepfit/matrix"
)

// TransitionMatrix builds the n×n min-plus switching-penalty matrix.
//
// Layout:
//
//	         to 0     to 1    …   to n-1
//	from 0 [ 0        penalty …   penalty ]
//	from 1 [ penalty  0       …   penalty ]
//	  …
//
// Staying in a state is free; any switch costs the same penalty regardless
// of the source/destination pair. The result is symmetric.
//
// Implementation:
//   - Stage 1 (Validate): nStates >= 1; penalty finite and >= 0.
//   - Stage 2 (Prepare): allocate an n×n Dense.
//   - Stage 3 (Fill): write penalty off the diagonal, leave 0 on it.
//
// Errors:
//   - ErrInvalidStates  — nStates < 1.
//   - ErrInvalidPenalty — penalty is NaN, ±Inf or negative.
//
// Notes:
//   - penalty == 0 is accepted but degenerate: switching is free, so the
//     decoder simply follows the per-sample minimum and ties resolve to
//     the lowest state index.
//
// Complexity: O(n²) time and memory.
func TransitionMatrix(nStates int, penalty float64) (*matrix.Dense, error) {
	if nStates < 1 {
		return nil, fmt.Errorf("TransitionMatrix(%d): %w", nStates, ErrInvalidStates)
	}
	if err := ValidatePenalty(penalty); err != nil {
		return nil, fmt.Errorf("TransitionMatrix: %w", err)
	}

	t, err := matrix.NewDense(nStates, nStates)
	if err != nil {
		return nil, fmt.Errorf("TransitionMatrix: %w", err)
	}
	var i, j int
	for i = 0; i < nStates; i++ {
		row, _ := t.Row(i) // in range by construction
		for j = 0; j < nStates; j++ {
			if i != j {
				row[j] = penalty
			}
		}
	}

	return t, nil
}

// ValidatePenalty rejects NaN, ±Inf and negative switching penalties.
// A negative penalty would always favour switching and is unsupported.
func ValidatePenalty(penalty float64) error {
	if math.IsNaN(penalty) || math.IsInf(penalty, 0) || penalty < 0 {
		return fmt.Errorf("penalty %v: %w", penalty, ErrInvalidPenalty)
	}

	return nil
}
