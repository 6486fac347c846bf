// SPDX-License-Identifier: MIT

package segment

import (
	"fmt"

	"github.com/mousemonitor/stepfit/tropical"
	"github.com/mousemonitor/stepfit/viterbi"
)

// Result is the outcome of Fit.
//
// Fields:
//   - States      — level index per sample (len == len(signal)).
//   - Breakpoints — indices i with States[i-1] != States[i], ascending.
//   - Segments    — run-length encoding of States.
//   - Fitted      — Levels[States[t]] per sample.
//   - Cost        — minimum total cost (mismatch + penalty × len(Breakpoints)).
//   - Levels      — the level set used (copy of the options).
type Result struct {
	States      []int
	Breakpoints []int
	Segments    []Segment
	Fitted      []float64
	Cost        float64
	Levels      []float64
}

// Binary fits the two-level step function with levels +1 (state 0) and -1
// (state 1) under L1 mismatch and returns (breakpoints, states).
//
// Scenario:
//
//	signal = [-1,-1,-1, 1,1,1], penalty = 0.5
//	costs to +1 = [2,2,2,0,0,0], costs to -1 = [0,0,0,2,2,2]
//	→ states = [1,1,1,0,0,0], breakpoints = [3]
//
// An empty signal yields empty breakpoints and states.
//
// Errors:
//   - ErrInvalidPenalty — NaN, ±Inf or negative penalty (0 is degenerate but accepted).
//   - ErrInvalidSignal  — NaN or ±Inf sample.
func Binary(signal []float64, penalty float64) ([]int, []int, error) {
	res, err := Fit(signal, WithPenalty(penalty))
	if err != nil {
		return nil, nil, err
	}

	return res.Breakpoints, res.States, nil
}

// Fit decodes the optimal level-per-sample path for signal.
//
// Implementation:
//   - Stage 1 (Configure): apply opts over DefaultOptions and validate.
//   - Stage 2 (Costs): LevelCosts(signal, Levels, Cost).
//   - Stage 3 (Transition): tropical.TransitionMatrix(len(Levels), Penalty).
//   - Stage 4 (Decode): viterbi.Solve.
//   - Stage 5 (Post-process): Breakpoints, Segments, Reconstruct.
//
// Complexity: O(T·L²) time, O(T·L) memory.
func Fit(signal []float64, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	costs, err := LevelCosts(signal, o.Levels, o.Cost)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	transition, err := tropical.TransitionMatrix(len(o.Levels), o.Penalty)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	decoded, err := viterbi.Solve(costs, transition)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	fitted, err := Reconstruct(decoded.States, o.Levels)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	return &Result{
		States:      decoded.States,
		Breakpoints: Breakpoints(decoded.States),
		Segments:    Segments(decoded.States),
		Fitted:      fitted,
		Cost:        decoded.Cost,
		Levels:      o.Levels,
	}, nil
}
