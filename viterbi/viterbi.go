// SPDX-License-Identifier: MIT

package viterbi

import (
	"fmt"

	"github.com/mousemonitor/stepfit/matrix"
	"github.com/mousemonitor/stepfit/tropical"
)

// Operation name constants for unified error wrapping.
const (
	opSolve     = "Solve"
	opTotalCost = "TotalCost"
)

// Decode returns the state path minimizing the total cost. It is Solve
// without the DP tables.
//
// Example:
//
//	states, err := Decode(costs, transition)
func Decode(costs, transition *matrix.Dense) ([]int, error) {
	res, err := Solve(costs, transition)
	if err != nil {
		return nil, err
	}

	return res.States, nil
}

// Solve runs the forward accumulation and backward reconstruction.
//
// Algorithm Outline:
//  1. Let T = costs.Rows(), S = costs.Cols(). Allocate (T+1)×S tables
//     acc (accumulated cost) and back (backpointers).
//  2. Initialize acc[0] = 0 and back[0] = NoPredecessor.
//  3. t = 1: acc[1] = costs[0]; back[1] = NoPredecessor (no transition
//     is charged before the first sample).
//  4. t = 2..T: (step, arg) = min-plus reduce(transitionᵀ, acc[t-1]);
//     acc[t] = step + costs[t-1]; back[t] = arg.
//  5. final = argmin acc[T] (lowest index on ties).
//  6. Walk back: states[t-1] = state; state = back[t][state], t = T..1.
//
// Orientation:
//
//	transition[from][to] is the price of moving from one state to the next.
//	The reduction works on rows indexed by the destination, so it runs on
//	the transpose. For the symmetric matrices built by
//	tropical.TransitionMatrix the two coincide.
//
// Edge cases:
//   - T == 0: empty States, Cost 0, a single all-zero accumulated row.
//   - T == 1: no forward step; States = [argmin costs[0]].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (transition).
//   - ErrStateMismatch when costs.Cols() != transition order.
//   - ErrInvalidCost / ErrInvalidTransition on NaN or -Inf entries.
//
// Complexity:
//
//	Time   = O(T·S²)
//	Memory = O(T·S)
func Solve(costs, transition *matrix.Dense) (*Result, error) {
	if err := matrix.ValidateNotNil(costs); err != nil {
		return nil, fmt.Errorf("%s: costs: %w", opSolve, err)
	}
	if err := matrix.ValidateSquare(transition); err != nil {
		return nil, fmt.Errorf("%s: transition: %w", opSolve, err)
	}
	nSamples, nStates := costs.Shape()
	if nStates != transition.Rows() {
		return nil, fmt.Errorf("%s: %d cost columns vs %d states: %w", opSolve, nStates, transition.Rows(), ErrStateMismatch)
	}
	if err := matrix.ValidateNoNaNOrNegInf(costs); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opSolve, err, ErrInvalidCost)
	}
	if err := matrix.ValidateNoNaNOrNegInf(transition); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opSolve, err, ErrInvalidTransition)
	}

	// Rows indexed by destination state.
	incoming, err := transition.Transpose()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	acc, err := matrix.NewDense(nSamples+1, nStates) // row 0 stays zero
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	back := make([][]int, nSamples+1)
	back[0] = sentinelRow(nStates)

	res := &Result{States: make([]int, nSamples), Accumulated: acc, Backpointers: back}
	if nSamples == 0 {
		return res, nil
	}

	// First sample: no predecessor, no transition charge.
	first, _ := acc.Row(1)
	c0, _ := costs.Row(0)
	copy(first, c0)
	back[1] = sentinelRow(nStates)

	// Forward loop.
	var t, s int
	for t = 2; t <= nSamples; t++ {
		prev, _ := acc.Row(t - 1)
		curr, _ := acc.Row(t)
		arg := make([]int, nStates)
		if err = tropical.MinPlusReduceTo(curr, arg, incoming, prev); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", opSolve, t, err)
		}
		local, _ := costs.Row(t - 1)
		for s = 0; s < nStates; s++ {
			curr[s] += local[s]
		}
		back[t] = arg
	}

	// Termination.
	last, _ := acc.Row(nSamples)
	state := tropical.ArgMin(last)
	res.Cost = last[state]

	// Backtracking.
	for t = nSamples; t > 0; t-- {
		res.States[t-1] = state
		state = back[t][state]
	}

	return res, nil
}

// TotalCost evaluates the objective for an arbitrary state path:
//
//	costs[0][p0] + Σ_{t≥1} (transition[p(t-1)][p(t)] + …) + costs[t][p(t)]
//
// Additions are associated exactly as in the forward pass, so for the path
// returned by Solve the value is bit-identical to Result.Cost.
//
// Errors:
//   - the shape errors of Solve.
//   - ErrInvalidPath when len(states) != costs.Rows() or a state is out of range.
//
// Complexity: O(T).
func TotalCost(costs, transition *matrix.Dense, states []int) (float64, error) {
	if err := matrix.ValidateNotNil(costs); err != nil {
		return 0, fmt.Errorf("%s: costs: %w", opTotalCost, err)
	}
	if err := matrix.ValidateSquare(transition); err != nil {
		return 0, fmt.Errorf("%s: transition: %w", opTotalCost, err)
	}
	nSamples, nStates := costs.Shape()
	if nStates != transition.Rows() {
		return 0, fmt.Errorf("%s: %d cost columns vs %d states: %w", opTotalCost, nStates, transition.Rows(), ErrStateMismatch)
	}
	if len(states) != nSamples {
		return 0, fmt.Errorf("%s: path length %d, want %d: %w", opTotalCost, len(states), nSamples, ErrInvalidPath)
	}
	for t, s := range states {
		if s < 0 || s >= nStates {
			return 0, fmt.Errorf("%s: state %d at sample %d: %w", opTotalCost, s, t, ErrInvalidPath)
		}
	}
	if nSamples == 0 {
		return 0, nil
	}

	total, _ := costs.At(0, states[0])
	for t := 1; t < nSamples; t++ {
		step, _ := transition.At(states[t-1], states[t])
		local, _ := costs.At(t, states[t])
		total = (step + total) + local
	}

	return total, nil
}

// sentinelRow returns a row of n NoPredecessor markers.
func sentinelRow(n int) []int {
	row := make([]int, n)
	for i := range row {
		row[i] = NoPredecessor
	}

	return row
}
