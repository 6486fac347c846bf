// SPDX-License-Identifier: MIT

package viterbi

import "github.com/mousemonitor/stepfit/matrix"

// NoPredecessor is the backpointer sentinel stored in rows 0 and 1: no state
// precedes the first sample. It is never followed by the backward walk.
const NoPredecessor = -1

// Result holds the decoded path together with the DP tables that produced it.
//
// Fields:
//   - States       — optimal state per sample, len == number of samples.
//   - Cost         — minimum total cost; equals TotalCost(costs, transition, States) exactly.
//   - Accumulated  — (T+1)×S table; row t holds, per state, the minimum cost of
//     any path over samples 1..t ending in that state. Row 0 is all zeros.
//   - Backpointers — (T+1) rows of S predecessor indices; rows 0 and 1 hold NoPredecessor.
//
// A Result is built fresh per call and never shared.
type Result struct {
	States       []int
	Cost         float64
	Accumulated  *matrix.Dense
	Backpointers [][]int
}
