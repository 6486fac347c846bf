// Package viterbi decodes the globally optimal state path under an additive
// local-cost-plus-switching-cost model, using a forward min-plus recursion
// followed by a backpointer walk.
//
// 🚀 What does it solve?
//
//	Given costs[t][s] (price of assigning sample t to state s) and
//	transition[a][b] (price of moving from state a to state b between two
//	consecutive samples), find the path minimizing
//
//	  Σ_t costs[t][path[t]] + Σ_{t≥1} transition[path[t-1]][path[t]]
//
//	This is Viterbi decoding in negative-log space, or equivalently a
//	shortest path through the time × state trellis.
//
// ✨ Key features:
//   - exact: O(T·S²) forward pass, no pruning, no heuristics
//   - generic over the number of states and the transition matrix
//   - deterministic ties: the lowest state index always wins
//   - Solve exposes the accumulated-cost and backpointer tables
//   - TotalCost re-evaluates any path bit-exactly against Result.Cost
//
// ⚙️ Usage:
//
//	costs, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {2, 0}, {0, 2}})
//	T, _ := tropical.TransitionMatrix(2, 0.5)
//	states, err := viterbi.Decode(costs, T) // [1 1 0]
//
// Performance:
//
//   - Time:   O(T·S²)
//   - Memory: O(T·S) (both tables are kept for the backward walk)
package viterbi
