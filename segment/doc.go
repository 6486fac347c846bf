// Package segment fits a piecewise-constant step function with a fixed set of
// reference levels to a one-dimensional signal, exactly, by decoding the
// cheapest level-per-sample path under a uniform switching penalty.
//
// 🚀 What is it for?
//
//	A noisy two-level signal (e.g. active/idle, on/off) is mapped to a clean
//	step function. Each sample pays its distance to the chosen level, and
//	every level change pays a fixed penalty. The global optimum is found by
//	dynamic programming (package viterbi), not by smoothing or thresholding.
//
// ✨ Key features:
//   - Binary: the canonical two-level fit, levels +1 (state 0) and -1 (state 1),
//     absolute (L1) distance.
//   - Fit: any fixed level set, any per-sample CostFunc, via functional options.
//   - Breakpoints / Segments / Reconstruct: post-processing of the state path.
//
// ⚙️ Usage:
//
//	bkps, states, err := segment.Binary([]float64{-1, -1, -1, 1, 1, 1}, 0.5)
//	// bkps = [3], states = [1 1 1 0 0 0]
//
//	res, err := segment.Fit(signal,
//	  segment.WithPenalty(4),
//	  segment.WithLevels(0, 1, 2),
//	  segment.WithCost(segment.SquaredCost),
//	)
//
// Monotonicity:
//
//	For a fixed signal, raising the penalty never increases the number of
//	breakpoints.
package segment
