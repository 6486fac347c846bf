// Package tropical implements the two min-plus (tropical semiring) building
// blocks used by the sequence decoder.
//
// 🚀 What is the min-plus semiring?
//
//	Replace "+" by min and "×" by ordinary +. A matrix–vector product then
//	reads out[k] = min_j (M[k,j] + v[j]), which is exactly one relaxation
//	step of a shortest-path or Viterbi recursion in negative-log space.
//
// ✨ Key features:
//   - TransitionMatrix: n×n switching-penalty matrix (0 on the diagonal,
//     one uniform penalty elsewhere).
//   - MinPlusReduce: one min-plus matrix–vector product with argmin tracking.
//   - ArgMin: the first-index-wins scan shared by every reduction.
//
// ⚖️ Tie-break:
//
//	Every argmin is an ascending linear scan that keeps the FIRST strict
//	improvement, so among equal candidates the smallest index wins. The
//	decoder's reconstructed path on tied inputs depends on this rule.
//
// ⚙️ Usage:
//
//	T, err := tropical.TransitionMatrix(2, 0.5)
//	out, arg, err := tropical.MinPlusReduce(T, []float64{3, 1})
//	// out = [1.5 1], arg = [1 1]
//
// Performance:
//
//   - TransitionMatrix: O(n²) time and memory.
//   - MinPlusReduce:    O(n²) time, O(n) memory.
package tropical
