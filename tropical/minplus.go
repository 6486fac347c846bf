// SPDX-License-Identifier: MIT

package tropical

import (
	"fmt"

	"github.com/mousemonitor/stepfit/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opMinPlusReduce   = "MinPlusReduce"
	opMinPlusReduceTo = "MinPlusReduceTo"
)

// MinPlusReduce computes one min-plus matrix–vector product with argmin tracking:
//
//	out[k] = min_j (M[k,j] + v[j])
//	arg[k] = the smallest j attaining out[k]
//
// Implementation:
//   - Stage 1 (Validate): M square, len(v) == order, no NaN / -Inf in M or v.
//   - Stage 2 (Prepare): allocate out and arg.
//   - Stage 3 (Execute): MinPlusReduceTo.
//
// Behavior highlights:
//   - +Inf is the semiring zero and is allowed in both operands; a row whose
//     candidates are all +Inf yields out[k] = +Inf, arg[k] = 0.
//   - Ties resolve to the smallest index (first strict improvement wins).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//   - ErrNaNOperand when M or v holds NaN / -Inf.
//
// Complexity: O(n²) time, O(n) extra memory.
func MinPlusReduce(m *matrix.Dense, v []float64) ([]float64, []int, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opMinPlusReduce, err)
	}
	if err := matrix.ValidateVecLen(v, m.Rows()); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opMinPlusReduce, err)
	}
	if err := matrix.ValidateNoNaNOrNegInf(m); err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", opMinPlusReduce, err, ErrNaNOperand)
	}
	if matrix.VecHasNaNOrNegInf(v) {
		return nil, nil, fmt.Errorf("%s: vector: %w", opMinPlusReduce, ErrNaNOperand)
	}

	n := m.Rows()
	out := make([]float64, n)
	arg := make([]int, n)
	if err := MinPlusReduceTo(out, arg, m, v); err != nil {
		return nil, nil, err
	}

	return out, arg, nil
}

// MinPlusReduceTo is the allocation-free kernel behind MinPlusReduce.
// It writes into caller-owned dst and arg (both of length n).
//
// Contract:
//   - Only shapes are checked here (O(1)); the caller guarantees that M and v
//     hold no NaN / -Inf. The decoder validates its inputs once per call and
//     then invokes this kernel once per sample.
//   - dst must not alias v.
//
// Loop order is fixed (row k → column j ascending) for deterministic ties.
// Complexity: O(n²) time, O(1) extra memory.
func MinPlusReduceTo(dst []float64, arg []int, m *matrix.Dense, v []float64) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w", opMinPlusReduceTo, err)
	}
	n := m.Rows()
	if len(v) != n || len(dst) != n || len(arg) != n {
		return fmt.Errorf("%s: len(v)=%d len(dst)=%d len(arg)=%d, want %d: %w",
			opMinPlusReduceTo, len(v), len(dst), len(arg), n, matrix.ErrDimensionMismatch)
	}

	var (
		k, j  int     // row and column indices
		best  float64 // running minimum of row k
		cand  float64 // M[k,j] + v[j]
		bestJ int     // index attaining best
	)
	for k = 0; k < n; k++ {
		row, _ := m.Row(k) // in range after shape validation
		best, bestJ = row[0]+v[0], 0
		for j = 1; j < n; j++ {
			cand = row[j] + v[j]
			if cand < best { // strict improvement only: smallest index wins ties
				best, bestJ = cand, j
			}
		}
		dst[k] = best
		arg[k] = bestJ
	}

	return nil
}

// ArgMin returns the smallest index attaining the minimum of v, or -1 for an
// empty slice. It is an explicit ascending scan keeping the first strict
// improvement, so ties always resolve to the lowest index. NaN entries never
// win a comparison; callers are expected to reject them upstream.
// Complexity: O(len(v)).
func ArgMin(v []float64) int {
	if len(v) == 0 {
		return -1
	}
	best, bestI := v[0], 0
	for i := 1; i < len(v); i++ {
		if v[i] < best {
			best, bestI = v[i], i
		}
	}

	return bestI
}
