// SPDX-License-Identifier: MIT

package viterbi_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mousemonitor/stepfit/matrix"
	"github.com/mousemonitor/stepfit/tropical"
	"github.com/mousemonitor/stepfit/viterbi"
)

// mustRows builds a Dense from a literal or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustTransition builds a uniform switching-penalty matrix or fails the test.
func mustTransition(t *testing.T, n int, penalty float64) *matrix.Dense {
	t.Helper()
	tm, err := tropical.TransitionMatrix(n, penalty)
	require.NoError(t, err)

	return tm
}

// TestSolve_StepSignal decodes the two-level step of the binary scenario.
func TestSolve_StepSignal(t *testing.T) {
	costs := mustRows(t, [][]float64{{2, 0}, {2, 0}, {2, 0}, {0, 2}, {0, 2}, {0, 2}})

	res, err := viterbi.Solve(costs, mustTransition(t, 2, 0.5))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0}, res.States)
	assert.Equal(t, 0.5, res.Cost)
}

// TestSolve_Empty covers n_samples = 0.
func TestSolve_Empty(t *testing.T) {
	costs, err := matrix.NewDense(0, 3)
	require.NoError(t, err)

	res, err := viterbi.Solve(costs, mustTransition(t, 3, 1))
	require.NoError(t, err)
	assert.NotNil(t, res.States)
	assert.Empty(t, res.States)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, 1, res.Accumulated.Rows())
	assert.Equal(t, []int{-1, -1, -1}, res.Backpointers[0])
}

// TestSolve_SingleSample picks the state of minimum immediate cost.
func TestSolve_SingleSample(t *testing.T) {
	res, err := viterbi.Solve(mustRows(t, [][]float64{{3, 1, 2}}), mustTransition(t, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.States)
	assert.Equal(t, 1.0, res.Cost)
}

// TestSolve_Tables checks the accumulated-cost and backpointer layout.
func TestSolve_Tables(t *testing.T) {
	costs := mustRows(t, [][]float64{{1, 3}, {4, 0}})

	res, err := viterbi.Solve(costs, mustTransition(t, 2, 1))
	require.NoError(t, err)

	row0, _ := res.Accumulated.Row(0)
	row1, _ := res.Accumulated.Row(1)
	row2, _ := res.Accumulated.Row(2)
	assert.Equal(t, []float64{0, 0}, row0)
	assert.Equal(t, []float64{1, 3}, row1)
	// state 0: min(0+1, 1+3)=1 @0, +4 → 5 ; state 1: min(1+1, 0+3)=2 @0, +0 → 2
	assert.Equal(t, []float64{5, 2}, row2)

	assert.Equal(t, []int{viterbi.NoPredecessor, viterbi.NoPredecessor}, res.Backpointers[0])
	assert.Equal(t, []int{viterbi.NoPredecessor, viterbi.NoPredecessor}, res.Backpointers[1])
	assert.Equal(t, []int{0, 0}, res.Backpointers[2])
	assert.Equal(t, []int{0, 1}, res.States)
	assert.Equal(t, 2.0, res.Cost)
}

// TestSolve_TieBreak resolves equal-cost paths to the lowest state index.
func TestSolve_TieBreak(t *testing.T) {
	costs := mustRows(t, [][]float64{{1, 1}, {1, 1}, {1, 1}})

	for i := 0; i < 5; i++ {
		states, err := viterbi.Decode(costs, mustTransition(t, 2, 1))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0}, states)
	}

	// Zero penalty: every step ties; still the lowest index.
	states, err := viterbi.Decode(costs, mustTransition(t, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, states)
}

// TestSolve_AsymmetricTransition checks transition[from][to] orientation.
func TestSolve_AsymmetricTransition(t *testing.T) {
	transition := mustRows(t, [][]float64{{0, 1}, {100, 0}})

	// 0 → 1 is cheap.
	states, err := viterbi.Decode(mustRows(t, [][]float64{{0, 5}, {5, 0}}), transition)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, states)

	// 1 → 0 is expensive: stay put, and the tie (0,0) vs (1,1) goes to state 0.
	res, err := viterbi.Solve(mustRows(t, [][]float64{{5, 0}, {0, 5}}), transition)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.States)
	assert.Equal(t, 5.0, res.Cost)
}

// TestSolve_ForbiddenState uses +Inf costs to exclude a state at one sample.
func TestSolve_ForbiddenState(t *testing.T) {
	inf := math.Inf(1)
	costs := mustRows(t, [][]float64{{0, 1}, {inf, 0}, {0, 1}})

	res, err := viterbi.Solve(costs, mustTransition(t, 2, 0.25))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, res.States)
	assert.Equal(t, 0.5, res.Cost)
}

// TestSolve_Errors covers the validation table.
func TestSolve_Errors(t *testing.T) {
	costs := mustRows(t, [][]float64{{1, 2}})

	_, err := viterbi.Solve(nil, mustTransition(t, 2, 1))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = viterbi.Solve(costs, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = viterbi.Solve(costs, mustRows(t, [][]float64{{0, 1, 1}, {1, 0, 1}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = viterbi.Solve(costs, mustTransition(t, 3, 1))
	assert.ErrorIs(t, err, viterbi.ErrStateMismatch)

	_, err = viterbi.Solve(mustRows(t, [][]float64{{1, math.NaN()}}), mustTransition(t, 2, 1))
	assert.ErrorIs(t, err, viterbi.ErrInvalidCost)

	_, err = viterbi.Solve(costs, mustRows(t, [][]float64{{0, math.Inf(-1)}, {1, 0}}))
	assert.ErrorIs(t, err, viterbi.ErrInvalidTransition)
}

// TestTotalCost_Errors covers path validation.
func TestTotalCost_Errors(t *testing.T) {
	costs := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	tm := mustTransition(t, 2, 1)

	_, err := viterbi.TotalCost(costs, tm, []int{0})
	assert.ErrorIs(t, err, viterbi.ErrInvalidPath)

	_, err = viterbi.TotalCost(costs, tm, []int{0, 2})
	assert.ErrorIs(t, err, viterbi.ErrInvalidPath)

	got, err := viterbi.TotalCost(costs, tm, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 6.0, got) // 1 + 1 + 4
}

// TestSolve_Deterministic runs the same input repeatedly.
func TestSolve_Deterministic(t *testing.T) {
	gen := rand.New(rand.NewSource(7))
	costs, tm := randomProblem(t, gen, 40, 3)

	first, err := viterbi.Solve(costs, tm)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := viterbi.Solve(costs, tm)
		require.NoError(t, err)
		assert.Equal(t, first.States, again.States)
		assert.Equal(t, first.Cost, again.Cost)
	}
}

// TestSolve_RoundTrip rebuilds the objective from the decoded path and
// compares it with the terminal accumulated cost, bit for bit.
func TestSolve_RoundTrip(t *testing.T) {
	gen := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		costs, tm := randomProblem(t, gen, 1+gen.Intn(60), 1+gen.Intn(4))

		res, err := viterbi.Solve(costs, tm)
		require.NoError(t, err)
		got, err := viterbi.TotalCost(costs, tm, res.States)
		require.NoError(t, err)
		assert.Equal(t, res.Cost, got, "trial %d", trial)
	}
}

// TestSolve_BruteForce compares against exhaustive enumeration of all
// nStates^nSamples paths for small problems, with both uniform and
// arbitrary non-negative transition matrices.
func TestSolve_BruteForce(t *testing.T) {
	gen := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		nSamples := 1 + gen.Intn(6)
		nStates := 1 + gen.Intn(3)

		var costs, tm *matrix.Dense
		if trial%2 == 0 {
			costs, tm = randomProblem(t, gen, nSamples, nStates)
		} else {
			costs, _ = randomProblem(t, gen, nSamples, nStates)
			tm = randomTransition(t, gen, nStates)
		}

		res, err := viterbi.Solve(costs, tm)
		require.NoError(t, err)

		best := math.Inf(1)
		path := make([]int, nSamples)
		for {
			c, err := viterbi.TotalCost(costs, tm, path)
			require.NoError(t, err)
			if c < best {
				best = c
			}
			if !nextPath(path, nStates) {
				break
			}
		}
		assert.Equal(t, best, res.Cost, "trial %d (T=%d, S=%d)", trial, nSamples, nStates)
	}
}

// TestSolve_GonumInput decodes a cost table built with gonum.
func TestSolve_GonumInput(t *testing.T) {
	g := mat.NewDense(4, 2, []float64{
		0, 3,
		0, 3,
		3, 0,
		3, 0,
	})
	costs, err := matrix.FromGonum(g)
	require.NoError(t, err)

	states, err := viterbi.Decode(costs, mustTransition(t, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, states)
}

// randomProblem draws costs in [0,10) and a uniform penalty in [0,3).
func randomProblem(t *testing.T, gen *rand.Rand, nSamples, nStates int) (*matrix.Dense, *matrix.Dense) {
	t.Helper()
	costs, err := matrix.NewDense(nSamples, nStates)
	require.NoError(t, err)
	data := make([]float64, nSamples*nStates)
	for i := range data {
		data[i] = 10 * gen.Float64()
	}
	require.NoError(t, costs.Fill(data))

	return costs, mustTransition(t, nStates, 3*gen.Float64())
}

// randomTransition draws an arbitrary non-negative (possibly asymmetric) matrix.
func randomTransition(t *testing.T, gen *rand.Rand, nStates int) *matrix.Dense {
	t.Helper()
	tm, err := matrix.NewDense(nStates, nStates)
	require.NoError(t, err)
	data := make([]float64, nStates*nStates)
	for i := range data {
		data[i] = 4 * gen.Float64()
	}
	require.NoError(t, tm.Fill(data))

	return tm
}

// nextPath advances path like an odometer in base nStates; false when exhausted.
func nextPath(path []int, nStates int) bool {
	for i := len(path) - 1; i >= 0; i-- {
		path[i]++
		if path[i] < nStates {
			return true
		}
		path[i] = 0
	}

	return false
}
