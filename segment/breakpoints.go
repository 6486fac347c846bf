// SPDX-License-Identifier: MIT

package segment

import "fmt"

// Segment is a maximal run of one state over the half-open sample range [Start, End).
type Segment struct {
	State int
	Start int
	End   int
}

// Len returns the number of samples in the run.
func (s Segment) Len() int { return s.End - s.Start }

// Breakpoints returns every index i in [1, len(states)-1] with
// states[i-1] != states[i], in ascending order. The result is never nil.
// Complexity: O(T).
func Breakpoints(states []int) []int {
	bkps := make([]int, 0)
	for i := 1; i < len(states); i++ {
		if states[i-1] != states[i] {
			bkps = append(bkps, i)
		}
	}

	return bkps
}

// Segments run-length encodes states. Consecutive segments always differ in
// State, and their bounds tile [0, len(states)) without gaps. An empty path
// yields no segments.
// Complexity: O(T).
func Segments(states []int) []Segment {
	segs := make([]Segment, 0)
	start := 0
	for start < len(states) {
		end := start + 1
		for end < len(states) && states[end] == states[start] {
			end++
		}
		segs = append(segs, Segment{State: states[start], Start: start, End: end})
		start = end
	}

	return segs
}

// Reconstruct maps each state to its level, producing the fitted step function.
//
// Errors:
//   - ErrStateOutOfRange when a state has no matching level.
//
// Complexity: O(T).
func Reconstruct(states []int, levels []float64) ([]float64, error) {
	out := make([]float64, len(states))
	for t, s := range states {
		if s < 0 || s >= len(levels) {
			return nil, fmt.Errorf("Reconstruct: state %d at sample %d with %d levels: %w", s, t, len(levels), ErrStateOutOfRange)
		}
		out[t] = levels[s]
	}

	return out, nil
}
