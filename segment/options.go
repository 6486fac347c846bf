// SPDX-License-Identifier: MIT

// Package segment: functional configuration for Fit.
// This file defines:
//   - Option / Options,
//   - documented defaults (single source of truth),
//   - WithX constructors,
//   - gatherOptions helper and Options.Validate.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Defaults reproduce the binary driver exactly.
//   - Validation reports every violation at once, not just the first.

package segment

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/mousemonitor/stepfit/tropical"
)

// ---------- Defaults (single source of truth) ----------

// DefaultPenalty is the switching cost used when WithPenalty is not given.
const DefaultPenalty = 1.0

// Reference levels of the binary driver: state 0 is +1, state 1 is -1.
const (
	UpperLevel = 1.0
	LowerLevel = -1.0
)

// DefaultLevels returns a fresh copy of the binary level set {+1, -1}.
func DefaultLevels() []float64 { return []float64{UpperLevel, LowerLevel} }

// Options configures Fit.
//
// Fields:
//   - Penalty — cost charged on every level change; finite and >= 0.
//   - Levels  — reference levels; state s means "sample is at Levels[s]".
//   - Cost    — per-sample mismatch cost between a sample and a level.
type Options struct {
	Penalty float64
	Levels  []float64
	Cost    CostFunc
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the binary driver configuration:
// Penalty = DefaultPenalty, Levels = {+1, -1}, Cost = AbsoluteCost.
func DefaultOptions() Options {
	return Options{
		Penalty: DefaultPenalty,
		Levels:  DefaultLevels(),
		Cost:    AbsoluteCost,
	}
}

// WithPenalty sets the switching penalty.
func WithPenalty(p float64) Option {
	return func(o *Options) { o.Penalty = p }
}

// WithLevels sets the reference levels. The slice is copied.
func WithLevels(levels ...float64) Option {
	cp := make([]float64, len(levels))
	copy(cp, levels)

	return func(o *Options) { o.Levels = cp }
}

// WithCost sets the per-sample cost function.
func WithCost(f CostFunc) Option {
	return func(o *Options) { o.Cost = f }
}

// gatherOptions applies opts over DefaultOptions and validates the result.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.Validate()
}

// Validate checks every field and returns all violations aggregated in a
// *multierror.Error (nil when valid). Each entry matches its sentinel via
// errors.Is.
//
// Checks:
//   - Penalty finite and >= 0           → ErrInvalidPenalty
//   - len(Levels) >= 1                  → ErrNoLevels
//   - every level finite                → ErrInvalidLevel
//   - no level listed twice             → ErrDuplicateLevel
//   - Cost != nil                       → ErrNilCost
//
// Complexity: O(L²) for L levels (L is small).
func (o Options) Validate() error {
	var result *multierror.Error

	if err := tropical.ValidatePenalty(o.Penalty); err != nil {
		result = multierror.Append(result, err)
	}
	if len(o.Levels) == 0 {
		result = multierror.Append(result, ErrNoLevels)
	}
	for i, l := range o.Levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			result = multierror.Append(result, fmt.Errorf("level %d (%v): %w", i, l, ErrInvalidLevel))
			continue
		}
		for j := 0; j < i; j++ {
			if o.Levels[j] == l {
				result = multierror.Append(result, fmt.Errorf("level %d equals level %d (%v): %w", i, j, l, ErrDuplicateLevel))
				break
			}
		}
	}
	if o.Cost == nil {
		result = multierror.Append(result, ErrNilCost)
	}

	return result.ErrorOrNil()
}
