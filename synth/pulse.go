// SPDX-License-Identifier: MIT
// Package: synth
//
// pulse.go — deterministic ±A rectangular pulse generator.
//
// Contract:
//   • Pulse(n, opts...) returns a slice of length n; n == 0 yields an empty slice.
//   • Strict determinism per (n, options); no panics; no global state.
//   • O(n) time and O(n) memory.

package synth

import (
	"fmt"
	"math"
)

// onSamples returns how many samples of each period sit at +A, clamped to
// [1, period-1] so that every period contains both levels.
func (c config) onSamples() int {
	on := int(math.Round(c.duty * float64(c.period)))
	if on < 1 {
		on = 1
	}
	if on > c.period-1 {
		on = c.period - 1
	}

	return on
}

// high reports whether sample i of the noiseless train sits at +A.
func (c config) high(i, on int) bool { return i%c.period < on }

// Pulse returns a length-n pulse train with optional trend and noise.
//
// Shape:
//   - y[i] = +A when (i mod period) < round(duty*period), else -A.
//
// Additions (in this order):
//   - Linear trend: y += trend * i.
//   - Gaussian noise: y += sigma * N(0,1), drawn from the configured RNG.
//
// Errors:
//   - ErrNegativeLength when n < 0.
//
// Complexity: O(n) time, O(n) memory.
func Pulse(n int, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("Pulse(%d): %w", n, ErrNegativeLength)
	}
	c := newConfig(opts...)
	on := c.onSamples()

	out := make([]float64, n)
	var base float64
	for i := 0; i < n; i++ {
		if c.high(i, on) {
			base = c.amplitude
		} else {
			base = -c.amplitude
		}
		base += c.trend * float64(i)
		if c.sigma > 0 {
			base += c.sigma * c.rng.NormFloat64()
		}
		out[i] = base
	}

	return out, nil
}

// PulseBreakpoints returns the indices i in [1, n-1] where the noiseless
// train produced by Pulse with the same options changes level.
// Noise, trend and RNG options are accepted and ignored.
//
// Errors:
//   - ErrNegativeLength when n < 0.
//
// Complexity: O(n).
func PulseBreakpoints(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("PulseBreakpoints(%d): %w", n, ErrNegativeLength)
	}
	c := newConfig(opts...)
	on := c.onSamples()

	bkps := make([]int, 0)
	for i := 1; i < n; i++ {
		if c.high(i, on) != c.high(i-1, on) {
			bkps = append(bkps, i)
		}
	}

	return bkps, nil
}
