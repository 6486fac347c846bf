// SPDX-License-Identifier: MIT
// Package: synth
//
// options.go — functional options for the signal generators.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package synth

import (
	"math/rand"
)

// Defaults.
const (
	DefaultAmplitude = 1.0 // ±1 matches the binary segmentation levels
	DefaultPeriod    = 8   // samples per full high+low cycle
	DefaultDuty      = 0.5 // fraction of the period spent at +A
	DefaultSeed      = 1   // RNG seed when neither WithSeed nor WithRand is given
)

// config is the resolved, immutable parameter bundle for one generator call.
type config struct {
	amplitude float64
	period    int
	duty      float64
	sigma     float64
	trend     float64
	rng       *rand.Rand
}

// Option customizes a generator call.
type Option func(*config)

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	c := config{
		amplitude: DefaultAmplitude,
		period:    DefaultPeriod,
		duty:      DefaultDuty,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return c
}

// WithAmplitude sets the level magnitude A (>0); the train switches between +A and -A.
// Panics if A <= 0.
func WithAmplitude(A float64) Option {
	if A <= 0 {
		panic("synth: WithAmplitude(A<=0)")
	}
	return func(c *config) { c.amplitude = A }
}

// WithPeriod sets the cycle length in samples. Panics if p < 2.
func WithPeriod(p int) Option {
	if p < 2 {
		panic("synth: WithPeriod(p<2)")
	}
	return func(c *config) { c.period = p }
}

// WithDuty sets the fraction of each period spent at +A, in (0,1).
// Panics outside that open interval.
func WithDuty(d float64) Option {
	if !(d > 0 && d < 1) {
		panic("synth: WithDuty(d not in (0,1))")
	}
	return func(c *config) { c.duty = d }
}

// WithNoise sets the Gaussian noise sigma (>=0). Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synth: WithNoise(sigma<0)")
	}
	return func(c *config) { c.sigma = sigma }
}

// WithTrend adds k*i to sample i. Any real value is accepted.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG (shared stream across calls). Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
