// Package synth generates deterministic piecewise-constant test signals with
// known ground-truth breakpoints, for fixtures, demos and benchmarks of the
// segment package.
//
// ✨ Key features:
//   - rectangular pulse train alternating between +A and -A
//   - configurable period, duty cycle, linear trend and Gaussian noise
//   - strict determinism per (n, options); seeding via WithSeed / WithRand
//   - PulseBreakpoints returns the exact change points of the noiseless train
//
// ⚙️ Usage:
//
//	x, err := synth.Pulse(200, synth.WithPeriod(40), synth.WithNoise(0.3), synth.WithSeed(7))
//	truth, _ := synth.PulseBreakpoints(200, synth.WithPeriod(40))
package synth
