// Package stepfit is an exact, penalized step-function fitter for
// one-dimensional numeric signals.
//
// 🚀 What is stepfit?
//
//	Given a signal and a small set of reference levels, stepfit assigns each
//	sample to a level so that the total mismatch plus a fixed price per
//	level change is globally minimal. The solver is a Viterbi recursion in
//	the min-plus (tropical) semiring: exact, deterministic, O(T·S²).
//
// ✨ Packages, leaves first:
//
//	matrix/   — row-major Dense float64 buffers, validators, gonum interop
//	tropical/ — switching-penalty matrix builder, min-plus row reduction
//	viterbi/  — generic forward/backward decoder over any state count
//	segment/  — binary (+1/-1) driver, multi-level Fit, breakpoints, segments
//	synth/    — seeded pulse-train generator with known breakpoints
//
// Quick example:
//
//	bkps, states, err := segment.Binary([]float64{-1, -1, -1, 1, 1, 1}, 0.5)
//	// bkps = [3], states = [1 1 1 0 0 0]
//
//	go get github.com/mousemonitor/stepfit
package stepfit
