// Package matrix provides the dense numeric buffers shared by the tropical,
// viterbi and segment packages.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and
//     no-copy Row views for hot loops. Zero-row matrices are legal.
//   - Validators: nil, square, vector-length and numeric (NaN/Inf) checks
//     returning wrapped sentinel errors.
//   - gonum interop: FromGonum / ToGonum.
//
// All routines are deterministic (fixed row-major loop order) and never
// panic on user input.
package matrix
