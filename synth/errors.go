// SPDX-License-Identifier: MIT

package synth

import "errors"

// ErrNegativeLength indicates a negative sample count.
// Validation panics are confined to option constructors (WithX);
// generators themselves return this sentinel instead.
var ErrNegativeLength = errors.New("synth: length must be >= 0")
