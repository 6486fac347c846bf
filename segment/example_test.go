package segment_test

import (
	"fmt"

	"github.com/mousemonitor/stepfit/segment"
)

// ExampleBinary fits the canonical -1 → +1 step.
func ExampleBinary() {
	bkps, states, err := segment.Binary([]float64{-1, -1, -1, 1, 1, 1}, 0.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("breakpoints:", bkps)
	fmt.Println("states:", states)
	// Output:
	// breakpoints: [3]
	// states: [1 1 1 0 0 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFit
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A motion sensor reports an activity score around +1 while the animal
//	moves and around -1 at rest. A single spurious dip at sample 2 is not
//	worth two level changes at penalty 2, so it is absorbed into the
//	surrounding "active" run.
func ExampleFit() {
	signal := []float64{0.9, 1.1, -0.2, 0.8, 1.0, -0.9, -1.2, -1.0, -0.8}

	res, err := segment.Fit(signal, segment.WithPenalty(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range res.Segments {
		fmt.Printf("level %+g on [%d, %d)\n", res.Levels[s.State], s.Start, s.End)
	}
	// Output:
	// level +1 on [0, 5)
	// level -1 on [5, 9)
}
