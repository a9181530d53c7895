package safety_test

import (
	"fmt"

	"github.com/katalvlaran/banker/core"
	"github.com/katalvlaran/banker/safety"
)

// ExampleEvaluate reproduces the textbook Banker's-Algorithm walkthrough:
// five processes, three resource types, available [3,3,2]. The state is safe
// and the greedy scan discovers the order P1, P3, P0, P2, P4.
func ExampleEvaluate() {
	st, _ := core.NewState(
		[]int64{10, 5, 7},
		[][]int64{
			{7, 5, 3}, // P0
			{3, 2, 2}, // P1
			{9, 0, 2}, // P2
			{2, 2, 2}, // P3
			{4, 3, 3}, // P4
		},
	)

	// Reach the textbook allocation via commits.
	for p, row := range [][]int64{
		{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2},
	} {
		_ = st.Commit(core.ProcID(p), row)
	}

	out, err := safety.Evaluate(st.Snapshot())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("safe:", out.Safe)
	fmt.Println("sequence:", out.Sequence)

	// Output:
	// safe: true
	// sequence: [1 3 0 2 4]
}
