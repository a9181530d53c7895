package waitfor_test

import (
	"fmt"

	"github.com/katalvlaran/banker/core"
	"github.com/katalvlaran/banker/waitfor"
)

// ExampleDetect shows the canonical hold-and-wait cycle: P0 holds R0 and
// needs R1, P1 holds R1 and needs R0. Both lie on the circular wait.
func ExampleDetect() {
	st, _ := core.NewState(
		[]int64{1, 1},
		[][]int64{
			{1, 1}, // P0
			{1, 1}, // P1
		},
	)
	_ = st.Commit(0, []int64{1, 0}) // P0 takes R0
	_ = st.Commit(1, []int64{0, 1}) // P1 takes R1

	set, err := waitfor.Detect(st.Snapshot())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("deadlocked:", set)

	// Output:
	// deadlocked: [0 1]
}
