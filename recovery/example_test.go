package recovery_test

import (
	"fmt"

	"github.com/katalvlaran/banker/core"
	"github.com/katalvlaran/banker/recovery"
)

// ExampleRecover breaks a two-process circular wait. The lowest-identifier
// member is terminated and its holdings return to the pool.
func ExampleRecover() {
	st, _ := core.NewState(
		[]int64{1, 1},
		[][]int64{{1, 1}, {1, 1}},
	)
	_ = st.Commit(0, []int64{1, 0}) // P0 holds R0, needs R1
	_ = st.Commit(1, []int64{0, 1}) // P1 holds R1, needs R0

	rep, err := recovery.Recover(st)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(rep.Message)
	fmt.Println("victim:", rep.Victim)
	fmt.Println("available:", st.Available())

	// Output:
	// terminated process 0 to break circular wait
	// victim: 0
	// available: [1 0]
}
