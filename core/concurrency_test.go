package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banker/core"
)

// TestState_ConcurrentCommitRelease hammers Commit with paired grant/release
// deltas from many goroutines. Every pair nets to zero, so regardless of
// interleaving the final availability must equal the initial one, and no
// intermediate read may observe a negative availability (invariant 2).
func TestState_ConcurrentCommitRelease(t *testing.T) {
	st, err := core.NewState(
		[]int64{64, 64},
		[][]int64{{8, 8}, {8, 8}, {8, 8}, {8, 8}},
	)
	require.NoError(t, err)

	const rounds = 200
	var wg sync.WaitGroup
	for p := core.ProcID(0); p < 4; p++ {
		wg.Add(1)
		go func(p core.ProcID) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				// Grant then release one unit of each resource. Capacity 64
				// against a worst-case concurrent demand of 4×2 units means
				// the defensive capacity check never fires here.
				if err := st.Commit(p, []int64{1, 1}); err != nil {
					t.Errorf("commit: %v", err)
					return
				}
				if err := st.Commit(p, []int64{-1, -1}); err != nil {
					t.Errorf("release: %v", err)
					return
				}
			}
		}(p)
	}

	// Concurrent readers must never observe a partially applied delta that
	// drives availability negative.
	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()
	for {
		select {
		case <-done:
			assert.Equal(t, []int64{64, 64}, st.Available())
			return
		default:
			for _, v := range st.Available() {
				assert.GreaterOrEqual(t, v, int64(0))
			}
		}
	}
}

// TestState_ConcurrentSnapshots takes snapshots while mutators run; each
// snapshot must be internally consistent (non-negative derived vectors).
func TestState_ConcurrentSnapshots(t *testing.T) {
	st, err := core.NewState([]int64{32}, [][]int64{{16}, {16}})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = st.Commit(0, []int64{1})
			_ = st.Commit(0, []int64{-1})
		}
	}()

	for i := 0; i < 500; i++ {
		snap := st.Snapshot()
		avail := snap.Available()[0]
		need := snap.Need(0)[0]
		assert.GreaterOrEqual(t, avail, int64(0))
		assert.GreaterOrEqual(t, need, int64(0))
	}
	wg.Wait()
}
