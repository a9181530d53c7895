package safety_test

import (
	"testing"

	"github.com/katalvlaran/banker/core"
	"github.com/katalvlaran/banker/safety"
)

// benchState builds a P-process, R-resource system where every process holds
// one unit of each resource and needs one more — safe, but the scan has to
// work for the verdict (worst case O(P²·R) with the restart discipline).
func benchState(b *testing.B, procs, res int) *core.Snapshot {
	b.Helper()
	capacities := make([]int64, res)
	for r := range capacities {
		capacities[r] = int64(procs + 1) // one spare unit per resource
	}
	maxima := make([][]int64, procs)
	for p := range maxima {
		row := make([]int64, res)
		for r := range row {
			row[r] = 2
		}
		maxima[p] = row
	}
	st, err := core.NewState(capacities, maxima)
	if err != nil {
		b.Fatal(err)
	}
	hold := make([]int64, res)
	for r := range hold {
		hold[r] = 1
	}
	for p := 0; p < procs; p++ {
		if err = st.Commit(core.ProcID(p), hold); err != nil {
			b.Fatal(err)
		}
	}

	return st.Snapshot()
}

// BenchmarkEvaluate_Small measures the textbook shape (5×3).
func BenchmarkEvaluate_Small(b *testing.B) {
	snap := benchState(b, 5, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = safety.Evaluate(snap)
	}
}

// BenchmarkEvaluate_Wide measures a 200-process, 16-resource system.
func BenchmarkEvaluate_Wide(b *testing.B) {
	snap := benchState(b, 200, 16)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = safety.Evaluate(snap)
	}
}
