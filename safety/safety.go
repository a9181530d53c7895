// SPDX-License-Identifier: MIT
// Package safety: Banker's-Algorithm evaluation over an owned snapshot.

package safety

import (
	"errors"

	"github.com/katalvlaran/banker/core"
)

// ErrNilSnapshot indicates a nil *core.Snapshot was passed to Evaluate.
var ErrNilSnapshot = errors.New("safety: snapshot is nil")

// Result carries the verdict of a safety evaluation.
type Result struct {
	// Safe reports whether every process can run to completion from the
	// evaluated state in at least one order.
	Safe bool

	// Sequence is the completion order discovered by the greedy scan, in the
	// order processes were finished. Valid only when Safe is true; terminated
	// processes never appear (they have nothing left to complete).
	Sequence []core.ProcID
}

// Evaluate runs the Banker's-Algorithm safety test against snap.
// Pure: snap is only read, never mutated.
//
// Steps:
//  1. Validate input.
//  2. work ← Available(); finished[p] ← Terminated(p).
//  3. Scan processes in ascending order for a runnable one
//     (need(p) ≤ work component-wise); on success absorb its allocation
//     into work, mark finished, record in Sequence, restart the scan.
//  4. Safe iff no unfinished process remains.
//
// Complexity: O(P²·R) time, O(P+R) memory.
func Evaluate(snap *core.Snapshot) (*Result, error) {
	// 1. Validate input.
	if snap == nil {
		return nil, ErrNilSnapshot
	}

	procs, res := snap.NumProcesses(), snap.NumResources()

	// 2. Initialize the working vector and finished flags.
	work := snap.Available()
	finished := make([]bool, procs)
	remaining := procs
	var p int
	for p = 0; p < procs; p++ {
		if snap.Terminated(core.ProcID(p)) {
			finished[p] = true
			remaining--
		}
	}

	out := &Result{Sequence: make([]core.ProcID, 0, remaining)}

	// 3. Greedy scan: each pass completes at most one process, then restarts
	// from the lowest identifier so the discovered order is deterministic.
	var r int
	var need, alloc []int64
	var runnable bool
	for remaining > 0 {
		runnable = false
		for p = 0; p < procs; p++ {
			if finished[p] {
				continue
			}
			need = snap.Need(core.ProcID(p))
			if !fits(need, work) {
				continue
			}
			// Process p can run to completion: absorb its holdings.
			alloc = snap.Allocated(core.ProcID(p))
			for r = 0; r < res; r++ {
				work[r] += alloc[r]
			}
			finished[p] = true
			remaining--
			out.Sequence = append(out.Sequence, core.ProcID(p))
			runnable = true

			break // restart the scan from P0
		}
		if !runnable {
			// 4. Some processes can never complete: unsafe.
			out.Sequence = nil

			return out, nil
		}
	}

	out.Safe = true

	return out, nil
}

// IsSafe is a convenience wrapper returning only the boolean verdict.
func IsSafe(snap *core.Snapshot) (bool, error) {
	out, err := Evaluate(snap)
	if err != nil {
		return false, err
	}

	return out.Safe, nil
}

// fits reports whether need ≤ work component-wise.
func fits(need, work []int64) bool {
	for r := range need {
		if need[r] > work[r] {
			return false
		}
	}

	return true
}
