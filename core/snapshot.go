// SPDX-License-Identifier: MIT
// Package core: Snapshot — an owned deep copy of a State used for
// speculative evaluation. A Snapshot never shares mutable storage with the
// State it was taken from, so mutating one can never corrupt the other.

package core

import "fmt"

// Snapshot is a point-in-time deep copy of a State.
//
// It serves two roles: the immutable input to the pure evaluation packages
// (safety, waitfor), and the scratch workspace for the arbiter's tentative
// allocation. There is no lock — a Snapshot belongs to exactly one caller.
type Snapshot struct {
	procs int // number of processes (P)
	res   int // number of resource types (R)

	capacity []int64  // length R
	maximum  []int64  // P*R row-major
	alloc    []int64  // P*R row-major
	status   []Status // length P
}

// Snapshot deep-copies the current state under the read lock.
// The returned Snapshot exclusively owns its matrices.
// Complexity: O(P·R) time and memory.
func (s *State) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &Snapshot{
		procs:    s.procs,
		res:      s.res,
		capacity: append([]int64(nil), s.capacity...),
		maximum:  append([]int64(nil), s.maximum...),
		alloc:    append([]int64(nil), s.alloc...),
		status:   append([]Status(nil), s.status...),
	}
}

// Clone returns an independent deep copy of the snapshot.
// Complexity: O(P·R).
func (sn *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		procs:    sn.procs,
		res:      sn.res,
		capacity: append([]int64(nil), sn.capacity...),
		maximum:  append([]int64(nil), sn.maximum...),
		alloc:    append([]int64(nil), sn.alloc...),
		status:   append([]Status(nil), sn.status...),
	}
}

// NumProcesses returns the process count P.
func (sn *Snapshot) NumProcesses() int { return sn.procs }

// NumResources returns the resource-type count R.
func (sn *Snapshot) NumResources() int { return sn.res }

// Terminated reports whether process p was terminated at capture time.
// Out-of-range identifiers report false.
func (sn *Snapshot) Terminated(p ProcID) bool {
	if p < 0 || int(p) >= sn.procs {
		return false
	}

	return sn.status[p] == StatusTerminated
}

// Available computes the availability vector of the captured state.
// Complexity: O(P·R).
func (sn *Snapshot) Available() []int64 {
	return availableOf(sn.capacity, sn.alloc, sn.procs, sn.res)
}

// Need computes process p's remaining-need row. Out-of-range identifiers
// yield a nil row; evaluation loops stay branch-free by iterating 0..P-1.
// Complexity: O(R).
func (sn *Snapshot) Need(p ProcID) []int64 {
	if p < 0 || int(p) >= sn.procs {
		return nil
	}

	out := make([]int64, sn.res)
	base := int(p) * sn.res
	for r := 0; r < sn.res; r++ {
		out[r] = sn.maximum[base+r] - sn.alloc[base+r]
	}

	return out
}

// Allocated returns a copy of process p's allocation row at capture time.
// Out-of-range identifiers yield a nil row.
// Complexity: O(R).
func (sn *Snapshot) Allocated(p ProcID) []int64 {
	if p < 0 || int(p) >= sn.procs {
		return nil
	}

	out := make([]int64, sn.res)
	base := int(p) * sn.res
	copy(out, sn.alloc[base:base+sn.res])

	return out
}

// Apply adds a signed delta to process p's allocation row inside the scratch
// copy, with the same defensive checks as State.Commit (invariants 1, 2, 4).
// A failed Apply leaves the snapshot untouched.
// Complexity: O(P·R).
func (sn *Snapshot) Apply(p ProcID, delta []int64) error {
	// 1. Shape validation.
	if p < 0 || int(p) >= sn.procs {
		return fmt.Errorf("process %d: %w", p, ErrUnknownProcess)
	}
	if len(delta) != sn.res {
		return fmt.Errorf("delta length %d, want %d: %w", len(delta), sn.res, ErrShapeMismatch)
	}
	if sn.status[p] == StatusTerminated {
		return fmt.Errorf("process %d: %w", p, ErrProcessTerminated)
	}

	// 2. Validate the proposed row before writing any cell.
	base := int(p) * sn.res
	avail := sn.Available()
	var next int64
	var r int
	for r = 0; r < sn.res; r++ {
		next = sn.alloc[base+r] + delta[r]
		if next < 0 || next > sn.maximum[base+r] {
			return fmt.Errorf("process %d resource %d: %w", p, r, ErrInvariantViolation)
		}
		if delta[r] > avail[r] {
			return fmt.Errorf("resource %d over capacity: %w", r, ErrInvariantViolation)
		}
	}

	// 3. Apply the arithmetic.
	for r = 0; r < sn.res; r++ {
		sn.alloc[base+r] += delta[r]
	}

	return nil
}
