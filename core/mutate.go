// SPDX-License-Identifier: MIT
// Package core: State mutations (Commit, Reclaim).
// These are the only two paths that touch the allocation matrix or the
// status vector, and both hold the write lock for their full duration.

package core

import "fmt"

// Commit adds a signed delta vector to process p's allocation row.
//
// The primary enforcement path is the arbiter's admission check; Commit
// performs a defensive re-check so a caller bypassing the arbiter cannot
// corrupt state. The whole check happens against the proposed result before
// any cell is written, so a failed Commit leaves the row untouched.
//
// Checks, in order:
//  1. p in range, delta has length R.
//  2. p is not terminated (a terminated process holds zero forever).
//  3. 0 ≤ alloc[p][r]+delta[r] ≤ maximum[p][r] for every r (invariant 1).
//  4. Σ_q alloc[q][r] + delta[r] ≤ capacity[r] for every r (invariant 2).
//
// Errors: ErrUnknownProcess, ErrShapeMismatch, ErrProcessTerminated,
// ErrInvariantViolation. Complexity: O(P·R).
func (s *State) Commit(p ProcID, delta []int64) error {
	// 1. Shape validation before taking the lock.
	if err := s.checkProc(p); err != nil {
		return err
	}
	if len(delta) != s.res {
		return fmt.Errorf("delta length %d, want %d: %w", len(delta), s.res, ErrShapeMismatch)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 2. Terminated rows are frozen at zero (invariant 4).
	if s.status[p] == StatusTerminated {
		return fmt.Errorf("process %d: %w", p, ErrProcessTerminated)
	}

	// 3. Validate the proposed row against per-process bounds.
	base := s.idx(p, 0)
	avail := availableOf(s.capacity, s.alloc, s.procs, s.res)
	var next int64
	for r := 0; r < s.res; r++ {
		next = s.alloc[base+r] + delta[r]
		if next < 0 || next > s.maximum[base+r] {
			return fmt.Errorf("process %d resource %d: %w", p, r, ErrInvariantViolation)
		}
		// 4. Validate the system-wide capacity bound.
		if delta[r] > avail[r] {
			return fmt.Errorf("resource %d over capacity: %w", r, ErrInvariantViolation)
		}
	}

	// 5. All checks passed; apply the arithmetic.
	for r := 0; r < s.res; r++ {
		s.alloc[base+r] += delta[r]
	}

	return nil
}

// Reclaim zeroes process p's allocation row and transitions it
// Running→Terminated, atomically under the write lock. The freed units flow
// back into Available by derivation (capacity is unchanged).
//
// The transition is exactly-once: reclaiming an already-terminated process
// fails with ErrProcessTerminated. Returns the reclaimed row (the allocation
// held immediately before reclamation). Complexity: O(R).
func (s *State) Reclaim(p ProcID) ([]int64, error) {
	if err := s.checkProc(p); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status[p] == StatusTerminated {
		return nil, fmt.Errorf("process %d: %w", p, ErrProcessTerminated)
	}

	// Capture the reclaimed units, then zero the row and flip the status.
	base := s.idx(p, 0)
	freed := make([]int64, s.res)
	copy(freed, s.alloc[base:base+s.res])
	for r := 0; r < s.res; r++ {
		s.alloc[base+r] = 0
	}
	s.status[p] = StatusTerminated

	return freed, nil
}
