// SPDX-License-Identifier: MIT
// Package core: read-only State queries.
// Every query takes the read lock, computes from current storage, and returns
// a fresh copy — callers never alias internal slices, and derived vectors
// (Available, Need) are recomputed on every call rather than cached.

package core

// NumProcesses returns the fixed process count P.
// Complexity: O(1).
func (s *State) NumProcesses() int {
	return s.procs // shape is immutable; no lock needed
}

// NumResources returns the fixed resource-type count R.
// Complexity: O(1).
func (s *State) NumResources() int {
	return s.res // shape is immutable; no lock needed
}

// Capacities returns a copy of the per-resource total-capacity vector.
// Complexity: O(R).
func (s *State) Capacities() []int64 {
	// capacity is immutable after construction; copy without locking.
	out := make([]int64, s.res)
	copy(out, s.capacity)

	return out
}

// Status reports the lifecycle status of process p.
// Complexity: O(1).
func (s *State) Status(p ProcID) (Status, error) {
	if err := s.checkProc(p); err != nil {
		return StatusRunning, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status[p], nil
}

// Allocated returns a copy of process p's current allocation row.
// Complexity: O(R).
func (s *State) Allocated(p ProcID) ([]int64, error) {
	if err := s.checkProc(p); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int64, s.res)
	copy(out, s.alloc[s.idx(p, 0):s.idx(p, 0)+s.res])

	return out, nil
}

// Maximum returns a copy of process p's maximum-claim row.
// Complexity: O(R).
func (s *State) Maximum(p ProcID) ([]int64, error) {
	if err := s.checkProc(p); err != nil {
		return nil, err
	}
	// maximum is immutable after construction; copy without locking.
	out := make([]int64, s.res)
	copy(out, s.maximum[s.idx(p, 0):s.idx(p, 0)+s.res])

	return out, nil
}

// Available computes the per-resource availability vector:
// available[r] = capacity[r] − Σ_p allocated[p][r].
// Always derived from current storage, never cached.
// Complexity: O(P·R).
func (s *State) Available() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return availableOf(s.capacity, s.alloc, s.procs, s.res)
}

// Need computes process p's remaining-need row:
// need[p][r] = maximum[p][r] − allocated[p][r].
// Complexity: O(R).
func (s *State) Need(p ProcID) ([]int64, error) {
	if err := s.checkProc(p); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int64, s.res)
	base := s.idx(p, 0)
	for r := 0; r < s.res; r++ {
		out[r] = s.maximum[base+r] - s.alloc[base+r]
	}

	return out, nil
}

// AllocationTable returns a copy of the full allocation matrix, one row per
// process. For display purposes; mutation of the copy has no effect on State.
// Complexity: O(P·R).
func (s *State) AllocationTable() [][]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return unflatten(s.alloc, s.procs, s.res)
}

// MaximumTable returns a copy of the full maximum-claim matrix.
// Complexity: O(P·R).
func (s *State) MaximumTable() [][]int64 {
	// maximum is immutable after construction; copy without locking.
	return unflatten(s.maximum, s.procs, s.res)
}

// NeedTable returns a copy of the full need matrix, recomputed as
// maximum − allocation for every cell.
// Complexity: O(P·R).
func (s *State) NeedTable() [][]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([][]int64, s.procs)
	var p, r int
	for p = 0; p < s.procs; p++ {
		row := make([]int64, s.res)
		for r = 0; r < s.res; r++ {
			row[r] = s.maximum[p*s.res+r] - s.alloc[p*s.res+r]
		}
		out[p] = row
	}

	return out
}

// availableOf derives the availability vector from a capacity vector and a
// flat allocation matrix. Shared by State and Snapshot.
func availableOf(capacity, alloc []int64, procs, res int) []int64 {
	out := make([]int64, res)
	copy(out, capacity)
	var p, r int
	for p = 0; p < procs; p++ {
		for r = 0; r < res; r++ {
			out[r] -= alloc[p*res+r]
		}
	}

	return out
}

// unflatten copies a flat row-major matrix into per-row slices.
func unflatten(flat []int64, rows, cols int) [][]int64 {
	out := make([][]int64, rows)
	for i := 0; i < rows; i++ {
		row := make([]int64, cols)
		copy(row, flat[i*cols:(i+1)*cols])
		out[i] = row
	}

	return out
}
