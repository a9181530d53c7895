// SPDX-License-Identifier: MIT
// Package core: State type and constructor.
// Matrices are stored row-major in flat slices (one cell per (process,
// resource) pair) for cache friendliness and cheap deep copies.

package core

import (
	"fmt"
	"sync"
)

// State is the authoritative allocation record of a fixed resource system.
//
// Shape (procs × res) is fixed at construction, as are capacity and maximum.
// Only the allocation matrix and the per-process status vector mutate, and
// only under the write lock, through Commit and Reclaim.
type State struct {
	mu sync.RWMutex // guards alloc and status

	procs int // number of processes (P)
	res   int // number of resource types (R)

	capacity []int64  // length R; fixed after construction
	maximum  []int64  // P*R row-major; fixed after construction
	alloc    []int64  // P*R row-major; mutable
	status   []Status // length P; Running until reclaimed
}

// NewState builds a State from per-resource capacities and per-process
// maximum-claim rows. Allocation starts at zero for every pair and every
// process starts Running.
//
// Validation (first failure wins):
//  1. len(capacities) > 0, len(maxima) > 0.
//  2. Every capacity and maximum entry is non-negative.
//  3. Every maxima row has exactly len(capacities) entries.
//  4. maxima[p][r] ≤ capacities[r] for every pair.
//
// Complexity: O(P·R) time and memory.
func NewState(capacities []int64, maxima [][]int64) (*State, error) {
	// 1. Shape validation.
	if len(capacities) == 0 {
		return nil, ErrNoResources
	}
	if len(maxima) == 0 {
		return nil, ErrNoProcesses
	}
	procs, res := len(maxima), len(capacities)

	// 2. Capacity entries must be non-negative.
	var r int
	for r = 0; r < res; r++ {
		if capacities[r] < 0 {
			return nil, fmt.Errorf("capacity[%d]: %w", r, ErrNegativeUnits)
		}
	}

	// 3. Copy capacities so the State owns its storage.
	capCopy := make([]int64, res)
	copy(capCopy, capacities)

	// 4. Flatten maxima, validating shape, sign, and the claim≤capacity bound.
	maxFlat := make([]int64, procs*res)
	var p int
	for p = 0; p < procs; p++ {
		if len(maxima[p]) != res {
			return nil, fmt.Errorf("maxima[%d]: %w", p, ErrShapeMismatch)
		}
		for r = 0; r < res; r++ {
			switch m := maxima[p][r]; {
			case m < 0:
				return nil, fmt.Errorf("maxima[%d][%d]: %w", p, r, ErrNegativeUnits)
			case m > capCopy[r]:
				return nil, fmt.Errorf("maxima[%d][%d]: %w", p, r, ErrMaxExceedsCapacity)
			default:
				maxFlat[p*res+r] = m
			}
		}
	}

	// 5. Assemble: allocation zeroed, all processes Running.
	return &State{
		procs:    procs,
		res:      res,
		capacity: capCopy,
		maximum:  maxFlat,
		alloc:    make([]int64, procs*res),
		status:   make([]Status, procs),
	}, nil
}

// idx maps a (process, resource) pair onto the flat row-major offset.
// Callers are responsible for bounds; see checkProc/checkRes.
func (s *State) idx(p ProcID, r ResourceID) int {
	return int(p)*s.res + int(r)
}

// checkProc validates a process identifier against the fixed shape.
func (s *State) checkProc(p ProcID) error {
	if p < 0 || int(p) >= s.procs {
		return fmt.Errorf("process %d: %w", p, ErrUnknownProcess)
	}

	return nil
}

// checkRes validates a resource identifier against the fixed shape.
func (s *State) checkRes(r ResourceID) error {
	if r < 0 || int(r) >= s.res {
		return fmt.Errorf("resource %d: %w", r, ErrUnknownResource)
	}

	return nil
}
