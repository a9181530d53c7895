// SPDX-License-Identifier: MIT

// Package core defines the central allocation-state types for the banker
// library: State, Snapshot, process/resource identifiers, and the sentinel
// error set shared by every algorithm package.
//
// State is the authoritative record of a fixed-shape resource system:
// per-resource total capacity, per-process maximum claim, and per-process
// current allocation. Capacity and maximum are fixed at construction;
// allocation mutates only through Commit (signed deltas, used by the request
// arbiter and release path) and Reclaim (full row reclamation, used by
// recovery). Availability and remaining need are always computed on demand
// from capacity, allocation, and maximum — they are never cached, so a query
// can never observe a stale derivation.
//
// Concurrency model: every State method acquires an internal sync.RWMutex
// (read lock for queries, write lock for Commit/Reclaim), so individual
// operations are safe across goroutines. Compound sequences that must be
// atomic as a unit — a safety check followed by a commit — are the caller's
// responsibility; see the arbiter and toolkit packages.
//
// Snapshot is a deep copy of a State. It exclusively owns its matrices,
// shares no storage with the live State, and is the input to the pure
// evaluation packages (safety, waitfor). A Snapshot may be mutated freely
// via Apply as a scratch workspace; discarding it discards the speculation.
//
// Invariants (checked defensively by Commit/Apply, enforced primarily by the
// arbiter's admission path):
//
//  1. 0 ≤ allocated[p][r] ≤ maximum[p][r] ≤ capacity[r] for every p, r.
//  2. Σ_p allocated[p][r] ≤ capacity[r] for every r.
//  3. need[p][r] = maximum[p][r] − allocated[p][r] ≥ 0 always.
//  4. A terminated process holds zero units of every resource.
//
// Errors:
//
//	ErrNoResources          - construction with zero resource types.
//	ErrNoProcesses          - construction with zero processes.
//	ErrShapeMismatch        - a vector/row has the wrong length.
//	ErrNegativeUnits        - a negative capacity or maximum at construction.
//	ErrMaxExceedsCapacity   - a maximum claim above its resource's capacity.
//	ErrUnknownProcess       - process identifier out of range.
//	ErrUnknownResource      - resource identifier out of range.
//	ErrProcessTerminated    - mutation aimed at a terminated process.
//	ErrInvariantViolation   - a delta would corrupt invariants 1, 2 or 4.
package core
