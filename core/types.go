// SPDX-License-Identifier: MIT
// Package core: identifier types, process status, and the sentinel error set.
// All sentinels are package-level, prefixed "core: ...", and matched with
// errors.Is; no algorithm panics on user-triggered conditions.

package core

import "errors"

// ProcID identifies a process by its zero-based index in the system.
// Process identifiers are dense: a system with P processes uses 0..P-1.
type ProcID int

// ResourceID identifies a resource type by its zero-based index.
// Resource identifiers are dense: a system with R types uses 0..R-1.
type ResourceID int

// Status reports the lifecycle state of a process.
// The transition Running→Terminated happens at most once, via State.Reclaim.
type Status uint8

const (
	// StatusRunning marks a live process that may hold and request resources.
	StatusRunning Status = iota

	// StatusTerminated marks a process whose resources were forcibly
	// reclaimed by recovery. Terminated processes hold zero allocation and
	// never become runnable again.
	StatusTerminated
)

// String returns a human-readable status label.
func (s Status) String() string {
	if s == StatusTerminated {
		return "Terminated"
	}

	return "Running"
}

// Sentinel errors for core state operations.
var (
	// ErrNoResources indicates construction with an empty capacity vector.
	ErrNoResources = errors.New("core: at least one resource type required")

	// ErrNoProcesses indicates construction with an empty maxima matrix.
	ErrNoProcesses = errors.New("core: at least one process required")

	// ErrShapeMismatch indicates a vector or matrix row whose length does not
	// match the system's resource count.
	ErrShapeMismatch = errors.New("core: vector shape mismatch")

	// ErrNegativeUnits indicates a negative capacity or maximum-claim entry.
	ErrNegativeUnits = errors.New("core: negative resource units")

	// ErrMaxExceedsCapacity indicates a maximum claim larger than the total
	// capacity of its resource type (configuration error, fatal to setup).
	ErrMaxExceedsCapacity = errors.New("core: maximum claim exceeds capacity")

	// ErrUnknownProcess indicates a process identifier outside 0..P-1.
	ErrUnknownProcess = errors.New("core: unknown process")

	// ErrUnknownResource indicates a resource identifier outside 0..R-1.
	ErrUnknownResource = errors.New("core: unknown resource")

	// ErrProcessTerminated indicates a mutation aimed at a process that has
	// already been terminated by recovery.
	ErrProcessTerminated = errors.New("core: process terminated")

	// ErrInvariantViolation indicates a delta whose result would break the
	// allocation invariants. It signals a caller bypassing the arbiter's
	// admission path and is surfaced as an internal error, never a denial.
	ErrInvariantViolation = errors.New("core: allocation invariant violation")
)
