// SPDX-License-Identifier: MIT

// Package toolkit is the synchronized facade over the allocation core: one
// Toolkit owns a core.State, its arbiter, and the detection/recovery path,
// and serializes every mutating operation behind a single mutex.
//
// The facade exists for one concurrency guarantee the individual packages
// cannot give on their own: a request's check-then-commit sequence, a
// release, and a detect-then-reclaim recovery must be mutually exclusive as
// whole units. Two concurrent requests that both observed the same
// availability could otherwise both pass the safety check against stale
// data. No operation blocks waiting for resources — a denied request
// returns immediately and retry policy belongs to the caller.
//
// Display accessors (Capacities, Available, AllocationTable, MaximumTable,
// NeedTable, ProcessStatus) return detached copies and never mutate; they
// read under the core.State read lock, so they cannot observe a partially
// applied delta.
//
// Presentation layers — dashboards, plots, interactive drivers — are
// expected to live outside this module and consume the Toolkit surface
// only.
package toolkit
