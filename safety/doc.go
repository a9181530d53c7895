// SPDX-License-Identifier: MIT

// Package safety implements the Banker's-Algorithm safety test over a
// core.Snapshot. Evaluate is a pure function: it never mutates the snapshot
// and has no side effects, so identical input always yields an identical
// Result.
//
// Algorithm: maintain work = snapshot.Available() and a finished flag per
// process (terminated processes start finished and contribute nothing).
// Repeatedly scan the unfinished processes in ascending identifier order; a
// process is runnable when need(p)[r] ≤ work[r] for every resource r. On
// finding a runnable process, add its full allocation to work, mark it
// finished, and restart the scan. The state is safe iff all processes end
// finished. The greedy completion order is returned in Result.Sequence as a
// diagnostic; only the boolean verdict is part of the contract — any one
// discoverable completion order proves safety.
//
// Complexity:
//
//   - Time:   O(P² · R)  (each full scan completes at most one process)
//   - Memory: O(P + R)   (work vector + finished flags + sequence)
//
// Errors:
//
//   - ErrNilSnapshot  if the snapshot is nil.
package safety
