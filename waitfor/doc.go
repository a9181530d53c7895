// SPDX-License-Identifier: MIT

// Package waitfor builds a wait-for graph from a core.Snapshot and detects
// circular waits in it with a deterministic depth-first search.
//
// Graph model: process p has an edge to process q (p ≠ q) when p has unmet
// need for some resource r (need(p)[r] > 0) and q currently holds units of r
// (allocated(q)[r] > 0). Terminated processes neither wait nor hold, so they
// appear in no edge. Adjacency lists are kept in ascending identifier order,
// making every traversal — and therefore Detect's output — reproducible for
// identical input.
//
// Detect reports a process as deadlocked when a directed path of length ≥ 1
// leads from it back to itself. Detection is pure: it reads the snapshot,
// mutates nothing, and calling it twice on unchanged state yields the same
// set.
//
// Known approximation: the graph is built from current holdings only. A
// process waiting on units held by a process that is just about to release
// them voluntarily is still flagged, because "about to release" is not
// observable in the allocation state. This is an accepted property of the
// heuristic wait-for check, not a defect.
//
// Complexity:
//
//   - BuildGraph: O(P²·R) time, O(P²) memory worst case.
//   - Detect:     O(P·(P+E)) time on top of the build (one DFS per process).
//
// Errors:
//
//   - ErrNilSnapshot  if the snapshot is nil.
package waitfor
