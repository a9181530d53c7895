// SPDX-License-Identifier: MIT
// Package waitfor: deterministic circular-wait detection.

package waitfor

import "github.com/katalvlaran/banker/core"

// Visitation states for the per-start DFS.
const (
	white = iota // not yet visited in this traversal
	gray         // on the current traversal's stack or already expanded
)

// Detect reports the set of processes that lie on a circular wait in the
// wait-for graph of snap, in ascending identifier order.
//
// A process p is deadlocked when some directed path of length ≥ 1 returns
// from p to p. Each candidate gets its own traversal with fresh visitation
// state, so the result is independent of evaluation history and identical
// for identical snapshots.
//
// Complexity: O(P²·R) for the build plus O(P·(P+E)) for the traversals.
func Detect(snap *core.Snapshot) ([]core.ProcID, error) {
	g, err := BuildGraph(snap)
	if err != nil {
		return nil, err
	}

	return g.Deadlocked(), nil
}

// Deadlocked returns every process that can reach itself through at least
// one wait-for edge, ascending. The result is never nil: an empty set is an
// empty, non-nil slice so callers can compare without nil special-casing.
func (g *Graph) Deadlocked() []core.ProcID {
	out := make([]core.ProcID, 0)
	visited := make([]int, g.procs)
	var p, i int
	for p = 0; p < g.procs; p++ {
		// Reset visitation state for an independent traversal per start.
		for i = range visited {
			visited[i] = white
		}
		if g.reaches(core.ProcID(p), core.ProcID(p), visited) {
			out = append(out, core.ProcID(p))
		}
	}

	return out
}

// reaches walks depth-first from cur looking for start. The initial call has
// cur == start with start unmarked, so only a genuine closed path of length
// ≥ 1 reports true.
func (g *Graph) reaches(start, cur core.ProcID, visited []int) bool {
	for _, nbr := range g.adj[cur] {
		if nbr == start {
			return true // closed the loop back to the candidate
		}
		if visited[nbr] == gray {
			continue
		}
		visited[nbr] = gray
		if g.reaches(start, nbr, visited) {
			return true
		}
	}

	return false
}
