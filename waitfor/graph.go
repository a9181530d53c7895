// SPDX-License-Identifier: MIT
// Package waitfor: wait-for graph construction.

package waitfor

import (
	"errors"

	"github.com/katalvlaran/banker/core"
)

// ErrNilSnapshot indicates a nil *core.Snapshot was passed in.
var ErrNilSnapshot = errors.New("waitfor: snapshot is nil")

// Graph is a directed wait-for relationship between processes.
// Adjacency lists are sorted ascending; the structure is immutable after
// BuildGraph returns.
type Graph struct {
	procs int
	adj   [][]core.ProcID // adj[p] = processes p waits for, ascending
}

// BuildGraph derives the wait-for graph from snap.
//
// Steps:
//  1. Collect each live process's unmet-need mask per resource.
//  2. Add edge p→q when p's unmet need intersects q's holdings (p ≠ q).
//     Scanning q in ascending order keeps adjacency sorted by construction.
//
// Complexity: O(P²·R) time, O(P²) memory worst case.
func BuildGraph(snap *core.Snapshot) (*Graph, error) {
	// 1. Validate input.
	if snap == nil {
		return nil, ErrNilSnapshot
	}

	procs, res := snap.NumProcesses(), snap.NumResources()
	g := &Graph{procs: procs, adj: make([][]core.ProcID, procs)}

	// 2. Cache rows once; Need/Allocated copy on every call.
	needs := make([][]int64, procs)
	holds := make([][]int64, procs)
	var p int
	for p = 0; p < procs; p++ {
		needs[p] = snap.Need(core.ProcID(p))
		holds[p] = snap.Allocated(core.ProcID(p))
	}

	// 3. Edge construction in ascending (p, q) order.
	var q, r int
	for p = 0; p < procs; p++ {
		if snap.Terminated(core.ProcID(p)) {
			continue // terminated processes wait for nothing
		}
		for q = 0; q < procs; q++ {
			if q == p {
				continue
			}
			for r = 0; r < res; r++ {
				if needs[p][r] > 0 && holds[q][r] > 0 {
					g.adj[p] = append(g.adj[p], core.ProcID(q))

					break // one shared resource suffices for the edge
				}
			}
		}
	}

	return g, nil
}

// NumProcesses returns the number of processes the graph was built over.
func (g *Graph) NumProcesses() int { return g.procs }

// WaitsFor returns a copy of the adjacency row of process p: the processes
// holding resources p has unmet need for. Out-of-range identifiers yield nil.
func (g *Graph) WaitsFor(p core.ProcID) []core.ProcID {
	if p < 0 || int(p) >= g.procs {
		return nil
	}

	return append([]core.ProcID(nil), g.adj[p]...)
}
