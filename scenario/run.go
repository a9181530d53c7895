// SPDX-License-Identifier: MIT
// Package scenario: deterministic replay against a toolkit.Toolkit.

package scenario

import (
	"fmt"

	"github.com/katalvlaran/banker/arbiter"
	"github.com/katalvlaran/banker/core"
	"github.com/katalvlaran/banker/recovery"
	"github.com/katalvlaran/banker/toolkit"
)

// StepResult records the outcome of one replayed step. Exactly one of the
// outcome fields is populated, matching the step's action.
type StepResult struct {
	// Step is the scripted operation that produced this result.
	Step Step

	// Decision is the arbiter outcome of a request step.
	Decision *arbiter.Decision

	// Deadlocked is the detected circular-wait set of a detect step.
	Deadlocked []core.ProcID

	// Report is the outcome of a recover step.
	Report *recovery.Report
}

// Trace is the full outcome of a scenario run.
type Trace struct {
	// Name echoes the scenario name.
	Name string

	// Results holds one entry per executed step, in script order.
	Results []StepResult

	// FinalAvailable and FinalAllocations capture the system after the last
	// step, for golden-file style assertions.
	FinalAvailable   []int64
	FinalAllocations [][]int64
}

// Run replays sc from a fresh system. Denied requests are recorded and the
// run continues; configuration errors and invalid releases abort with the
// underlying sentinel (a script that over-releases is a broken fixture, not
// a deniable outcome).
//
// Complexity: O(len(steps) · P²·R).
func Run(sc *Scenario) (*Trace, error) {
	// 1. Re-validate: Run must hold for hand-built scenarios too.
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	// 2. Build the system; core sentinels surface value-level problems.
	maxima := make([][]int64, len(sc.Processes))
	for i := range sc.Processes {
		maxima[i] = sc.Processes[i].Maximum
	}
	tk, err := toolkit.New(sc.Capacities, maxima)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	// 3. Apply the steps in order.
	trace := &Trace{Name: sc.Name, Results: make([]StepResult, 0, len(sc.Steps))}
	var res StepResult
	for i, st := range sc.Steps {
		res = StepResult{Step: st}
		switch st.Action {
		case ActionRequest:
			res.Decision, err = tk.Request(core.ProcID(st.Process), st.Amounts)
		case ActionRelease:
			err = tk.Release(core.ProcID(st.Process), st.Amounts)
		case ActionDetect:
			res.Deadlocked, err = tk.DetectDeadlock()
		case ActionRecover:
			res.Report, err = tk.RecoverFromDeadlock()
		}
		if err != nil {
			return nil, fmt.Errorf("scenario %q step %d (%s): %w", sc.Name, i, st.Action, err)
		}
		trace.Results = append(trace.Results, res)
	}

	// 4. Capture the final tables.
	trace.FinalAvailable = tk.Available()
	trace.FinalAllocations = tk.AllocationTable()

	return trace, nil
}
