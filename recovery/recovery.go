// SPDX-License-Identifier: MIT
// Package recovery: single-victim deadlock recovery.

package recovery

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/banker/core"
	"github.com/katalvlaran/banker/waitfor"
)

// ErrNilState indicates Recover was called with a nil *core.State.
var ErrNilState = errors.New("recovery: state is nil")

// NoVictim is the Victim value of a Report when no process was terminated.
const NoVictim core.ProcID = -1

// Report describes the outcome of one recovery attempt.
type Report struct {
	// Recovered reports whether a victim was terminated.
	Recovered bool

	// Victim is the terminated process, or NoVictim when Recovered is false.
	Victim core.ProcID

	// Deadlocked is the full circular-wait set found before termination,
	// ascending; empty when no deadlock existed.
	Deadlocked []core.ProcID

	// Freed is the victim's reclaimed allocation row; nil when no victim.
	Freed []int64

	// Message is a human-readable summary for display layers.
	Message string
}

// Recover detects a circular wait on a fresh snapshot of st and, if one
// exists, terminates the lowest-identifier member and reclaims its
// resources.
//
// Steps:
//  1. Detect on a snapshot (pure).
//  2. Empty set → Report{Recovered:false, Victim:NoVictim}.
//  3. Otherwise victim = detected[0] (ascending order makes this the lowest
//     identifier), reclaim its row, report.
//
// Complexity: O(P²·R) (detection dominates).
func Recover(st *core.State) (*Report, error) {
	// 1. Validate input.
	if st == nil {
		return nil, ErrNilState
	}

	// 2. Pure detection pass.
	deadlocked, err := waitfor.Detect(st.Snapshot())
	if err != nil {
		return nil, err
	}
	if len(deadlocked) == 0 {
		return &Report{
			Victim:     NoVictim,
			Deadlocked: deadlocked,
			Message:    "no deadlock detected",
		}, nil
	}

	// 3. Deterministic tie-break: lowest identifier in the detected set.
	victim := deadlocked[0]
	freed, err := st.Reclaim(victim)
	if err != nil {
		return nil, fmt.Errorf("reclaim victim %d: %w", victim, err)
	}

	return &Report{
		Recovered:  true,
		Victim:     victim,
		Deadlocked: deadlocked,
		Freed:      freed,
		Message:    fmt.Sprintf("terminated process %d to break circular wait", victim),
	}, nil
}
