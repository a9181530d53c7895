// SPDX-License-Identifier: MIT
// Package arbiter: request admission and release.

package arbiter

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/banker/core"
	"github.com/katalvlaran/banker/safety"
)

// Arbiter admits resource requests against a single core.State.
// An internal mutex makes each Request's check-then-commit sequence atomic
// with respect to every other Request/Release on the same Arbiter.
type Arbiter struct {
	mu sync.Mutex  // serializes check-then-commit sequences
	st *core.State // the live allocation state
}

// New returns an Arbiter bound to st.
func New(st *core.State) (*Arbiter, error) {
	if st == nil {
		return nil, ErrNilState
	}

	return &Arbiter{st: st}, nil
}

// Request validates and, if safe, commits a request of amounts[r] units per
// resource r for process p.
//
// Validation order (first failure names the denial reason):
//  1. Unknown process / terminated process / wrong vector arity
//     → Denied(UnknownEntity).
//  2. amounts[r] > need(p)[r] for some r → Denied(ExceedsMaximumClaim).
//  3. amounts[r] > available[r] for some r → Denied(InsufficientResources).
//  4. Tentative grant on a scratch snapshot fails the safety test
//     → Denied(UnsafeState).
//
// Any denial leaves the live state byte-for-byte unchanged. A negative
// amount is a caller bug and returns ErrNegativeUnits instead of a Decision.
//
// Complexity: O(P²·R), dominated by the safety evaluation.
func (a *Arbiter) Request(p core.ProcID, amounts []int64) (*Decision, error) {
	// 0. Reject signed requests before touching any state.
	for _, v := range amounts {
		if v < 0 {
			return nil, fmt.Errorf("request for process %d: %w", p, ErrNegativeUnits)
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// 1. Entity validation: process in range, alive, vector arity matches.
	if status, err := a.st.Status(p); err != nil || status == core.StatusTerminated {
		return &Decision{Reason: ReasonUnknownEntity}, nil
	}
	if len(amounts) != a.st.NumResources() {
		return &Decision{Reason: ReasonUnknownEntity}, nil
	}

	// 2. Claim bound: the request must fit within the remaining need.
	need, err := a.st.Need(p)
	if err != nil {
		return nil, err
	}
	var r int
	for r = range amounts {
		if amounts[r] > need[r] {
			return &Decision{Reason: ReasonExceedsMaximumClaim}, nil
		}
	}

	// 3. Availability bound: otherwise the process must wait.
	avail := a.st.Available()
	for r = range amounts {
		if amounts[r] > avail[r] {
			return &Decision{Reason: ReasonInsufficientResources}, nil
		}
	}

	// 4. Speculative grant on a scratch snapshot, then the safety test.
	scratch := a.st.Snapshot()
	if err = scratch.Apply(p, amounts); err != nil {
		// Arithmetic was pre-validated; a failure here is state corruption.
		return nil, fmt.Errorf("scratch apply: %w", err)
	}
	verdict, err := safety.Evaluate(scratch)
	if err != nil {
		return nil, err
	}
	if !verdict.Safe {
		// Discard the scratch copy; the live state was never touched.
		return &Decision{Reason: ReasonUnsafeState}, nil
	}

	// 5. Safe: commit the delta to the live state.
	if err = a.st.Commit(p, amounts); err != nil {
		return nil, fmt.Errorf("commit after safety pass: %w", err)
	}

	return &Decision{Granted: true, Reason: ReasonGranted, Sequence: verdict.Sequence}, nil
}

// RequestOne is a single-resource convenience over Request: it asks for
// amount units of resource r only.
func (a *Arbiter) RequestOne(p core.ProcID, r core.ResourceID, amount int64) (*Decision, error) {
	if r < 0 || int(r) >= a.st.NumResources() {
		return &Decision{Reason: ReasonUnknownEntity}, nil
	}
	amounts := make([]int64, a.st.NumResources())
	amounts[r] = amount

	return a.Request(p, amounts)
}

// Release returns amounts[r] units per resource r from process p back to the
// pool. Releasing more than the current allocation in any component fails
// with ErrInvalidRelease and changes nothing.
//
// Complexity: O(P·R) (Commit's defensive check).
func (a *Arbiter) Release(p core.ProcID, amounts []int64) error {
	// Reject signed vectors up front.
	for _, v := range amounts {
		if v < 0 {
			return fmt.Errorf("release for process %d: %w", p, ErrNegativeUnits)
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	held, err := a.st.Allocated(p)
	if err != nil {
		return err
	}
	if len(amounts) != len(held) {
		return fmt.Errorf("release length %d, want %d: %w", len(amounts), len(held), core.ErrShapeMismatch)
	}
	delta := make([]int64, len(amounts))
	for r := range amounts {
		if amounts[r] > held[r] {
			return fmt.Errorf("process %d resource %d: %w", p, r, ErrInvalidRelease)
		}
		delta[r] = -amounts[r]
	}

	return a.st.Commit(p, delta)
}
