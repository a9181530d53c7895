// SPDX-License-Identifier: MIT
// Package toolkit: the mutex-guarded facade over state, arbiter, detection
// and recovery.

package toolkit

import (
	"sync"

	"github.com/katalvlaran/banker/arbiter"
	"github.com/katalvlaran/banker/core"
	"github.com/katalvlaran/banker/recovery"
	"github.com/katalvlaran/banker/waitfor"
)

// Toolkit owns an allocation system end to end. All mutating operations —
// Request, RequestResource, Release, RecoverFromDeadlock — run under one
// exclusive mutex, making each of them atomic with respect to the others.
type Toolkit struct {
	mu  sync.Mutex
	st  *core.State
	arb *arbiter.Arbiter
}

// New builds a Toolkit for a system with the given per-resource capacities
// and per-process maximum-claim rows. Validation errors are core sentinels
// (ErrNoResources, ErrNegativeUnits, ErrMaxExceedsCapacity, ...).
func New(capacities []int64, maxima [][]int64) (*Toolkit, error) {
	st, err := core.NewState(capacities, maxima)
	if err != nil {
		return nil, err
	}
	arb, err := arbiter.New(st)
	if err != nil {
		return nil, err
	}

	return &Toolkit{st: st, arb: arb}, nil
}

// Request submits a multi-resource request for process p.
// See arbiter.Arbiter.Request for the validation order and denial reasons.
func (t *Toolkit) Request(p core.ProcID, amounts []int64) (*arbiter.Decision, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.arb.Request(p, amounts)
}

// RequestResource is the single-resource convenience surface: it requests
// amount units of resource r for process p and reports (granted, reason).
func (t *Toolkit) RequestResource(p core.ProcID, r core.ResourceID, amount int64) (bool, arbiter.Reason, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	dec, err := t.arb.RequestOne(p, r, amount)
	if err != nil {
		return false, arbiter.ReasonUnknownEntity, err
	}

	return dec.Granted, dec.Reason, nil
}

// Release hands amounts back to the pool for process p.
func (t *Toolkit) Release(p core.ProcID, amounts []int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.arb.Release(p, amounts)
}

// DetectDeadlock reports the current circular-wait set, ascending.
// Read-only; safe to call at any time.
func (t *Toolkit) DetectDeadlock() ([]core.ProcID, error) {
	return waitfor.Detect(t.st.Snapshot())
}

// RecoverFromDeadlock runs one single-victim recovery step. The
// detect-then-reclaim sequence runs under the facade mutex, so it cannot
// interleave with a request's check-then-commit.
func (t *Toolkit) RecoverFromDeadlock() (*recovery.Report, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return recovery.Recover(t.st)
}

// Capacities returns a copy of the fixed capacity vector.
func (t *Toolkit) Capacities() []int64 { return t.st.Capacities() }

// Available returns the derived availability vector.
func (t *Toolkit) Available() []int64 { return t.st.Available() }

// AllocationTable returns a copy of the current allocation matrix.
func (t *Toolkit) AllocationTable() [][]int64 { return t.st.AllocationTable() }

// MaximumTable returns a copy of the fixed maximum-claim matrix.
func (t *Toolkit) MaximumTable() [][]int64 { return t.st.MaximumTable() }

// NeedTable returns the derived need matrix (maximum − allocation).
func (t *Toolkit) NeedTable() [][]int64 { return t.st.NeedTable() }

// ProcessStatus reports the lifecycle status of process p.
func (t *Toolkit) ProcessStatus(p core.ProcID) (core.Status, error) {
	return t.st.Status(p)
}

// NumProcesses returns the fixed process count.
func (t *Toolkit) NumProcesses() int { return t.st.NumProcesses() }

// NumResources returns the fixed resource-type count.
func (t *Toolkit) NumResources() int { return t.st.NumResources() }
