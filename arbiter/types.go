// SPDX-License-Identifier: MIT
// Package arbiter: Decision/Reason outcome types and sentinel errors.

package arbiter

import (
	"errors"

	"github.com/katalvlaran/banker/core"
)

// Reason classifies the outcome of a request.
type Reason uint8

const (
	// ReasonGranted marks an admitted request.
	ReasonGranted Reason = iota

	// ReasonUnknownEntity marks a request naming an unknown process or
	// resource (including a process already terminated by recovery).
	ReasonUnknownEntity

	// ReasonExceedsMaximumClaim marks a request larger than the remaining
	// need of the process for some resource type.
	ReasonExceedsMaximumClaim

	// ReasonInsufficientResources marks a request for more units than are
	// currently available; the process must wait and retry.
	ReasonInsufficientResources

	// ReasonUnsafeState marks a request that passed the arithmetic checks
	// but whose admission would make the system unsafe.
	ReasonUnsafeState
)

// String returns the canonical reason label.
func (r Reason) String() string {
	switch r {
	case ReasonGranted:
		return "Granted"
	case ReasonUnknownEntity:
		return "UnknownEntity"
	case ReasonExceedsMaximumClaim:
		return "ExceedsMaximumClaim"
	case ReasonInsufficientResources:
		return "InsufficientResources"
	case ReasonUnsafeState:
		return "UnsafeState"
	default:
		return "Unknown"
	}
}

// Decision is the structured outcome of a Request call.
type Decision struct {
	// Granted reports whether the request was committed to the live state.
	Granted bool

	// Reason names the first failing check for denials, ReasonGranted
	// otherwise.
	Reason Reason

	// Sequence is the safe completion order discovered while admitting the
	// request; populated only when Granted (diagnostic, like safety.Result).
	Sequence []core.ProcID
}

// Sentinel errors for arbiter operations. These indicate caller bugs, never
// deniable outcomes.
var (
	// ErrNilState indicates construction with a nil *core.State.
	ErrNilState = errors.New("arbiter: state is nil")

	// ErrNegativeUnits indicates a negative entry in a request or release
	// vector. Partial or signed requests are not part of the contract.
	ErrNegativeUnits = errors.New("arbiter: negative units in vector")

	// ErrInvalidRelease indicates a release vector exceeding the caller's
	// current allocation in at least one component.
	ErrInvalidRelease = errors.New("arbiter: release exceeds allocation")
)
