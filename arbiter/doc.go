// SPDX-License-Identifier: MIT

// Package arbiter admits or rejects resource requests against a core.State
// using the check-then-commit discipline: validate, tentatively apply the
// request to a scratch snapshot, run the safety test on the scratch copy,
// and only then commit to the live state. A rejected request has zero
// observable side effect — the scratch copy is simply discarded.
//
// Denials are reported outcomes, not errors. A Decision carries a Reason:
//
//	ReasonUnknownEntity         - unknown process or resource identifier
//	                              (requests from terminated processes are
//	                              denied the same way: the entity is no
//	                              longer part of the live system).
//	ReasonExceedsMaximumClaim   - the request overshoots the declared claim.
//	ReasonInsufficientResources - not enough units available right now; the
//	                              process must wait. Not itself a deadlock.
//	ReasonUnsafeState           - granting would leave the system with no
//	                              guaranteed completion order.
//
// The checks run in exactly that order; the first failing check names the
// reason. Errors are reserved for caller bugs (nil state, negative amounts)
// and for the defensive core.ErrInvariantViolation, which indicates state
// corruption rather than a deniable request.
//
// An Arbiter serializes Request/Release through an internal mutex, so the
// snapshot → safety check → commit sequence is atomic with respect to other
// requests on the same Arbiter. Cross-component exclusion against recovery
// is provided by the toolkit package.
package arbiter
