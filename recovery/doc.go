// SPDX-License-Identifier: MIT

// Package recovery reclaims resources from a deadlocked process.
//
// The policy is deliberately minimal and deterministic: detect the circular
// wait, pick the lowest-identifier process in the detected set as the
// victim, reclaim its entire allocation (the units flow back into
// availability), and mark it Terminated. Exactly one victim per call — if
// the residual state is still deadlocked, callers invoke Recover again.
// Bounding the damage to one termination per call keeps the operation safe
// to retry and lets callers interleave their own policy between steps.
//
// Recover mutates the state through core.State.Reclaim only, which is
// atomic. Callers that run recovery concurrently with an arbiter should
// serialize the two through the toolkit facade.
package recovery
