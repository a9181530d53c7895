// Package banker models deadlock avoidance, detection, and recovery for a
// fixed set of processes contending for reusable resource types.
//
// 🚀 What is banker?
//
//	A deterministic, thread-safe toolkit built around one allocation state:
//		• Core state: capacities, maximum claims, allocations — derived
//		  availability and need, guarded by R/W locks
//		• Avoidance: the Banker's-Algorithm safety test, pure over snapshots
//		• Admission: check-then-commit request arbitration with structured
//		  denial reasons instead of errors
//		• Detection: wait-for graph construction + deterministic cycle search
//		• Recovery: single-victim reclamation with a lowest-identifier tie-break
//		• Scenarios: YAML-scripted sessions replayed into reproducible traces
//
// ✨ Why choose banker?
//
//   - Predictable – every scan, traversal, and tie-break is deterministic;
//     identical input always yields identical output
//   - Honest outcomes – denials are reported reasons, never control-flow
//     exceptions; invariant violations are surfaced, not swallowed
//   - Rock-solid guarantees – a denied request leaves state byte-for-byte
//     unchanged; check-then-commit runs as one atomic unit
//   - Pure Go – no cgo; presentation layers stay outside the module
//
// Everything is organized under focused subpackages:
//
//	core/     — State, Snapshot, identifiers, invariants & sentinel errors
//	safety/   — Banker's-Algorithm safety evaluation over snapshots
//	arbiter/  — request admission, release, denial reasons
//	waitfor/  — wait-for graph + circular-wait detection
//	recovery/ — single-victim recovery policy
//	toolkit/  — single-mutex facade tying the pieces together
//	scenario/ — YAML scenario loading and deterministic replay
//
// Quick ASCII example of the canonical circular wait:
//
//	P0 ──needs R1──▶ P1
//	▲                 │
//	└──needs R0───────┘
//
// Dive into the package docs and example tests for full walkthroughs, from
// the textbook five-process admission to scripted recovery sessions.
package banker
