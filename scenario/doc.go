// SPDX-License-Identifier: MIT

// Package scenario loads and replays scripted allocation sessions from YAML.
// A scenario fixes the system shape (capacities and per-process maximum
// claims) and a step list of requests, releases, detection passes, and
// recovery attempts. Running a scenario is fully deterministic: the same
// document always produces the same trace, which makes scenario files the
// replayable substitute for an interactive driver.
//
// Document format:
//
//	name: textbook
//	capacities: [10, 5, 7]
//	processes:
//	  - maximum: [7, 5, 3]
//	  - maximum: [3, 2, 2]
//	steps:
//	  - action: request
//	    process: 1
//	    amounts: [1, 0, 2]
//	  - action: detect
//	  - action: recover
//	  - action: release
//	    process: 1
//	    amounts: [1, 0, 2]
//
// Load/Parse validate the document strictly before anything runs; Run
// builds a toolkit.Toolkit and applies the steps in order, recording one
// StepResult per step. Denied requests are recorded outcomes, not errors —
// a scenario keeps running after a denial, exactly like a live system.
//
// Errors:
//
//	ErrNoCapacities       - empty or missing capacity vector.
//	ErrNoProcesses        - empty or missing process list.
//	ErrShapeMismatch      - a maximum row or amounts vector has wrong arity.
//	ErrUnknownAction      - a step action outside request/release/detect/recover.
//	ErrProcessOutOfRange  - a step names a process outside 0..P-1.
package scenario
