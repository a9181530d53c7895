// SPDX-License-Identifier: MIT
// Package scenario: YAML schema, loading, and strict validation.

package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Action names one scripted operation.
type Action string

// Supported step actions.
const (
	ActionRequest Action = "request"
	ActionRelease Action = "release"
	ActionDetect  Action = "detect"
	ActionRecover Action = "recover"
)

// Sentinel errors for scenario loading and validation.
var (
	// ErrNoCapacities indicates an empty or missing capacity vector.
	ErrNoCapacities = errors.New("scenario: no capacities")

	// ErrNoProcesses indicates an empty or missing process list.
	ErrNoProcesses = errors.New("scenario: no processes")

	// ErrShapeMismatch indicates a maximum row or amounts vector whose
	// length differs from the capacity vector.
	ErrShapeMismatch = errors.New("scenario: vector shape mismatch")

	// ErrUnknownAction indicates a step action outside the supported set.
	ErrUnknownAction = errors.New("scenario: unknown action")

	// ErrProcessOutOfRange indicates a step naming a process outside 0..P-1.
	ErrProcessOutOfRange = errors.New("scenario: process out of range")
)

// Process declares one process of the scripted system.
type Process struct {
	// Maximum is the fixed maximum-claim row, one entry per resource type.
	Maximum []int64 `yaml:"maximum"`
}

// Step is one scripted operation. Process and Amounts are meaningful for
// request/release only and ignored for detect/recover.
type Step struct {
	Action  Action  `yaml:"action"`
	Process int     `yaml:"process,omitempty"`
	Amounts []int64 `yaml:"amounts,omitempty"`
}

// Scenario is a complete scripted session.
type Scenario struct {
	Name       string    `yaml:"name"`
	Capacities []int64   `yaml:"capacities"`
	Processes  []Process `yaml:"processes"`
	Steps      []Step    `yaml:"steps,omitempty"`
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Load reads a full YAML document from r and parses it.
func Load(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scenario: read: %w", err)
	}

	return Parse(data)
}

// LoadFile reads and parses the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks the structural integrity of the document: shapes, action
// names, and process ranges. Value-level constraints (negative units, claims
// above capacity) surface later through the core sentinels when Run builds
// the system.
func (sc *Scenario) Validate() error {
	// 1. System shape.
	if len(sc.Capacities) == 0 {
		return ErrNoCapacities
	}
	if len(sc.Processes) == 0 {
		return ErrNoProcesses
	}
	res := len(sc.Capacities)
	var i int
	for i = range sc.Processes {
		if len(sc.Processes[i].Maximum) != res {
			return fmt.Errorf("process %d maximum: %w", i, ErrShapeMismatch)
		}
	}

	// 2. Step integrity.
	var st Step
	for i, st = range sc.Steps {
		switch st.Action {
		case ActionRequest, ActionRelease:
			if st.Process < 0 || st.Process >= len(sc.Processes) {
				return fmt.Errorf("step %d: process %d: %w", i, st.Process, ErrProcessOutOfRange)
			}
			if len(st.Amounts) != res {
				return fmt.Errorf("step %d amounts: %w", i, ErrShapeMismatch)
			}
		case ActionDetect, ActionRecover:
			// No operands.
		default:
			return fmt.Errorf("step %d: %q: %w", i, st.Action, ErrUnknownAction)
		}
	}

	return nil
}
