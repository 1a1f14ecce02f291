// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

type Plan struct {
	// The name of the plan.
	Name string `yaml:"name" json:"name"`
	// A description of the plan.
	Description string `yaml:"description" json:"description"`
	// The counter every step runs against. Created if missing.
	Counter string `yaml:"counter" json:"counter"`
	// Steps to perform in order.
	Steps []Step `yaml:"steps" json:"steps"`
}

type Step struct {
	// Description of the step.
	Description string `yaml:"description" json:"description"`
	// One of increment, decrement, update or reset. (required)
	Instruction string `yaml:"instruction" json:"instruction"`
	// Amount or value carried by the instruction. Ignored for reset.
	Value uint32 `yaml:"value" json:"value"`
	// Optional assertion against the counter after the step.
	Require *Require `yaml:"require,omitempty" json:"require,omitempty"`
}

type Require struct {
	// The operator to use for the assertion.
	Operator Operator `yaml:"operator" json:"operator"`
	// The value to compare the counter against.
	Value uint32 `yaml:"value" json:"value"`
}

type Operator string

const (
	NumericGt Operator = ">"
	NumericLt Operator = "<"
	NumericGe Operator = ">="
	NumericLe Operator = "<="
	NumericEq Operator = "=="
	NumericNe Operator = "!="
)

func unmarshalPlan(b []byte) (*Plan, error) {
	var p Plan
	if err := yaml.UnmarshalStrict(b, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	return &p, nil
}

func (p *Plan) Verify() error {
	if p.Counter == "" {
		return fmt.Errorf("%w: no counter given", ErrInvalidPlan)
	}
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: no steps found", ErrInvalidPlan)
	}
	for i, step := range p.Steps {
		if _, err := newInstruction(step.Instruction, step.Value); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
		if step.Require == nil {
			continue
		}
		if _, err := step.Require.Operator.Compare(0, 0); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidStep, i, err)
		}
	}
	return nil
}

// Compare reports whether [actual] [o] [expected] holds.
func (o Operator) Compare(actual, expected uint32) (bool, error) {
	switch o {
	case NumericGt:
		return actual > expected, nil
	case NumericLt:
		return actual < expected, nil
	case NumericGe:
		return actual >= expected, nil
	case NumericLe:
		return actual <= expected, nil
	case NumericEq:
		return actual == expected, nil
	case NumericNe:
		return actual != expected, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidOperator, o)
	}
}
