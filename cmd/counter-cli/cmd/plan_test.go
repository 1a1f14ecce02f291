// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/counterprogram/host"
)

const tracePlan = `
name: trace
description: increment, decrement past zero, overwrite, reset
counter: demo
steps:
  - description: add ten
    instruction: increment
    value: 10
    require:
      operator: "=="
      value: 10
  - instruction: decrement
    value: 3
    require: {operator: "==", value: 7}
  - instruction: decrement
    value: 100
    require: {operator: "==", value: 0}
  - instruction: update
    value: 33
    require: {operator: ">=", value: 33}
  - instruction: reset
    require: {operator: "==", value: 0}
`

func TestUnmarshalPlan(t *testing.T) {
	require := require.New(t)

	plan, err := unmarshalPlan([]byte(tracePlan))
	require.NoError(err)
	require.Equal("demo", plan.Counter)
	require.Len(plan.Steps, 5)
	require.Equal(NumericEq, plan.Steps[0].Require.Operator)
	require.Equal(uint32(10), plan.Steps[0].Value)
	require.NoError(plan.Verify())

	_, err = unmarshalPlan([]byte("counter: demo\nunknown: 1\n"))
	require.ErrorIs(err, ErrInvalidPlan)
}

func TestPlanVerify(t *testing.T) {
	tests := map[string]struct {
		plan        *Plan
		expectedErr error
	}{
		"NoCounter": {
			plan:        &Plan{Steps: []Step{{Instruction: "reset"}}},
			expectedErr: ErrInvalidPlan,
		},
		"NoSteps": {
			plan:        &Plan{Counter: "demo"},
			expectedErr: ErrInvalidPlan,
		},
		"BadInstruction": {
			plan:        &Plan{Counter: "demo", Steps: []Step{{Instruction: "multiply"}}},
			expectedErr: ErrInvalidInstruction,
		},
		"BadOperator": {
			plan: &Plan{Counter: "demo", Steps: []Step{{
				Instruction: "reset",
				Require:     &Require{Operator: "~="},
			}}},
			expectedErr: ErrInvalidOperator,
		},
		"Valid": {
			plan: &Plan{Counter: "demo", Steps: []Step{{
				Instruction: "Increment",
				Value:       1,
				Require:     &Require{Operator: NumericGt, Value: 0},
			}}},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, tt.plan.Verify(), tt.expectedErr)
		})
	}
}

func TestOperatorCompare(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		op       Operator
		actual   uint32
		expected uint32
		ok       bool
	}{
		{NumericGt, 2, 1, true},
		{NumericGt, 1, 1, false},
		{NumericLt, 0, 1, true},
		{NumericGe, 1, 1, true},
		{NumericLe, 2, 1, false},
		{NumericEq, 7, 7, true},
		{NumericNe, 7, 7, false},
	}
	for _, tt := range tests {
		ok, err := tt.op.Compare(tt.actual, tt.expected)
		require.NoError(err)
		require.Equal(tt.ok, ok, "%d %s %d", tt.actual, tt.op, tt.expected)
	}
}

func TestRunPlan(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	h, _, err := host.New(logging.NoLog{}, memdb.New())
	require.NoError(err)
	plan, err := unmarshalPlan([]byte(tracePlan))
	require.NoError(err)

	var out bytes.Buffer
	require.NoError(runPlan(ctx, logging.NoLog{}, h, plan, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(lines, 5)
	expected := []uint32{10, 7, 0, 33, 0}
	for i, line := range lines {
		var resp Response
		require.NoError(json.Unmarshal([]byte(line), &resp))
		require.Equal(i, resp.ID)
		require.Empty(resp.Error)
		require.Equal(expected[i], resp.Result.Counter)
	}

	// running again reuses the existing counter
	out.Reset()
	require.NoError(runPlan(ctx, logging.NoLog{}, h, plan, &out))
}

func TestRunPlanAssertionFailure(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	h, _, err := host.New(logging.NoLog{}, memdb.New())
	require.NoError(err)
	plan := &Plan{
		Counter: "demo",
		Steps: []Step{
			{Instruction: "increment", Value: 5, Require: &Require{Operator: NumericEq, Value: 5}},
			{Instruction: "decrement", Value: 9, Require: &Require{Operator: NumericEq, Value: 1}},
			{Instruction: "reset"},
		},
	}
	require.NoError(plan.Verify())

	var out bytes.Buffer
	err = runPlan(ctx, logging.NoLog{}, h, plan, &out)
	require.ErrorIs(err, ErrResultAssertion)

	// the failing step still ran; the step after it did not
	v, err := h.Get(ctx, "demo")
	require.NoError(err)
	require.Zero(v)
	require.Contains(out.String(), `"error"`)
}
