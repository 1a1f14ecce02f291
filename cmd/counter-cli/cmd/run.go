// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/counterprogram/host"
	"github.com/ava-labs/counterprogram/program"
)

func newRunCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "run [path]",
		Short: "Run a counter plan (use - to read it from stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				b   []byte
				err error
			)
			if args[0] == "-" {
				b, err = io.ReadAll(cmd.InOrStdin())
			} else {
				b, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}
			plan, err := unmarshalPlan(b)
			if err != nil {
				return err
			}
			if err := plan.Verify(); err != nil {
				return err
			}
			return runPlan(cmd.Context(), c.log, c.host, plan, cmd.OutOrStdout())
		},
	}
}

// runPlan executes a verified plan, printing one response per step. It stops
// at the first failed step or assertion.
func runPlan(ctx context.Context, log logging.Logger, h *host.Host, plan *Plan, w io.Writer) error {
	log.Info("running plan",
		zap.String("name", plan.Name),
		zap.String("counter", plan.Counter),
		zap.Int("steps", len(plan.Steps)),
	)
	if err := h.Create(ctx, plan.Counter); err != nil && !errors.Is(err, host.ErrCounterExists) {
		return err
	}

	for i, step := range plan.Steps {
		resp := &Response{ID: i}
		ins, err := newInstruction(step.Instruction, step.Value)
		if err != nil {
			return resp.Err(w, err)
		}
		data, err := program.MarshalInstruction(ins)
		if err != nil {
			return resp.Err(w, err)
		}
		v, err := h.Execute(ctx, plan.Counter, data)
		if err != nil {
			return resp.Err(w, fmt.Errorf("step %d: %w", i, err))
		}
		resp.Result = &Result{Name: plan.Counter, Counter: v, Msg: step.Description}

		if step.Require != nil {
			ok, err := step.Require.Operator.Compare(v, step.Require.Value)
			if err != nil {
				return resp.Err(w, err)
			}
			if !ok {
				return resp.Err(w, fmt.Errorf("%w: step %d: %d %s %d",
					ErrResultAssertion, i, v, step.Require.Operator, step.Require.Value))
			}
		}
		log.Debug("plan step",
			zap.Int("step", i),
			zap.String("instruction", step.Instruction),
			zap.Uint32("counter", v),
		)
		resp.Print(w)
	}
	return nil
}
