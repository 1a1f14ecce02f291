// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/counterprogram/program"
)

const (
	InstructionIncrement = "increment"
	InstructionDecrement = "decrement"
	InstructionUpdate    = "update"
	InstructionReset     = "reset"
)

// newInstruction maps a human readable instruction name to its variant.
// [value] is ignored for reset.
func newInstruction(name string, value uint32) (program.Instruction, error) {
	switch strings.ToLower(name) {
	case InstructionIncrement:
		return &program.Increment{Amount: value}, nil
	case InstructionDecrement:
		return &program.Decrement{Amount: value}, nil
	case InstructionUpdate:
		return &program.Update{Value: value}, nil
	case InstructionReset:
		return &program.Reset{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidInstruction, name)
	}
}

func newCreateCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a counter set to zero",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := &Response{}
			if err := c.host.Create(cmd.Context(), args[0]); err != nil {
				return resp.Err(cmd.OutOrStdout(), err)
			}
			resp.Result = &Result{Name: args[0], Msg: "created"}
			resp.Print(cmd.OutOrStdout())
			return nil
		},
	}
}

func newDeleteCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := &Response{}
			if err := c.host.Delete(cmd.Context(), args[0]); err != nil {
				return resp.Err(cmd.OutOrStdout(), err)
			}
			resp.Result = &Result{Name: args[0], Msg: "deleted"}
			resp.Print(cmd.OutOrStdout())
			return nil
		},
	}
}

func newGetCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "get [name]",
		Short: "Print the value of a counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := &Response{}
			v, err := c.host.Get(cmd.Context(), args[0])
			if err != nil {
				return resp.Err(cmd.OutOrStdout(), err)
			}
			resp.Result = &Result{Name: args[0], Counter: v}
			resp.Print(cmd.OutOrStdout())
			return nil
		},
	}
}

func newExecCmd(c *counterCLI) *cobra.Command {
	return &cobra.Command{
		Use:   "exec [name] [increment|decrement|update|reset] [value]",
		Short: "Execute one instruction against a counter",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := &Response{}
			ins, err := parseExecArgs(args[1:])
			if err != nil {
				return resp.Err(cmd.OutOrStdout(), err)
			}
			data, err := program.MarshalInstruction(ins)
			if err != nil {
				return resp.Err(cmd.OutOrStdout(), err)
			}
			v, err := c.host.Execute(cmd.Context(), args[0], data)
			if err != nil {
				return resp.Err(cmd.OutOrStdout(), err)
			}
			resp.Result = &Result{Name: args[0], Counter: v}
			resp.Print(cmd.OutOrStdout())
			return nil
		},
	}
}

func parseExecArgs(args []string) (program.Instruction, error) {
	name := strings.ToLower(args[0])
	if _, err := newInstruction(name, 0); err != nil {
		return nil, err
	}
	if name == InstructionReset {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: reset takes no value", ErrInvalidArgs)
		}
		return newInstruction(name, 0)
	}
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: %s requires a value", ErrInvalidArgs, name)
	}
	value, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return newInstruction(name, uint32(value))
}
