// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidArgs        = errors.New("invalid args")
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrInvalidOperator    = errors.New("invalid operator")
	ErrInvalidPlan        = errors.New("invalid plan")
	ErrInvalidStep        = errors.New("invalid step")
	ErrResultAssertion    = errors.New("result assertion failed")
)
