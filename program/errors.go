// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import "errors"

var (
	ErrEmpty            = errors.New("empty instruction data")
	ErrUnknownTag       = errors.New("unknown instruction tag")
	ErrTruncatedPayload = errors.New("truncated instruction payload")
	ErrTruncatedState   = errors.New("truncated counter state")
	ErrNilInstruction   = errors.New("nil instruction")
)
