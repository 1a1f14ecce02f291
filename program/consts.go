// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import "github.com/ava-labs/counterprogram/consts"

// Instruction discriminants. The first byte of instruction data selects one.
const (
	IncrementID uint8 = 0
	DecrementID uint8 = 1
	UpdateID    uint8 = 2
	ResetID     uint8 = 3
)

const (
	// CounterLen is the size of an encoded [Counter].
	CounterLen = consts.Uint32Len

	argsLen = consts.Uint32Len
)
