// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"fmt"

	"github.com/ava-labs/counterprogram/codec"
	"github.com/ava-labs/counterprogram/consts"
)

var (
	_ Instruction = (*Increment)(nil)
	_ Instruction = (*Decrement)(nil)
	_ Instruction = (*Update)(nil)
	_ Instruction = (*Reset)(nil)
)

// Instruction is one of [Increment], [Decrement], [Update] or [Reset]. The
// set is closed: no type outside this package can implement it.
type Instruction interface {
	GetTypeID() uint8

	instruction()
}

type Increment struct {
	// Amount is added to the counter, saturating at MaxUint32.
	Amount uint32 `json:"amount"`
}

func (*Increment) GetTypeID() uint8 {
	return IncrementID
}

func (*Increment) instruction() {}

type Decrement struct {
	// Amount is subtracted from the counter, clamping at zero.
	Amount uint32 `json:"amount"`
}

func (*Decrement) GetTypeID() uint8 {
	return DecrementID
}

func (*Decrement) instruction() {}

type Update struct {
	// Value replaces the counter.
	Value uint32 `json:"value"`
}

func (*Update) GetTypeID() uint8 {
	return UpdateID
}

func (*Update) instruction() {}

type Reset struct{}

func (*Reset) GetTypeID() uint8 {
	return ResetID
}

func (*Reset) instruction() {}

// UnmarshalInstruction parses instruction data: a one byte discriminant
// followed, for every variant except [Reset], by a little-endian uint32.
// Bytes after the payload are ignored.
func UnmarshalInstruction(b []byte) (Instruction, error) {
	if len(b) == 0 {
		return nil, ErrEmpty
	}
	tag, payload := b[0], b[consts.ByteLen:]
	switch tag {
	case IncrementID:
		return unmarshalArgs[Increment](tag, payload)
	case DecrementID:
		return unmarshalArgs[Decrement](tag, payload)
	case UpdateID:
		return unmarshalArgs[Update](tag, payload)
	case ResetID:
		return &Reset{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, tag)
	}
}

func unmarshalArgs[T any, PT interface {
	*T
	Instruction
}](tag uint8, payload []byte) (Instruction, error) {
	args, err := codec.UnmarshalPrefix[T](payload, argsLen)
	if err != nil {
		return nil, fmt.Errorf("%w: tag=%d: %w", ErrTruncatedPayload, tag, err)
	}
	return PT(args), nil
}

// MarshalInstruction produces the canonical instruction data for [ins].
func MarshalInstruction(ins Instruction) ([]byte, error) {
	var (
		args []byte
		err  error
	)
	switch i := ins.(type) {
	case *Increment:
		args, err = marshalArgs(i)
	case *Decrement:
		args, err = marshalArgs(i)
	case *Update:
		args, err = marshalArgs(i)
	case *Reset:
		if i == nil {
			return nil, ErrNilInstruction
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownTag, ins)
	}
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, consts.ByteLen+len(args))
	b = append(b, ins.GetTypeID())
	return append(b, args...), nil
}

func marshalArgs[T any](args *T) ([]byte, error) {
	if args == nil {
		return nil, ErrNilInstruction
	}
	return codec.Marshal(*args)
}
