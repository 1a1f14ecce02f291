// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnmarshalInstruction(t *testing.T) {
	tests := map[string]struct {
		data        []byte
		expected    Instruction
		expectedErr error
	}{
		"Empty": {
			data:        []byte{},
			expectedErr: ErrEmpty,
		},
		"Nil": {
			data:        nil,
			expectedErr: ErrEmpty,
		},
		"UnknownTag": {
			data:        []byte{4},
			expectedErr: ErrUnknownTag,
		},
		"UnknownTagWithPayload": {
			data:        []byte{255, 1, 0, 0, 0},
			expectedErr: ErrUnknownTag,
		},
		"IncrementTruncated": {
			data:        []byte{0, 1, 2},
			expectedErr: ErrTruncatedPayload,
		},
		"DecrementNoPayload": {
			data:        []byte{1},
			expectedErr: ErrTruncatedPayload,
		},
		"UpdateThreeBytes": {
			data:        []byte{2, 1, 2, 3},
			expectedErr: ErrTruncatedPayload,
		},
		"Increment": {
			data:     []byte{0, 10, 0, 0, 0},
			expected: &Increment{Amount: 10},
		},
		"DecrementLittleEndian": {
			data:     []byte{1, 0x04, 0x03, 0x02, 0x01},
			expected: &Decrement{Amount: 0x01020304},
		},
		"UpdateTrailingBytesIgnored": {
			data:     []byte{2, 33, 0, 0, 0, 9, 9, 9},
			expected: &Update{Value: 33},
		},
		"Reset": {
			data:     []byte{3},
			expected: &Reset{},
		},
		"ResetPayloadIgnored": {
			data:     []byte{3, 1},
			expected: &Reset{},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			ins, err := UnmarshalInstruction(tt.data)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expected, ins)
		})
	}
}

func TestMarshalInstruction(t *testing.T) {
	tests := map[string]struct {
		ins      Instruction
		expected []byte
	}{
		"Increment": {
			ins:      &Increment{Amount: 10},
			expected: []byte{0, 10, 0, 0, 0},
		},
		"Decrement": {
			ins:      &Decrement{Amount: 0x01020304},
			expected: []byte{1, 0x04, 0x03, 0x02, 0x01},
		},
		"Update": {
			ins:      &Update{Value: ^uint32(0)},
			expected: []byte{2, 255, 255, 255, 255},
		},
		"Reset": {
			ins:      &Reset{},
			expected: []byte{3},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			b, err := MarshalInstruction(tt.ins)
			require.NoError(err)
			require.Equal(tt.expected, b)

			ins, err := UnmarshalInstruction(b)
			require.NoError(err)
			require.Equal(tt.ins, ins)
		})
	}
}

func TestMarshalInstructionNil(t *testing.T) {
	tests := map[string]struct {
		ins         Instruction
		expectedErr error
	}{
		"NilInterface": {
			ins:         nil,
			expectedErr: ErrUnknownTag,
		},
		"NilIncrement": {
			ins:         (*Increment)(nil),
			expectedErr: ErrNilInstruction,
		},
		"NilDecrement": {
			ins:         (*Decrement)(nil),
			expectedErr: ErrNilInstruction,
		},
		"NilUpdate": {
			ins:         (*Update)(nil),
			expectedErr: ErrNilInstruction,
		},
		"NilReset": {
			ins:         (*Reset)(nil),
			expectedErr: ErrNilInstruction,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			var (
				b   []byte
				err error
			)
			require.NotPanics(func() {
				b, err = MarshalInstruction(tt.ins)
			})
			require.ErrorIs(err, tt.expectedErr)
			require.Nil(b)
		})
	}
}
