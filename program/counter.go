// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"fmt"

	"github.com/ava-labs/counterprogram/codec"
)

// Counter is the persisted record. It is encoded as a single little-endian
// uint32 and occupies [CounterLen] bytes of its region.
type Counter struct {
	Counter uint32 `json:"counter"`
}

// UnmarshalCounter reads a [Counter] from the first [CounterLen] bytes of [b].
func UnmarshalCounter(b []byte) (*Counter, error) {
	c, err := codec.UnmarshalPrefix[Counter](b, CounterLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedState, err)
	}
	return c, nil
}

func (c *Counter) Marshal() ([]byte, error) {
	return codec.Marshal(*c)
}
