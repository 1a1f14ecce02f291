// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"fmt"

	"github.com/ava-labs/counterprogram/consts"
)

// Apply returns the counter that results from executing [ins] against [c].
// It never fails: overflow saturates at MaxUint32 and underflow clamps to
// zero.
func Apply(c Counter, ins Instruction) Counter {
	switch i := ins.(type) {
	case *Increment:
		sum := c.Counter + i.Amount
		if sum < c.Counter {
			sum = consts.MaxUint32
		}
		return Counter{Counter: sum}
	case *Decrement:
		if i.Amount > c.Counter {
			return Counter{}
		}
		return Counter{Counter: c.Counter - i.Amount}
	case *Update:
		return Counter{Counter: i.Value}
	case *Reset:
		return Counter{}
	default:
		// Instruction is sealed, so this is only reachable with a nil value.
		panic(fmt.Sprintf("unexpected instruction %T", ins))
	}
}
