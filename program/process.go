// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package program

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

// Process decodes the counter stored in [region], applies the instruction
// encoded in [data] and writes the result back into [region].
//
// [region] is only written once every decode has succeeded. On error it is
// left exactly as it was.
func Process(log logging.Logger, region []byte, data []byte) error {
	log.Debug("counter program entry point",
		zap.Int("regionLen", len(region)),
		zap.Int("dataLen", len(data)),
	)

	counter, err := UnmarshalCounter(region)
	if err != nil {
		return err
	}
	ins, err := UnmarshalInstruction(data)
	if err != nil {
		return err
	}

	switch i := ins.(type) {
	case *Increment:
		log.Debug("increment", zap.Uint32("amount", i.Amount))
	case *Decrement:
		log.Debug("decrement", zap.Uint32("amount", i.Amount))
	case *Update:
		log.Debug("update", zap.Uint32("value", i.Value))
	case *Reset:
		log.Debug("reset")
	}

	next := Apply(*counter, ins)
	b, err := next.Marshal()
	if err != nil {
		return err
	}
	copy(region, b)
	return nil
}
