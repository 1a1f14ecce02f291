// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
)

// logger routes pebble's printf-style logging through [logging.Logger] so
// it honors the configured level and writers.
type logger struct {
	log logging.Logger
}

func (l logger) Infof(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

// Fatalf must not return: pebble assumes the process stops.
func (l logger) Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log.Fatal(msg)
	panic(msg)
}
