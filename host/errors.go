// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import "errors"

var (
	ErrCounterExists   = errors.New("counter already exists")
	ErrCounterNotFound = errors.New("counter not found")
	ErrInvalidName     = errors.New("invalid counter name")
)
