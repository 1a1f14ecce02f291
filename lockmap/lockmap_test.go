// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockmap

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLockmapReleasesEntries(t *testing.T) {
	require := require.New(t)

	l := New(4)
	l.Lock("a")
	l.RLock("b")
	l.RLock("b")
	require.Equal(2, l.Locks())

	l.Unlock("a")
	require.Equal(1, l.Locks())
	l.RUnlock("b")
	require.Equal(1, l.Locks())
	l.RUnlock("b")
	require.Zero(l.Locks())
}

func TestLockmapExclusive(t *testing.T) {
	require := require.New(t)

	var (
		l     = New(1)
		g     errgroup.Group
		total int
	)
	for i := 0; i < 64; i++ {
		g.Go(func() error {
			l.Lock("counter")
			total++
			l.Unlock("counter")
			return nil
		})
	}
	require.NoError(g.Wait())
	require.Equal(64, total)
	require.Zero(l.Locks())
}

func TestLockmapUnlockUnknownPanics(t *testing.T) {
	require.Panics(t, func() { New(0).Unlock("missing") })
}
