// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"sync"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingLogger struct {
	logging.NoLog

	lock   sync.Mutex
	infos  []string
	errors []string
	fatals []string
}

func (r *recordingLogger) Info(msg string, _ ...zap.Field) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.infos = append(r.infos, msg)
}

func (r *recordingLogger) Error(msg string, _ ...zap.Field) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *recordingLogger) Fatal(msg string, _ ...zap.Field) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.fatals = append(r.fatals, msg)
}

func TestLoggerRoutesThroughLogger(t *testing.T) {
	require := require.New(t)

	rec := &recordingLogger{}
	l := logger{log: rec}
	l.Infof("[JOB %d] WAL %s replayed", 1, "000005.log")
	l.Errorf("background error: %v", "boom")
	require.Equal([]string{"[JOB 1] WAL 000005.log replayed"}, rec.infos)
	require.Equal([]string{"background error: boom"}, rec.errors)

	require.PanicsWithValue("corrupt: 3", func() {
		l.Fatalf("corrupt: %d", 3)
	})
	require.Equal([]string{"corrupt: 3"}, rec.fatals)
}

func TestDatabaseUsesLogger(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	rec := &recordingLogger{}
	db, _, err := New(dir, NewDefaultConfig(), rec)
	require.NoError(err)
	require.NoError(db.Put([]byte("k"), []byte{1, 0, 0, 0}))
	require.NoError(db.Close())

	// reopening replays the WAL and reports it through the logger
	db, _, err = New(dir, NewDefaultConfig(), rec)
	require.NoError(err)
	require.NoError(db.Close())

	rec.lock.Lock()
	defer rec.lock.Unlock()
	require.NotEmpty(rec.infos)
	require.Empty(rec.fatals)
}
