// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package host owns named counter regions in a database and runs the counter
// program against them.
package host

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/counterprogram/consts"
	"github.com/ava-labs/counterprogram/lockmap"
	"github.com/ava-labs/counterprogram/program"
	"github.com/ava-labs/counterprogram/state"
)

const (
	counterPrefix byte = 0x0

	MaxNameLen = 64
)

// Host serializes calls per counter. Calls against different counters run
// independently.
type Host struct {
	log     logging.Logger
	db      state.Database
	locks   *lockmap.Lockmap
	metrics *metrics
}

func New(log logging.Logger, db state.Database) (*Host, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	return &Host{
		log:     log,
		db:      db,
		locks:   lockmap.New(16),
		metrics: metrics,
	}, registry, nil
}

// [counterPrefix] + [name]
func CounterKey(name string) []byte {
	k := make([]byte, consts.ByteLen+len(name))
	k[0] = counterPrefix
	copy(k[1:], name)
	return k
}

func validateName(name string) error {
	if len(name) == 0 || len(name) > MaxNameLen {
		return fmt.Errorf("%w: %q must be 1-%d bytes", ErrInvalidName, name, MaxNameLen)
	}
	return nil
}

func getRegion(ctx context.Context, im state.Immutable, name string, key []byte) ([]byte, error) {
	v, err := im.GetValue(ctx, key)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrCounterNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create stores a new counter set to zero.
func (h *Host) Create(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	key := CounterKey(name)
	h.locks.Lock(string(key))
	defer h.locks.Unlock(string(key))

	mu := state.NewSimpleMutable(h.db)
	_, err := mu.GetValue(ctx, key)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %q", ErrCounterExists, name)
	case !errors.Is(err, database.ErrNotFound):
		return err
	}
	region, err := (&program.Counter{}).Marshal()
	if err != nil {
		return err
	}
	if err := mu.Insert(ctx, key, region); err != nil {
		return err
	}
	if err := mu.Commit(ctx); err != nil {
		return err
	}
	h.log.Info("created counter", zap.String("name", name))
	return nil
}

// Delete removes counter [name].
func (h *Host) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	key := CounterKey(name)
	h.locks.Lock(string(key))
	defer h.locks.Unlock(string(key))

	mu := state.NewSimpleMutable(h.db)
	if _, err := getRegion(ctx, mu, name, key); err != nil {
		return err
	}
	if err := mu.Remove(ctx, key); err != nil {
		return err
	}
	if err := mu.Commit(ctx); err != nil {
		return err
	}
	h.log.Info("deleted counter", zap.String("name", name))
	return nil
}

func (h *Host) Get(ctx context.Context, name string) (uint32, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}
	key := CounterKey(name)
	h.locks.RLock(string(key))
	defer h.locks.RUnlock(string(key))

	region, err := getRegion(ctx, state.NewSimpleMutable(h.db), name, key)
	if err != nil {
		return 0, err
	}
	c, err := program.UnmarshalCounter(region)
	if err != nil {
		return 0, err
	}
	return c.Counter, nil
}

// Execute runs the instruction encoded in [data] against counter [name] and
// returns the new value. If the call fails nothing is written.
func (h *Host) Execute(ctx context.Context, name string, data []byte) (uint32, error) {
	start := time.Now()
	defer func() {
		h.metrics.execute.Observe(float64(time.Since(start)))
	}()

	next, err := h.execute(ctx, name, data)
	if err != nil {
		h.metrics.rejected.Inc()
		h.log.Debug("rejected instruction",
			zap.String("name", name),
			zap.Binary("data", data),
			zap.Error(err),
		)
		return 0, err
	}
	h.metrics.applied(data[0])
	h.log.Debug("applied instruction",
		zap.String("name", name),
		zap.Uint8("tag", data[0]),
		zap.Uint32("counter", next),
	)
	return next, nil
}

func (h *Host) execute(ctx context.Context, name string, data []byte) (uint32, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}
	key := CounterKey(name)
	h.locks.Lock(string(key))
	defer h.locks.Unlock(string(key))

	mu := state.NewSimpleMutable(h.db)
	region, err := getRegion(ctx, mu, name, key)
	if err != nil {
		return 0, err
	}
	region = slices.Clone(region)
	if err := program.Process(h.log, region, data); err != nil {
		return 0, fmt.Errorf("%w: counter=%q", err, name)
	}
	if err := mu.Insert(ctx, key, region); err != nil {
		return 0, err
	}
	if err := mu.Commit(ctx); err != nil {
		return 0, err
	}
	c, err := program.UnmarshalCounter(region)
	if err != nil {
		return 0, err
	}
	return c.Counter, nil
}
