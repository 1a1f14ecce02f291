// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"golang.org/x/exp/maps"
)

var _ Mutable = (*SimpleMutable)(nil)

type changeOp struct {
	value  []byte
	delete bool
}

// SimpleMutable buffers writes in memory on top of a [Database]. Nothing
// reaches the database until Commit.
type SimpleMutable struct {
	db Database

	changes map[string]*changeOp
}

func NewSimpleMutable(db Database) *SimpleMutable {
	return &SimpleMutable{db, make(map[string]*changeOp)}
}

func (s *SimpleMutable) GetValue(_ context.Context, k []byte) ([]byte, error) {
	if v, ok := s.changes[string(k)]; ok {
		if v.delete {
			return nil, database.ErrNotFound
		}
		return v.value, nil
	}
	return s.db.Get(k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = &changeOp{value: v}
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = &changeOp{delete: true}
	return nil
}

// Commit writes every buffered change to the database in key order and
// clears the buffer. If a write fails the remaining changes stay buffered.
func (s *SimpleMutable) Commit(context.Context) error {
	keys := maps.Keys(s.changes)
	slices.Sort(keys)
	for _, k := range keys {
		op := s.changes[k]
		var err error
		if op.delete {
			err = s.db.Delete([]byte(k))
		} else {
			err = s.db.Put([]byte(k), op.value)
		}
		if err != nil {
			return err
		}
		delete(s.changes, k)
	}
	return nil
}
