// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime/storage"
)

var statePrefix = []byte("stt") // statePrefix + root -> encoded state

// ErrTrieDoesNotExist is returned when the state of a root is not in the database
var ErrTrieDoesNotExist = errors.New("state for root does not exist")

// StorageState keeps the state of every imported block, by state root.
// It shares the database with the block state so a block and its state
// are written in the same batch.
type StorageState struct {
	db chaindb.Database
}

// NewStorageState returns a new StorageState
func NewStorageState(db chaindb.Database) *StorageState {
	return &StorageState{
		db: db,
	}
}

// stateKey = statePrefix + root
func stateKey(root common.Hash) []byte {
	return append(append([]byte{}, statePrefix...), root.ToBytes()...)
}

// TrieState returns a copy of the state with the given root
func (s *StorageState) TrieState(root common.Hash) (*storage.TrieState, error) {
	enc, err := s.db.Get(stateKey(root))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrTrieDoesNotExist, root)
	} else if err != nil {
		return nil, err
	}

	ts, err := storage.DecodeTrieState(enc)
	if err != nil {
		return nil, err
	}
	return ts, nil
}

// HasTrieState returns true if the state with the given root is stored
func (s *StorageState) HasTrieState(root common.Hash) (bool, error) {
	return s.db.Has(stateKey(root))
}

// StoreTrie writes the state to the database
func (s *StorageState) StoreTrie(ts *storage.TrieState) error {
	batch := s.db.NewBatch()
	_, err := s.storeTrie(batch, ts)
	if err != nil {
		return err
	}
	return batch.Flush()
}

func (s *StorageState) storeTrie(batch chaindb.Batch, ts *storage.TrieState) (common.Hash, error) {
	root, err := ts.Root()
	if err != nil {
		return common.Hash{}, err
	}

	enc, err := ts.Encode()
	if err != nil {
		return common.Hash{}, fmt.Errorf("cannot encode state: %w", err)
	}

	err = batch.Put(stateKey(root), enc)
	if err != nil {
		return common.Hash{}, err
	}
	return root, nil
}
