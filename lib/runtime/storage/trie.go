// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package storage

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// TrieState is the key-value state used during the course of executing some runtime call.
// If the execution of the call is successful, its changes are saved in the StorageState.
// The root of the state is the blake2b hash of its sorted SCALE encoded entries.
type TrieState struct {
	lock    sync.RWMutex
	entries map[string][]byte
	// changes maps each key modified since the state was created to its
	// new value. A nil value is a deletion.
	changes map[string][]byte
	// saved is the state before BeginStorageTransaction is called. It is nil if it isn't called.
	saved *snapshot
	// recorded maps each key read from the base state to its value, when recording.
	recorded map[string][]byte
}

type snapshot struct {
	entries map[string][]byte
	changes map[string][]byte
}

// Entry is a key value pair of the state
type Entry struct {
	Key   []byte
	Value []byte
}

// proofNode is a recorded read. A nil Value proves the key is absent.
type proofNode struct {
	Key   []byte
	Value *[]byte
}

// NewTrieState returns a new TrieState holding the given entries.
func NewTrieState(entries map[string][]byte) *TrieState {
	ts := &TrieState{
		entries: make(map[string][]byte, len(entries)),
		changes: make(map[string][]byte),
	}
	for k, v := range entries {
		ts.entries[k] = copyBytes(v)
	}
	return ts
}

// NewEmptyTrieState returns a new empty TrieState
func NewEmptyTrieState() *TrieState {
	return NewTrieState(nil)
}

// DecodeTrieState decodes a state encoded with Encode.
func DecodeTrieState(in []byte) (*TrieState, error) {
	var entries []Entry
	err := scale.Unmarshal(in, &entries)
	if err != nil {
		return nil, fmt.Errorf("cannot decode state: %w", err)
	}

	ts := NewEmptyTrieState()
	for _, e := range entries {
		ts.entries[string(e.Key)] = e.Value
	}
	return ts, nil
}

// Copy returns a copy of the state with an empty change set and no recording.
func (s *TrieState) Copy() *TrieState {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return NewTrieState(s.entries)
}

// BeginStorageTransaction begins a new storage transaction which will either be committed or rolled back at a later time.
func (s *TrieState) BeginStorageTransaction() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.saved = &snapshot{
		entries: copyMap(s.entries),
		changes: copyMap(s.changes),
	}
}

// CommitStorageTransaction commits all storage changes made since BeginStorageTransaction was called.
func (s *TrieState) CommitStorageTransaction() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.saved = nil
}

// RollbackStorageTransaction rolls back all storage changes made since BeginStorageTransaction was called.
func (s *TrieState) RollbackStorageTransaction() {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.saved == nil {
		return
	}
	s.entries = s.saved.entries
	s.changes = s.saved.changes
	s.saved = nil
}

// StartRecording makes the state record every read of the base state.
// The recorded reads form the storage proof.
func (s *TrieState) StartRecording() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.recorded = make(map[string][]byte)
}

// Set sets a key-value pair in the state
func (s *TrieState) Set(key, value []byte) {
	s.lock.Lock()
	defer s.lock.Unlock()
	v := copyBytes(value)
	if v == nil {
		v = []byte{}
	}
	s.entries[string(key)] = v
	s.changes[string(key)] = v
}

// Get gets a value from the state. It returns nil if the key does not exist.
func (s *TrieState) Get(key []byte) []byte {
	s.lock.Lock()
	defer s.lock.Unlock()

	value, ok := s.entries[string(key)]
	s.record(key, value, ok)
	if !ok {
		return nil
	}
	return copyBytes(value)
}

// Has returns whether or not a key exists
func (s *TrieState) Has(key []byte) bool {
	return s.Get(key) != nil
}

// Delete deletes a key from the state
func (s *TrieState) Delete(key []byte) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.entries[string(key)]; !ok {
		return
	}
	delete(s.entries, string(key))
	s.changes[string(key)] = nil
}

// ClearPrefix deletes all key-value pairs from the state where the key starts with the given prefix
func (s *TrieState) ClearPrefix(prefix []byte) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for k := range s.entries {
		if strings.HasPrefix(k, string(prefix)) {
			delete(s.entries, k)
			s.changes[k] = nil
		}
	}
}

// NextKey returns the next key in lexicographical order. If it does not exist, it returns nil.
func (s *TrieState) NextKey(key []byte) []byte {
	s.lock.RLock()
	defer s.lock.RUnlock()
	var next []byte
	for k := range s.entries {
		if k > string(key) && (next == nil || k < string(next)) {
			next = []byte(k)
		}
	}
	return next
}

// TrieEntries returns every key-value pair in the state
func (s *TrieState) TrieEntries() map[string][]byte {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return copyMap(s.entries)
}

// Root returns the state root hash
func (s *TrieState) Root() (common.Hash, error) {
	enc, err := s.Encode()
	if err != nil {
		return common.Hash{}, err
	}
	return common.Blake2bHash(enc)
}

// MustRoot returns the state root hash. It panics if it fails to compute the root.
func (s *TrieState) MustRoot() common.Hash {
	root, err := s.Root()
	if err != nil {
		panic(err)
	}
	return root
}

// Encode returns the SCALE encoding of the state entries sorted by key.
func (s *TrieState) Encode() ([]byte, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	keys := sortedKeys(s.entries)
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: []byte(k), Value: s.entries[k]}
	}
	return scale.Marshal(entries)
}

// StorageChanges returns the changes made since the state was created, sorted by key,
// together with the resulting state root.
func (s *TrieState) StorageChanges() (*types.StorageChanges, error) {
	root, err := s.Root()
	if err != nil {
		return nil, fmt.Errorf("computing state root: %w", err)
	}

	s.lock.RLock()
	defer s.lock.RUnlock()

	keys := sortedKeys(s.changes)
	changes := &types.StorageChanges{
		Changes:   make([]types.StorageChange, len(keys)),
		StateRoot: root,
	}
	for i, k := range keys {
		changes.Changes[i] = types.StorageChange{Key: []byte(k), Value: copyBytes(s.changes[k])}
	}
	return changes, nil
}

// ApplyChanges applies storage changes to the state.
func (s *TrieState) ApplyChanges(changes []types.StorageChange) {
	for _, change := range changes {
		if change.Value == nil {
			s.Delete(change.Key)
			continue
		}
		s.Set(change.Key, change.Value)
	}
}

// Proof returns the storage proof of the reads recorded since StartRecording.
func (s *TrieState) Proof() (types.StorageProof, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	keys := sortedKeys(s.recorded)
	nodes := make([][]byte, 0, len(keys))
	for _, k := range keys {
		node := proofNode{Key: []byte(k)}
		if value := s.recorded[k]; value != nil {
			v := value
			node.Value = &v
		}
		enc, err := scale.Marshal(node)
		if err != nil {
			return types.StorageProof{}, fmt.Errorf("encoding proof node: %w", err)
		}
		nodes = append(nodes, enc)
	}
	return types.NewStorageProof(nodes), nil
}

// record must be called with the lock held.
func (s *TrieState) record(key, value []byte, ok bool) {
	if s.recorded == nil {
		return
	}
	k := string(key)
	if _, done := s.recorded[k]; done {
		return
	}
	if _, changed := s.changes[k]; changed {
		// value written during this execution, not part of the base state
		return
	}
	if !ok {
		s.recorded[k] = nil
		return
	}
	s.recorded[k] = copyBytes(value)
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func copyMap(in map[string][]byte) map[string][]byte {
	out := make(map[string][]byte, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyBytes(in []byte) []byte {
	if in == nil {
		return nil
	}
	return append([]byte{}, in...)
}
