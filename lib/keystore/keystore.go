// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/ChainSafe/filtering-collator/dot/types"
)

// ErrKeyNotFound is returned when the keystore holds no keypair for a public key
var ErrKeyNotFound = errors.New("key not found in keystore")

// Name represents a defined keystore name
type Name string

// NmbsName is the key type of the collator author keys
var NmbsName Name = "nmbs"

// Keystore holds the sr25519 keypairs of one key type
type Keystore struct {
	name Name
	keys map[types.AuthorID]*Keypair
	lock sync.RWMutex
}

// NewKeystore returns an empty keystore
func NewKeystore(name Name) *Keystore {
	return &Keystore{
		name: name,
		keys: make(map[types.AuthorID]*Keypair),
	}
}

// Name returns the keystore's name
func (ks *Keystore) Name() Name {
	return ks.name
}

// Size returns the number of keys in the keystore
func (ks *Keystore) Size() int {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	return len(ks.keys)
}

// Insert adds a keypair to the keystore
func (ks *Keystore) Insert(kp *Keypair) {
	ks.lock.Lock()
	defer ks.lock.Unlock()
	ks.keys[kp.Public()] = kp
}

// HasKey returns true if the keystore holds the keypair of the author
func (ks *Keystore) HasKey(author types.AuthorID) bool {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	_, ok := ks.keys[author]
	return ok
}

// GetKeypair returns the keypair of the author
func (ks *Keystore) GetKeypair(author types.AuthorID) (*Keypair, error) {
	ks.lock.RLock()
	defer ks.lock.RUnlock()
	kp, ok := ks.keys[author]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, author.Address())
	}
	return kp, nil
}

// PublicKeys returns the author ids of the keystore in ascending order
func (ks *Keystore) PublicKeys() []types.AuthorID {
	ks.lock.RLock()
	defer ks.lock.RUnlock()

	ids := make([]types.AuthorID, 0, len(ks.keys))
	for id := range ks.keys {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

// LoadKeyFile inserts the keypair of the secret stored in the file.
// The secret is either a 0x prefixed hex seed or a mnemonic.
func (ks *Keystore) LoadKeyFile(path string) (*Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	kp, err := NewKeypairFromSecret(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("loading key file %s: %w", path, err)
	}
	ks.Insert(kp)
	return kp, nil
}
