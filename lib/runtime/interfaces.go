// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
)

// Instance is the interface a parachain runtime instance must implement
type Instance interface {
	Version() Version
	Exec(function string, data []byte) ([]byte, error)
	SetContextStorage(s Storage) // used to set the TrieState before a runtime call

	InitializeBlock(header *types.Header) error
	InherentExtrinsics(data *types.InherentData) ([]types.Extrinsic, error)
	ApplyExtrinsic(ext types.Extrinsic) error
	FinalizeBlock() (*types.Header, error)
	ExecuteBlock(block *types.Block) error
	CheckInherents(block *types.Block, data *types.InherentData) error
	CanAuthor(author types.AuthorID, relayParentNumber uint32) (bool, error)
}

// Storage interface
type Storage interface {
	Set(key []byte, value []byte)
	Get(key []byte) []byte
	Has(key []byte) bool
	Delete(key []byte)
	ClearPrefix(prefix []byte)
	NextKey([]byte) []byte
	Root() (common.Hash, error)
	BeginStorageTransaction()
	CommitStorageTransaction()
	RollbackStorageTransaction()
}
