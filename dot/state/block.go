// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime/storage"
)

var (
	// ErrNoStorageChanges is returned when importing a block without the
	// storage changes of its execution. Blocks are never re-executed on import.
	ErrNoStorageChanges = errors.New("block import params carry no storage changes")
	// ErrParentNotFound is returned when importing a block whose parent is unknown.
	ErrParentNotFound = errors.New("parent block not found")
	// ErrStateRootMismatch is returned when the storage changes applied on
	// the parent state do not give the header state root.
	ErrStateRootMismatch = errors.New("state root mismatch")
	// ErrBlockExists is returned when importing a block already imported.
	ErrBlockExists = errors.New("block already exists")
)

var (
	// Data prefixes
	headerPrefix    = []byte("hdr") // headerPrefix + hash -> header
	blockBodyPrefix = []byte("blb") // blockBodyPrefix + hash -> body

	bestBlockHashKey = []byte("best_hash")
	genesisHashKey   = []byte("genesis_hash")
)

// BlockState keeps the headers and bodies of the parachain blocks
// imported by this node, and its best block.
type BlockState struct {
	db      chaindb.Database
	storage *StorageState
	sync.RWMutex
	genesisHash common.Hash
	bestHash    common.Hash

	imported     map[uint32]chan<- *types.Block
	importedLock sync.RWMutex
}

// NewBlockState returns the block state stored in the database
func NewBlockState(db chaindb.Database, storageState *StorageState) (*BlockState, error) {
	bs := &BlockState{
		db:       db,
		storage:  storageState,
		imported: make(map[uint32]chan<- *types.Block),
	}

	genesisHash, err := db.Get(genesisHashKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get genesis hash: %w", err)
	}
	bs.genesisHash = common.NewHash(genesisHash)

	bestHash, err := db.Get(bestBlockHashKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get best block hash: %w", err)
	}
	bs.bestHash = common.NewHash(bestHash)

	return bs, nil
}

// NewBlockStateFromGenesis writes the genesis block and state to the database
// and returns the block state with genesis as best block.
func NewBlockStateFromGenesis(db chaindb.Database, storageState *StorageState,
	genesisState *storage.TrieState, header *types.Header) (*BlockState, error) {
	root, err := genesisState.Root()
	if err != nil {
		return nil, err
	}
	if root != header.StateRoot {
		return nil, fmt.Errorf("%w: genesis state has root %s and header has %s",
			ErrStateRootMismatch, root, header.StateRoot)
	}

	hash := header.Hash()
	bs := &BlockState{
		db:          db,
		storage:     storageState,
		genesisHash: hash,
		bestHash:    hash,
		imported:    make(map[uint32]chan<- *types.Block),
	}

	batch := db.NewBatch()
	err = bs.putBlock(batch, hash, header, types.Body{})
	if err != nil {
		return nil, err
	}
	_, err = storageState.storeTrie(batch, genesisState)
	if err != nil {
		return nil, err
	}
	err = batch.Put(genesisHashKey, hash.ToBytes())
	if err != nil {
		return nil, err
	}
	err = batch.Put(bestBlockHashKey, hash.ToBytes())
	if err != nil {
		return nil, err
	}

	err = batch.Flush()
	if err != nil {
		return nil, fmt.Errorf("failed to write genesis block: %w", err)
	}

	logger.Debugf("wrote block %s number %d from origin %s", hash, header.Number, types.BlockOriginGenesis)
	return bs, nil
}

// headerKey = headerPrefix + hash
func headerKey(hash common.Hash) []byte {
	return append(append([]byte{}, headerPrefix...), hash.ToBytes()...)
}

// blockBodyKey = blockBodyPrefix + hash
func blockBodyKey(hash common.Hash) []byte {
	return append(append([]byte{}, blockBodyPrefix...), hash.ToBytes()...)
}

// GenesisHash returns the hash of the genesis block
func (bs *BlockState) GenesisHash() common.Hash {
	return bs.genesisHash
}

// HasHeader returns if the db contains a header with the given hash
func (bs *BlockState) HasHeader(hash common.Hash) (bool, error) {
	return bs.db.Has(headerKey(hash))
}

// GetHeader returns a BlockHeader for a given hash
func (bs *BlockState) GetHeader(hash common.Hash) (*types.Header, error) {
	data, err := bs.db.Get(headerKey(hash))
	if err != nil {
		return nil, fmt.Errorf("getting header %s: %w", hash, err)
	}

	return types.DecodeHeader(data)
}

// GetBlockBody will return Body for a given hash
func (bs *BlockState) GetBlockBody(hash common.Hash) (types.Body, error) {
	data, err := bs.db.Get(blockBodyKey(hash))
	if err != nil {
		return nil, fmt.Errorf("getting block body %s: %w", hash, err)
	}

	body, err := types.DecodeBody(data)
	if err != nil {
		return nil, err
	}
	return *body, nil
}

// GetBlockByHash returns a block for a given hash
func (bs *BlockState) GetBlockByHash(hash common.Hash) (*types.Block, error) {
	header, err := bs.GetHeader(hash)
	if err != nil {
		return nil, err
	}

	body, err := bs.GetBlockBody(hash)
	if err != nil {
		return nil, err
	}

	block := types.NewBlock(*header, body)
	return &block, nil
}

// BestBlockHash returns the hash of the best block
func (bs *BlockState) BestBlockHash() common.Hash {
	bs.RLock()
	defer bs.RUnlock()
	return bs.bestHash
}

// BestBlockHeader returns the header of the best block
func (bs *BlockState) BestBlockHeader() (*types.Header, error) {
	return bs.GetHeader(bs.BestBlockHash())
}

// SetBestBlockHash sets the best block. The block must have been imported.
// Fork choice of the parachain follows the relay chain, so this is called
// with the head the relay chain considers included.
func (bs *BlockState) SetBestBlockHash(hash common.Hash) error {
	has, err := bs.HasHeader(hash)
	if err != nil {
		return err
	}
	if !has {
		return fmt.Errorf("cannot set best block %s: %w", hash, chaindb.ErrKeyNotFound)
	}

	bs.Lock()
	defer bs.Unlock()

	err = bs.db.Put(bestBlockHashKey, hash.ToBytes())
	if err != nil {
		return err
	}
	bs.bestHash = hash
	return nil
}

// TrieState returns a copy of the state of the block with the given hash
func (bs *BlockState) TrieState(hash common.Hash) (*storage.TrieState, error) {
	header, err := bs.GetHeader(hash)
	if err != nil {
		return nil, err
	}
	return bs.storage.TrieState(header.StateRoot)
}

// ImportBlock writes the post-seal block and the state resulting from its
// storage changes in a single batch. The block is not executed: the storage
// changes must be applied on the parent state to give the header state root.
// The best block is updated according to the fork choice of the params.
func (bs *BlockState) ImportBlock(params *types.BlockImportParams) error {
	if params.StorageChanges == nil {
		return ErrNoStorageChanges
	}

	header := params.PostHeader()
	hash := header.Hash()

	has, err := bs.HasHeader(hash)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: %s", ErrBlockExists, hash)
	}

	parent, err := bs.GetHeader(header.ParentHash)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrParentNotFound, header.ParentHash)
	} else if err != nil {
		return err
	}

	ts, err := bs.storage.TrieState(parent.StateRoot)
	if err != nil {
		return fmt.Errorf("getting parent state: %w", err)
	}
	ts.ApplyChanges(params.StorageChanges.Changes)

	root, err := ts.Root()
	if err != nil {
		return err
	}
	if root != header.StateRoot || root != params.StorageChanges.StateRoot {
		return fmt.Errorf("%w: changes give %s, header has %s",
			ErrStateRootMismatch, root, header.StateRoot)
	}

	bs.Lock()
	defer bs.Unlock()

	batch := bs.db.NewBatch()
	err = bs.putBlock(batch, hash, header, params.Body)
	if err != nil {
		return err
	}
	_, err = bs.storage.storeTrie(batch, ts)
	if err != nil {
		return err
	}

	best, err := bs.isBest(header, params.ForkChoice)
	if err != nil {
		return err
	}
	if best {
		err = batch.Put(bestBlockHashKey, hash.ToBytes())
		if err != nil {
			return err
		}
	}

	err = batch.Flush()
	if err != nil {
		return fmt.Errorf("writing block %s: %w", hash, err)
	}
	if best {
		bs.bestHash = hash
	}

	logger.Debugf("imported block %s number %d from origin %s, fork choice %s",
		hash, header.Number, params.Origin, params.ForkChoice)

	block := types.NewBlock(*header, params.Body)
	bs.notifyImported(&block)
	return nil
}

func (bs *BlockState) isBest(header *types.Header, forkChoice types.ForkChoiceStrategy) (bool, error) {
	if forkChoice.Custom {
		return forkChoice.Best, nil
	}

	best, err := bs.GetHeader(bs.bestHash)
	if err != nil {
		return false, fmt.Errorf("getting best block header: %w", err)
	}
	return header.Number > best.Number, nil
}

func (bs *BlockState) putBlock(batch chaindb.Batch, hash common.Hash,
	header *types.Header, body types.Body) error {
	encodedHeader, err := header.Encode()
	if err != nil {
		return fmt.Errorf("cannot encode header: %w", err)
	}
	err = batch.Put(headerKey(hash), encodedHeader)
	if err != nil {
		return err
	}

	encodedBody, err := body.Encode()
	if err != nil {
		return fmt.Errorf("cannot encode body: %w", err)
	}
	return batch.Put(blockBodyKey(hash), encodedBody)
}
