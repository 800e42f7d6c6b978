// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/google/uuid"
)

const maxImportedSubscriptions = 256

var errChannelLimitReached = errors.New("channel limit reached")

// RegisterImportedChannel registers a channel notified with each imported block.
// Notifications are dropped when the channel is not ready to receive.
func (bs *BlockState) RegisterImportedChannel(ch chan<- *types.Block) (uint32, error) {
	bs.importedLock.Lock()
	defer bs.importedLock.Unlock()

	if len(bs.imported) == maxImportedSubscriptions {
		return 0, errChannelLimitReached
	}

	id := bs.generateID()
	bs.imported[id] = ch
	return id, nil
}

// UnregisterImportedChannel unregisters and closes the channel with the given id
func (bs *BlockState) UnregisterImportedChannel(id uint32) bool {
	bs.importedLock.Lock()
	defer bs.importedLock.Unlock()

	ch, ok := bs.imported[id]
	if !ok {
		return false
	}
	close(ch)
	delete(bs.imported, id)
	return true
}

func (bs *BlockState) notifyImported(block *types.Block) {
	bs.importedLock.RLock()
	defer bs.importedLock.RUnlock()

	if len(bs.imported) == 0 {
		return
	}

	logger.Trace("notifying imported block channels...")
	for _, ch := range bs.imported {
		select {
		case ch <- block:
		default:
		}
	}
}

func (bs *BlockState) generateID() uint32 {
	var uid uuid.UUID
	for {
		uid = uuid.New()
		if bs.imported[uid.ID()] == nil {
			break
		}
	}
	return uid.ID()
}
