// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
)

// RuntimeOracle answers eligibility queries by calling the author filter
// runtime API against the state of the queried block.
type RuntimeOracle struct {
	blockState TrieStateGetter

	// the runtime context storage is swapped on every call
	mutex sync.Mutex
	rt    runtime.Instance
}

// NewRuntimeOracle returns an oracle calling the runtime instance.
// The instance must not be shared with other callers.
func NewRuntimeOracle(blockState TrieStateGetter, rt runtime.Instance) *RuntimeOracle {
	return &RuntimeOracle{
		blockState: blockState,
		rt:         rt,
	}
}

// CanAuthor returns true if the author is eligible to build on top of the block at the relay height.
func (o *RuntimeOracle) CanAuthor(at common.Hash, author types.AuthorID, relayParentNumber uint32) (bool, error) {
	state, err := o.blockState.TrieState(at)
	if err != nil {
		return false, fmt.Errorf("getting state at %s: %w", at, err)
	}

	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.rt.SetContextStorage(state)
	eligible, err := o.rt.CanAuthor(author, relayParentNumber)
	if err != nil {
		return false, fmt.Errorf("calling runtime at %s: %w", at, err)
	}
	return eligible, nil
}
