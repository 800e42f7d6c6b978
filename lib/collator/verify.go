// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/proposer"
)

// runtimeVerifier re-executes sealed blocks on their parent state the way
// the validation function does.
type runtimeVerifier struct {
	state      TrieStateGetter
	newRuntime proposer.RuntimeFactory
}

// NewRuntimeVerifier returns a BlockVerifier executing blocks with a fresh runtime instance
func NewRuntimeVerifier(state TrieStateGetter, newRuntime proposer.RuntimeFactory) BlockVerifier {
	return &runtimeVerifier{
		state:      state,
		newRuntime: newRuntime,
	}
}

// VerifyBlock checks the inherents of the block against the inherent data,
// then executes the block. Neither step writes to the stored parent state.
func (v *runtimeVerifier) VerifyBlock(block *types.Block, data *types.InherentData) error {
	parentState, err := v.state.TrieState(block.Header.ParentHash)
	if err != nil {
		return fmt.Errorf("getting parent state: %w", err)
	}

	rt, err := v.newRuntime()
	if err != nil {
		return fmt.Errorf("creating runtime: %w", err)
	}

	rt.SetContextStorage(parentState.Copy())
	err = rt.CheckInherents(block, data)
	if err != nil {
		return fmt.Errorf("checking inherents: %w", err)
	}

	rt.SetContextStorage(parentState)
	err = rt.ExecuteBlock(block)
	if err != nil {
		return fmt.Errorf("executing block: %w", err)
	}

	logger.Debugf("verified block %s number %d", block.Header.Hash(), block.Header.Number)
	return nil
}
