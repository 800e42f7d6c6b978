// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime/native"
	"github.com/ChainSafe/filtering-collator/lib/runtime/storage"
	"github.com/stretchr/testify/require"
)

var testAuthors = []types.AuthorID{{1}, {2}, {3}, {4}}

func newTestService(t *testing.T) *Service {
	t.Helper()

	genesisState, genesis, err := native.BuildGenesis(native.Genesis{
		Authors:       testAuthors,
		EligibleRatio: 50,
	})
	require.NoError(t, err)

	s := NewService(Config{InMemory: true, LogLevel: log.Critical})
	require.NoError(t, s.Initialise(genesisState, genesis))
	t.Cleanup(func() {
		_ = s.Stop()
	})
	return s
}

// newTestImportParams builds a block on top of the parent the way the proposer
// does, and returns its import params with the given fork choice.
func newTestImportParams(t *testing.T, bs *BlockState, parentHash common.Hash, relayHeight uint32,
	forkChoice types.ForkChoiceStrategy) *types.BlockImportParams {
	t.Helper()

	parent, err := bs.GetHeader(parentHash)
	require.NoError(t, err)
	parentState, err := bs.TrieState(parentHash)
	require.NoError(t, err)

	instance, err := native.NewDefaultInstance(log.Critical)
	require.NoError(t, err)

	ts := storage.NewTrieState(parentState.TrieEntries())
	instance.SetContextStorage(ts)

	header := types.NewHeader(parent.Hash(), parent.StateRoot, parent.ExtrinsicsRoot,
		parent.Number+1, types.NewDigest())
	require.NoError(t, instance.InitializeBlock(header))

	data := types.NewInherentData()
	require.NoError(t, data.Put(types.Sysi1337, types.ParachainInherentData{
		ValidationData: types.PersistedValidationData{RelayParentNumber: relayHeight},
	}))
	require.NoError(t, data.Put(types.Mortalty, relayHeight))

	exts, err := instance.InherentExtrinsics(data)
	require.NoError(t, err)
	for _, ext := range exts {
		require.NoError(t, instance.ApplyExtrinsic(ext))
	}
	finalised, err := instance.FinalizeBlock()
	require.NoError(t, err)

	changes, err := ts.StorageChanges()
	require.NoError(t, err)

	params := types.NewBlockImportParams(types.BlockOriginOwn, *finalised)
	params.Body = types.Body(exts)
	params.PostDigests = []types.DigestItem{types.NewFilteringSeal()}
	params.StorageChanges = changes
	params.ForkChoice = forkChoice
	return params
}
