// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_InitialiseAndRestart(t *testing.T) {
	t.Parallel()

	basePath := t.TempDir()
	genesisState, genesis, err := native.BuildGenesis(native.Genesis{
		Authors:       testAuthors,
		EligibleRatio: 50,
	})
	require.NoError(t, err)

	s := NewService(Config{Path: basePath, LogLevel: log.Critical})
	require.NoError(t, s.Initialise(genesisState, genesis))

	params := newTestImportParams(t, s.Block, genesis.Hash(), 5, types.ForkChoiceCustom(true))
	require.NoError(t, s.Block.ImportBlock(params))
	require.NoError(t, s.Stop())

	restarted := NewService(Config{Path: basePath, LogLevel: log.Critical})
	require.NoError(t, restarted.Start())
	t.Cleanup(func() {
		_ = restarted.Stop()
	})

	assert.Equal(t, genesis.Hash(), restarted.Block.GenesisHash())
	assert.Equal(t, params.PostHash(), restarted.Block.BestBlockHash())
	ts, err := restarted.Block.TrieState(params.PostHash())
	require.NoError(t, err)
	assert.Equal(t, params.Header.StateRoot, ts.MustRoot())
}

func TestService_Start_notInitialised(t *testing.T) {
	t.Parallel()

	s := NewService(Config{Path: t.TempDir(), LogLevel: log.Critical})
	err := s.Start()
	assert.ErrorIs(t, err, ErrNotInitialised)
	require.NoError(t, s.Stop())
}

func TestNewBlockStateFromGenesis_rootMismatch(t *testing.T) {
	t.Parallel()

	genesisState, genesis, err := native.BuildGenesis(native.Genesis{Authors: testAuthors, EligibleRatio: 50})
	require.NoError(t, err)
	genesis.StateRoot = common.Hash{1}

	s := NewService(Config{InMemory: true, LogLevel: log.Critical})
	err = s.Initialise(genesisState, genesis)
	assert.ErrorIs(t, err, ErrStateRootMismatch)
	require.NoError(t, s.Stop())
}

func TestCollationState(t *testing.T) {
	t.Parallel()

	cs := newTestService(t).Collation

	collation := &types.Collation{
		RelayParent: common.Hash{7},
		ParaID:      2000,
		Collator:    types.AuthorID{1},
		HeadData:    types.HeadData{1, 2, 3},
		PoV:         []byte{4, 5},
	}
	require.NoError(t, cs.SubmitCollation(collation))

	got, err := cs.GetCollation(common.Hash{7})
	require.NoError(t, err)
	assert.Equal(t, collation, got)

	_, err = cs.GetCollation(common.Hash{8})
	assert.Error(t, err)
}
