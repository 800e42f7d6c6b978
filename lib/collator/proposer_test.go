// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"testing"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/proposer"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
	"github.com/ChainSafe/filtering-collator/lib/runtime/native"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_basicProposerFactory_Init(t *testing.T) {
	t.Parallel()

	genesisState, genesis, err := native.BuildGenesis(native.Genesis{
		Authors:       []types.AuthorID{{1}},
		EligibleRatio: 100,
	})
	require.NoError(t, err)
	unknown := types.NewHeader(genesis.Hash(), genesis.StateRoot, genesis.ExtrinsicsRoot, 1, types.NewDigest())

	ctrl := gomock.NewController(t)
	blockState := NewMockTrieStateGetter(ctrl)
	blockState.EXPECT().TrieState(genesis.Hash()).Return(genesisState.Copy(), nil)
	blockState.EXPECT().TrieState(unknown.Hash()).Return(nil, errTest)

	newRuntime := func() (runtime.Instance, error) {
		return native.NewDefaultInstance(log.Critical)
	}
	factory := NewProposerFactory(proposer.NewFactory(blockState, newRuntime))

	p, err := factory.Init(genesis)
	require.NoError(t, err)
	assert.NotNil(t, p)

	p, err = factory.Init(unknown)
	assert.ErrorIs(t, err, errTest)
	assert.Nil(t, p)
}
