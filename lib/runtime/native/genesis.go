// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package native

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
	"github.com/ChainSafe/filtering-collator/lib/runtime/pallets/authorfilter"
	"github.com/ChainSafe/filtering-collator/lib/runtime/storage"
)

// Genesis is the genesis configuration of the filtering parachain
type Genesis struct {
	Authors       []types.AuthorID
	EligibleRatio uint8
}

// BuildGenesis returns the genesis state and header
func BuildGenesis(g Genesis) (*storage.TrieState, *types.Header, error) {
	s := storage.NewEmptyTrieState()

	err := authorfilter.BuildGenesis(s, g.Authors, g.EligibleRatio)
	if err != nil {
		return nil, nil, fmt.Errorf("building author filter genesis: %w", err)
	}
	err = runtime.PutValue(s, NumberKey, uint64(0))
	if err != nil {
		return nil, nil, err
	}

	stateRoot, err := s.Root()
	if err != nil {
		return nil, nil, err
	}
	extrinsicsRoot, err := types.Body{}.Root()
	if err != nil {
		return nil, nil, err
	}

	header := types.NewHeader(common.Hash{}, stateRoot, extrinsicsRoot, 0, types.NewDigest())
	return s, header, nil
}
