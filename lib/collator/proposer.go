// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/proposer"
)

type basicProposerFactory struct {
	factory *proposer.Factory
}

// NewProposerFactory returns a ProposerFactory creating basic proposers
func NewProposerFactory(factory *proposer.Factory) ProposerFactory {
	return &basicProposerFactory{factory: factory}
}

func (f *basicProposerFactory) Init(parent *types.Header) (Proposer, error) {
	p, err := f.factory.Init(parent)
	if err != nil {
		return nil, err
	}
	return p, nil
}
