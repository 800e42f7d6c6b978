// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"context"
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/inherents"
	"github.com/ChainSafe/filtering-collator/lib/relaychain"
)

// InherentDataAssembler merges the inherent data of the local providers
// with the parachain system inherent proving the relay chain state.
type InherentDataAssembler struct {
	providers inherents.Providers
	relay     relaychain.Interface
	paraID    types.ParaID
}

// NewInherentDataAssembler returns a new InherentDataAssembler
func NewInherentDataAssembler(providers inherents.Providers, relay relaychain.Interface,
	paraID types.ParaID) *InherentDataAssembler {
	return &InherentDataAssembler{
		providers: providers,
		relay:     relay,
		paraID:    paraID,
	}
}

// CreateInherentData returns the inherent data of a block built against the relay parent.
func (a *InherentDataAssembler) CreateInherentData(ctx context.Context, vd *types.PersistedValidationData,
	relayParent common.Hash) (*types.InherentData, error) {
	data, err := a.providers.CreateInherentData(vd)
	if err != nil {
		return nil, err
	}

	parachainData, err := relaychain.CreateParachainInherentData(ctx, a.relay, a.paraID, relayParent, vd)
	if err != nil {
		return nil, err
	}

	err = data.Put(types.Sysi1337, *parachainData)
	if err != nil {
		return nil, fmt.Errorf("putting the system inherent into inherent data: %w", err)
	}

	return data, nil
}
