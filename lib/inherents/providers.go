// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package inherents

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "inherents"))

// Provider puts one inherent into the inherent data of a block
type Provider interface {
	Identifier() types.InherentIdentifier
	ProvideInherentData(vd *types.PersistedValidationData, data *types.InherentData) error
}

// Providers is an ordered list of inherent data providers
type Providers []Provider

// NewProviders returns the given providers. Providers sharing an identifier are rejected.
func NewProviders(providers ...Provider) (Providers, error) {
	seen := make(map[types.InherentIdentifier]struct{}, len(providers))
	for _, provider := range providers {
		id := provider.Identifier()
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %s", types.ErrInherentDataExists, id)
		}
		seen[id] = struct{}{}
	}
	return append(Providers{}, providers...), nil
}

// CreateInherentData returns the inherent data filled by every provider, in order.
// It stops at the first provider failing.
func (p Providers) CreateInherentData(vd *types.PersistedValidationData) (*types.InherentData, error) {
	data := types.NewInherentData()
	for _, provider := range p {
		err := provider.ProvideInherentData(vd, data)
		if err != nil {
			return nil, fmt.Errorf("providing inherent %s: %w", provider.Identifier(), err)
		}
		logger.Tracef("provided inherent %s", provider.Identifier())
	}
	return data, nil
}
