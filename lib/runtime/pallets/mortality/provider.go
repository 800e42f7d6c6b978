// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package mortality

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
)

// InherentDataProvider puts the freshness ceiling into the inherent data of a block.
// The ceiling never exceeds the relay parent number the pallet checks it against.
type InherentDataProvider struct {
	source FreshnessSource
}

// NewInherentDataProvider returns a provider deriving the ceiling from the source.
// A nil source uses the relay parent number.
func NewInherentDataProvider(source FreshnessSource) *InherentDataProvider {
	if source == nil {
		source = RelayParentSource{}
	}
	return &InherentDataProvider{source: source}
}

// Identifier returns the freshness ceiling inherent identifier
func (*InherentDataProvider) Identifier() types.InherentIdentifier {
	return types.Mortalty
}

// ProvideInherentData puts the ceiling derived from the validation data
func (p *InherentDataProvider) ProvideInherentData(vd *types.PersistedValidationData,
	data *types.InherentData) error {
	ceiling := Ceiling(p.source, *vd)
	err := data.Put(types.Mortalty, ceiling)
	if err != nil {
		return fmt.Errorf("putting freshness ceiling: %w", err)
	}
	return nil
}
