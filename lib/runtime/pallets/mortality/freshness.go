// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package mortality

import "github.com/ChainSafe/filtering-collator/dot/types"

// FreshnessSource derives the freshness ceiling of a block from the validation
// data it is built against.
type FreshnessSource interface {
	Ceiling(vd types.PersistedValidationData) uint32
}

// RelayParentSource uses the relay parent number as the ceiling
type RelayParentSource struct{}

// Ceiling returns the relay parent number
func (RelayParentSource) Ceiling(vd types.PersistedValidationData) uint32 {
	return vd.RelayParentNumber
}

// FixedSource always returns the same ceiling
type FixedSource struct {
	Value uint32
}

// Ceiling returns the fixed value
func (f FixedSource) Ceiling(types.PersistedValidationData) uint32 {
	return f.Value
}

// Ceiling derives the freshness ceiling put into the inherent data of a block.
// It never exceeds the relay parent number the pallet checks it against.
func Ceiling(source FreshnessSource, vd types.PersistedValidationData) uint32 {
	ceiling := source.Ceiling(vd)
	if ceiling > vd.RelayParentNumber {
		return vd.RelayParentNumber
	}
	return ceiling
}
