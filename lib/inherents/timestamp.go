// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package inherents

import (
	"time"

	"github.com/ChainSafe/filtering-collator/dot/types"
)

// TimestampProvider puts the current unix time in milliseconds under timstap0
type TimestampProvider struct {
	now func() time.Time
}

// NewTimestampProvider returns a timestamp provider. A nil clock uses time.Now.
func NewTimestampProvider(now func() time.Time) *TimestampProvider {
	if now == nil {
		now = time.Now
	}
	return &TimestampProvider{now: now}
}

// Identifier returns the timestamp inherent identifier
func (*TimestampProvider) Identifier() types.InherentIdentifier {
	return types.Timstap0
}

// ProvideInherentData puts the current time
func (p *TimestampProvider) ProvideInherentData(_ *types.PersistedValidationData, data *types.InherentData) error {
	return data.Put(types.Timstap0, uint64(p.now().UnixMilli()))
}
