// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relaychain

import (
	"context"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
)

// Head is a relay chain block announced by the relay chain node
type Head struct {
	Hash   common.Hash
	Number uint32
}

// Notification asks the collator to produce a candidate on top of the
// relay parent with the given validation data.
type Notification struct {
	RelayParent    common.Hash
	ValidationData types.PersistedValidationData
}

// Interface is the relay chain state the collator needs
type Interface interface {
	// NewHeads returns a channel of new relay chain heads. It is closed when
	// the context is canceled or the subscription fails.
	NewHeads(ctx context.Context) (<-chan Head, error)
	// PersistedValidationData returns the validation data of the para at the relay
	// block, assuming its pending candidate is included. It returns nil if the para
	// is not scheduled.
	PersistedValidationData(ctx context.Context, at common.Hash,
		paraID types.ParaID) (*types.PersistedValidationData, error)
	// ProveRead returns the storage proof of the keys at the relay block
	ProveRead(ctx context.Context, at common.Hash, keys [][]byte) (types.StorageProof, error)
	// DownwardMessages returns the downward message queue of the para at the relay block
	DownwardMessages(ctx context.Context, at common.Hash,
		paraID types.ParaID) ([]types.InboundDownwardMessage, error)
	// InboundHrmpChannelsContents returns the inbound horizontal messages of the para
	// at the relay block
	InboundHrmpChannelsContents(ctx context.Context, at common.Hash,
		paraID types.ParaID) ([]types.HrmpChannelContents, error)
}
