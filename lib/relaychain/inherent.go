// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relaychain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "relaychain"))

// ErrStaleValidationData is returned when the validation data no longer
// matches the one the relay chain holds for the relay parent.
var ErrStaleValidationData = errors.New("stale validation data")

// CreateParachainInherentData returns the parachain system inherent proving the
// relay chain state at the relay parent, for the para.
func CreateParachainInherentData(ctx context.Context, relay Interface, paraID types.ParaID,
	relayParent common.Hash, vd *types.PersistedValidationData) (*types.ParachainInherentData, error) {
	current, err := relay.PersistedValidationData(ctx, relayParent, paraID)
	if err != nil {
		return nil, fmt.Errorf("getting validation data at relay parent %s: %w", relayParent, err)
	}
	if current == nil || current.RelayParentNumber != vd.RelayParentNumber ||
		current.RelayParentStorageRoot != vd.RelayParentStorageRoot {
		return nil, fmt.Errorf("%w: relay parent %s number %d", ErrStaleValidationData,
			relayParent, vd.RelayParentNumber)
	}

	proof, err := relay.ProveRead(ctx, relayParent, WellKnownKeys(paraID))
	if err != nil {
		return nil, fmt.Errorf("proving relay chain state at %s: %w", relayParent, err)
	}

	downward, err := relay.DownwardMessages(ctx, relayParent, paraID)
	if err != nil {
		return nil, fmt.Errorf("getting downward messages at %s: %w", relayParent, err)
	}

	horizontal, err := relay.InboundHrmpChannelsContents(ctx, relayParent, paraID)
	if err != nil {
		return nil, fmt.Errorf("getting horizontal messages at %s: %w", relayParent, err)
	}

	data := &types.ParachainInherentData{
		ValidationData:     *vd,
		RelayChainState:    proof,
		DownwardMessages:   downward,
		HorizontalMessages: horizontal,
	}
	data.SortHorizontalMessages()

	logger.Debugf("created parachain inherent data at relay parent %s with %d proof nodes, "+
		"%d downward messages and %d horizontal channels",
		relayParent, proof.Len(), len(downward), len(horizontal))
	return data, nil
}

// Follow sends a notification for every new relay chain head at which the para
// is scheduled, until the context is canceled or the heads channel is closed.
func Follow(ctx context.Context, relay Interface, paraID types.ParaID, out chan<- Notification) error {
	heads, err := relay.NewHeads(ctx)
	if err != nil {
		return fmt.Errorf("subscribing to relay chain heads: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case head, ok := <-heads:
			if !ok {
				return nil
			}

			vd, err := relay.PersistedValidationData(ctx, head.Hash, paraID)
			if err != nil {
				logger.Warnf("cannot get validation data at relay block %s: %s", head.Hash, err)
				continue
			}
			if vd == nil {
				logger.Tracef("para %d is not scheduled at relay block %s", paraID, head.Hash)
				continue
			}

			select {
			case out <- Notification{RelayParent: head.Hash, ValidationData: *vd}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
