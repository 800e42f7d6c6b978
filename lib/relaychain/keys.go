// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package relaychain

import (
	"encoding/binary"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
)

// Relay chain storage keys read by the parachain runtime through the relay state proof
var (
	CurrentSlotKey  = common.StoragePrefix("Babe", "CurrentSlot")
	ActiveConfigKey = common.StoragePrefix("Configuration", "ActiveConfig")
)

func paraKey(pallet, item string, paraID types.ParaID) []byte {
	id := make([]byte, 4)
	binary.LittleEndian.PutUint32(id, uint32(paraID))
	return append(common.StoragePrefix(pallet, item), common.Twox64Concat(id)...)
}

// DmqMqcHeadKey is the key of the downward message queue chain head of the para
func DmqMqcHeadKey(paraID types.ParaID) []byte {
	return paraKey("Dmp", "DownwardMessageQueueHeads", paraID)
}

// RelayDispatchQueueSizeKey is the key of the upward message queue size of the para
func RelayDispatchQueueSizeKey(paraID types.ParaID) []byte {
	return paraKey("Ump", "RelayDispatchQueueSize", paraID)
}

// HrmpIngressChannelIndexKey is the key of the list of senders with a channel to the para
func HrmpIngressChannelIndexKey(paraID types.ParaID) []byte {
	return paraKey("Hrmp", "HrmpIngressChannelsIndex", paraID)
}

// HrmpEgressChannelIndexKey is the key of the list of recipients of a channel from the para
func HrmpEgressChannelIndexKey(paraID types.ParaID) []byte {
	return paraKey("Hrmp", "HrmpEgressChannelsIndex", paraID)
}

// UpgradeGoAheadSignalKey is the key of the code upgrade go-ahead signal of the para
func UpgradeGoAheadSignalKey(paraID types.ParaID) []byte {
	return paraKey("Paras", "UpgradeGoAheadSignal", paraID)
}

// UpgradeRestrictionSignalKey is the key of the code upgrade restriction signal of the para
func UpgradeRestrictionSignalKey(paraID types.ParaID) []byte {
	return paraKey("Paras", "UpgradeRestrictionSignal", paraID)
}

// WellKnownKeys returns the relay chain keys proven in the parachain inherent of the para
func WellKnownKeys(paraID types.ParaID) [][]byte {
	return [][]byte{
		CurrentSlotKey,
		ActiveConfigKey,
		DmqMqcHeadKey(paraID),
		RelayDispatchQueueSizeKey(paraID),
		HrmpIngressChannelIndexKey(paraID),
		HrmpEgressChannelIndexKey(paraID),
		UpgradeGoAheadSignalKey(paraID),
		UpgradeRestrictionSignalKey(paraID),
	}
}
