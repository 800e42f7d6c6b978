// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package native

import (
	"github.com/ChainSafe/filtering-collator/lib/common"
)

const systemPallet = "System"

var (
	// NumberKey is the storage key of the current block number
	NumberKey = common.StoragePrefix(systemPallet, "Number")
	// ParentHashKey is the storage key of the current block parent hash
	ParentHashKey = common.StoragePrefix(systemPallet, "ParentHash")
	// DigestKey is the storage key of the digest of the block being built. It is removed at finalisation.
	DigestKey = common.StoragePrefix(systemPallet, "Digest")
	// ExtrinsicDataKey is the storage key of the extrinsics applied in the block being built.
	// It is removed at finalisation.
	ExtrinsicDataKey = common.StoragePrefix(systemPallet, "ExtrinsicData")
)
