// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/ChainSafe/filtering-collator/lib/common"
)

// Extrinsic is a SCALE encoded runtime call. The chain only
// carries inherent extrinsics, so they are never signed.
type Extrinsic []byte

// NewExtrinsic creates a new Extrinsic given a byte slice
func NewExtrinsic(e []byte) Extrinsic {
	return Extrinsic(e)
}

func (e Extrinsic) String() string {
	return common.BytesToHex(e)
}

// Hash returns the blake2b hash of the extrinsic
func (e Extrinsic) Hash() common.Hash {
	return common.MustBlake2bHash(e)
}
