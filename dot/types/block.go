// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Block defines a parachain block
type Block struct {
	Header Header
	Body   Body
}

// NewBlock returns a new Block
func NewBlock(header Header, body Body) Block {
	return Block{
		Header: header,
		Body:   body,
	}
}

// NewEmptyBlock returns a new Block with an initialised but empty Header and Body
func NewEmptyBlock() Block {
	return Block{
		Header: *NewEmptyHeader(),
		Body:   Body{},
	}
}

type blockWire struct {
	Header headerWire
	Body   [][]byte
}

// Encode returns the SCALE encoding of a block
func (b *Block) Encode() ([]byte, error) {
	return scale.Marshal(blockWire{
		Header: headerWire{
			ParentHash:     b.Header.ParentHash,
			Number:         b.Header.Number,
			StateRoot:      b.Header.StateRoot,
			ExtrinsicsRoot: b.Header.ExtrinsicsRoot,
			Digest:         b.Header.Digest.toWire(),
		},
		Body: b.Body.AsEncodedExtrinsics(),
	})
}

// DecodeBlock decodes a SCALE encoded block
func DecodeBlock(in []byte) (*Block, error) {
	var wire blockWire
	err := scale.Unmarshal(in, &wire)
	if err != nil {
		return nil, fmt.Errorf("cannot decode block: %w", err)
	}

	digest, err := digestFromWire(wire.Header.Digest)
	if err != nil {
		return nil, fmt.Errorf("cannot decode block digest: %w", err)
	}

	return &Block{
		Header: Header{
			ParentHash:     wire.Header.ParentHash,
			Number:         wire.Header.Number,
			StateRoot:      wire.Header.StateRoot,
			ExtrinsicsRoot: wire.Header.ExtrinsicsRoot,
			Digest:         digest,
		},
		Body: NewBodyFromEncodedExtrinsics(wire.Body),
	}, nil
}

// Hash returns the hash of the block header
func (b *Block) Hash() common.Hash {
	return b.Header.Hash()
}
