// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Header is a parachain block header
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         uint        `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         Digest      `json:"digest"`
}

// NewHeader creates a new block header
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint, digest Digest) *Header {
	return &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

// NewEmptyHeader returns a new header with all zero values
func NewEmptyHeader() *Header {
	return &Header{
		Digest: NewDigest(),
	}
}

type headerWire struct {
	ParentHash     common.Hash
	Number         uint
	StateRoot      common.Hash
	ExtrinsicsRoot common.Hash
	Digest         []digestItemWire
}

// Encode returns the SCALE encoding of the header
func (bh *Header) Encode() ([]byte, error) {
	return scale.Marshal(headerWire{
		ParentHash:     bh.ParentHash,
		Number:         bh.Number,
		StateRoot:      bh.StateRoot,
		ExtrinsicsRoot: bh.ExtrinsicsRoot,
		Digest:         bh.Digest.toWire(),
	})
}

// DecodeHeader decodes a SCALE encoded header
func DecodeHeader(in []byte) (*Header, error) {
	var wire headerWire
	err := scale.Unmarshal(in, &wire)
	if err != nil {
		return nil, fmt.Errorf("cannot decode header: %w", err)
	}

	digest, err := digestFromWire(wire.Digest)
	if err != nil {
		return nil, fmt.Errorf("cannot decode header digest: %w", err)
	}

	return &Header{
		ParentHash:     wire.ParentHash,
		Number:         wire.Number,
		StateRoot:      wire.StateRoot,
		ExtrinsicsRoot: wire.ExtrinsicsRoot,
		Digest:         digest,
	}, nil
}

// Hash returns the blake2b hash of the SCALE encoded header.
// The hash is not cached since the header fields are exported.
func (bh *Header) Hash() common.Hash {
	enc, err := bh.Encode()
	if err != nil {
		panic(err)
	}

	return common.MustBlake2bHash(enc)
}

// DeepCopy returns a deep copy of the header
func (bh *Header) DeepCopy() *Header {
	cp := &Header{
		ParentHash:     bh.ParentHash,
		Number:         bh.Number,
		StateRoot:      bh.StateRoot,
		ExtrinsicsRoot: bh.ExtrinsicsRoot,
		Digest:         make(Digest, len(bh.Digest)),
	}

	for i, item := range bh.Digest {
		data := append([]byte{}, item.Payload()...)
		switch d := item.(type) {
		case PreRuntimeDigest:
			cp.Digest[i] = PreRuntimeDigest{ConsensusEngineID: d.ConsensusEngineID, Data: data}
		case ConsensusDigest:
			cp.Digest[i] = ConsensusDigest{ConsensusEngineID: d.ConsensusEngineID, Data: data}
		case SealDigest:
			cp.Digest[i] = SealDigest{ConsensusEngineID: d.ConsensusEngineID, Data: data}
		default:
			cp.Digest[i] = item
		}
	}

	return cp
}

// String returns the formatted header as a string
func (bh Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest)
}
