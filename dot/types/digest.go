// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

// ConsensusEngineID is a 4-character identifier of the consensus engine that produced the digest.
type ConsensusEngineID [4]byte

// NewConsensusEngineID casts a byte array to ConsensusEngineID
// if the input is longer than 4 bytes, it takes the first 4 bytes
func NewConsensusEngineID(in []byte) (res ConsensusEngineID) {
	copy(res[:], in)
	return res
}

// ToBytes turns ConsensusEngineID to a byte array
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

// FilteringEngineID is the engine id of the seal appended to blocks
// produced by the filtering collator.
var FilteringEngineID = ConsensusEngineID{'f', 'i', 'l', 't'}

// AuraEngineID is the hard-coded aura ID
var AuraEngineID = ConsensusEngineID{'a', 'u', 'r', 'a'}

const (
	// ConsensusDigestType is the byte representation of ConsensusDigest
	ConsensusDigestType = byte(4)
	// SealDigestType is the byte representation of SealDigest
	SealDigestType = byte(5)
	// PreRuntimeDigestType is the byte representation of PreRuntimeDigest
	PreRuntimeDigestType = byte(6)
)

// ErrUnsupportedDigestItem is returned when decoding a digest item
// of a type this node does not know about.
var ErrUnsupportedDigestItem = errors.New("unsupported digest item type")

// DigestItem can be of one of three types of digest: PreRuntimeDigest, ConsensusDigest, or SealDigest.
type DigestItem interface {
	fmt.Stringer
	Type() byte
	EngineID() ConsensusEngineID
	Payload() []byte
}

// PreRuntimeDigest contains messages from the consensus engine to the runtime.
type PreRuntimeDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// Type returns PreRuntimeDigestType
func (PreRuntimeDigest) Type() byte { return PreRuntimeDigestType }

// EngineID returns the consensus engine id
func (d PreRuntimeDigest) EngineID() ConsensusEngineID { return d.ConsensusEngineID }

// Payload returns the digest data
func (d PreRuntimeDigest) Payload() []byte { return d.Data }

// String returns the digest as a string
func (d PreRuntimeDigest) String() string {
	return fmt.Sprintf("PreRuntimeDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// ConsensusDigest contains messages from the runtime to the consensus engine.
type ConsensusDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// Type returns ConsensusDigestType
func (ConsensusDigest) Type() byte { return ConsensusDigestType }

// EngineID returns the consensus engine id
func (d ConsensusDigest) EngineID() ConsensusEngineID { return d.ConsensusEngineID }

// Payload returns the digest data
func (d ConsensusDigest) Payload() []byte { return d.Data }

// String returns the digest as a string
func (d ConsensusDigest) String() string {
	return fmt.Sprintf("ConsensusDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// SealDigest contains the seal or signature. This is only used by native code.
type SealDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

// NewFilteringSeal returns the seal appended to blocks produced by the filtering collator.
// Its payload is empty.
func NewFilteringSeal() SealDigest {
	return SealDigest{
		ConsensusEngineID: FilteringEngineID,
		Data:              []byte{},
	}
}

// Type returns SealDigestType
func (SealDigest) Type() byte { return SealDigestType }

// EngineID returns the consensus engine id
func (d SealDigest) EngineID() ConsensusEngineID { return d.ConsensusEngineID }

// Payload returns the digest data
func (d SealDigest) Payload() []byte { return d.Data }

// String returns the digest as a string
func (d SealDigest) String() string {
	return fmt.Sprintf("SealDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Digest represents the block digest. It consists of digest items.
type Digest []DigestItem

// NewDigest returns a new Digest from the given DigestItems
func NewDigest(items ...DigestItem) Digest {
	return append(Digest{}, items...)
}

// Seals returns the seal digest items produced by the given engine.
func (d Digest) Seals(engineID ConsensusEngineID) (seals []SealDigest) {
	for _, item := range d {
		seal, ok := item.(SealDigest)
		if ok && seal.ConsensusEngineID == engineID {
			seals = append(seals, seal)
		}
	}
	return seals
}

// Without returns a copy of the digest without the seal items of the given engine.
func (d Digest) Without(engineID ConsensusEngineID) Digest {
	out := make(Digest, 0, len(d))
	for _, item := range d {
		seal, ok := item.(SealDigest)
		if ok && seal.ConsensusEngineID == engineID {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Encode returns the SCALE encoding of the digest
func (d Digest) Encode() ([]byte, error) {
	return scale.Marshal(d.toWire())
}

// DecodeDigest decodes a SCALE encoded digest
func DecodeDigest(in []byte) (Digest, error) {
	var items []digestItemWire
	err := scale.Unmarshal(in, &items)
	if err != nil {
		return nil, fmt.Errorf("cannot decode digest: %w", err)
	}
	return digestFromWire(items)
}

// digestItemWire is the SCALE representation shared by the
// pre-runtime, consensus and seal digest items.
type digestItemWire struct {
	Type              byte
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

func (d Digest) toWire() []digestItemWire {
	items := make([]digestItemWire, len(d))
	for i, item := range d {
		items[i] = digestItemWire{
			Type:              item.Type(),
			ConsensusEngineID: item.EngineID(),
			Data:              item.Payload(),
		}
		if items[i].Data == nil {
			items[i].Data = []byte{}
		}
	}
	return items
}

func digestFromWire(items []digestItemWire) (Digest, error) {
	digest := make(Digest, len(items))
	for i, item := range items {
		switch item.Type {
		case PreRuntimeDigestType:
			digest[i] = PreRuntimeDigest{ConsensusEngineID: item.ConsensusEngineID, Data: item.Data}
		case ConsensusDigestType:
			digest[i] = ConsensusDigest{ConsensusEngineID: item.ConsensusEngineID, Data: item.Data}
		case SealDigestType:
			digest[i] = SealDigest{ConsensusEngineID: item.ConsensusEngineID, Data: item.Data}
		default:
			return nil, fmt.Errorf("%w: %d at index %d", ErrUnsupportedDigestItem, item.Type, i)
		}
	}
	return digest, nil
}
