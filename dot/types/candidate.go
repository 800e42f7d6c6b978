// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/klauspost/compress/zstd"
)

// zstdPrefix marks a zstd compressed blob
// ref: https://github.com/paritytech/substrate/blob/master/primitives/maybe-compressed-blob/src/lib.rs
var zstdPrefix = []byte{82, 188, 83, 118, 70, 219, 142, 5}

// ErrBlobTooLarge is returned when a decompressed blob exceeds the size limit.
var ErrBlobTooLarge = errors.New("blob exceeds size limit")

// Proposal is the result of proposing a block on top of a parent
type Proposal struct {
	Block          Block
	StorageChanges StorageChanges
	Proof          StorageProof
}

// Candidate is a sealed and locally imported parachain block with the
// storage proof needed to validate it.
type Candidate struct {
	// Block has the post-seal header.
	Block Block
	Proof StorageProof
}

// ParachainBlockData is the proof of validity handed to relay chain validators
type ParachainBlockData struct {
	Header       []byte
	Extrinsics   [][]byte
	StorageProof StorageProof
}

// NewParachainBlockData returns the block data of a candidate
func NewParachainBlockData(candidate *Candidate) (*ParachainBlockData, error) {
	header, err := candidate.Block.Header.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}

	return &ParachainBlockData{
		Header:       header,
		Extrinsics:   candidate.Block.Body.AsEncodedExtrinsics(),
		StorageProof: candidate.Proof,
	}, nil
}

// CollationSigningPayload is signed by the collator author key
type CollationSigningPayload struct {
	RelayParent common.Hash
	ParaID      uint32
	HeadHash    common.Hash
	PoVHash     common.Hash
}

// Collation is a candidate packaged for submission to the relay chain
type Collation struct {
	RelayParent common.Hash
	ParaID      ParaID
	Collator    AuthorID
	Signature   [64]byte
	HeadData    HeadData
	// PoV is the SCALE encoded ParachainBlockData, possibly zstd compressed.
	PoV []byte
}

// SigningPayload returns the SCALE encoded payload the collator signs
func (c *Collation) SigningPayload() ([]byte, error) {
	return scale.Marshal(CollationSigningPayload{
		RelayParent: c.RelayParent,
		ParaID:      uint32(c.ParaID),
		HeadHash:    common.MustBlake2bHash(c.HeadData),
		PoVHash:     common.MustBlake2bHash(c.PoV),
	})
}

type collationWire struct {
	RelayParent common.Hash
	ParaID      uint32
	Collator    AuthorID
	Signature   [64]byte
	HeadData    []byte
	PoV         []byte
}

// Encode returns the SCALE encoding of the collation
func (c *Collation) Encode() ([]byte, error) {
	return scale.Marshal(collationWire{
		RelayParent: c.RelayParent,
		ParaID:      uint32(c.ParaID),
		Collator:    c.Collator,
		Signature:   c.Signature,
		HeadData:    c.HeadData,
		PoV:         c.PoV,
	})
}

// DecodeCollation decodes a SCALE encoded collation
func DecodeCollation(in []byte) (*Collation, error) {
	var wire collationWire
	err := scale.Unmarshal(in, &wire)
	if err != nil {
		return nil, fmt.Errorf("cannot decode collation: %w", err)
	}
	return &Collation{
		RelayParent: wire.RelayParent,
		ParaID:      ParaID(wire.ParaID),
		Collator:    wire.Collator,
		Signature:   wire.Signature,
		HeadData:    wire.HeadData,
		PoV:         wire.PoV,
	}, nil
}

// CompressBlob compresses the blob with zstd and prefixes it with the compression magic
func CompressBlob(blob []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	defer encoder.Close()

	out := append([]byte{}, zstdPrefix...)
	return encoder.EncodeAll(blob, out), nil
}

// MaybeDecompressBlob decompresses a blob if it carries the compression magic,
// otherwise it returns the blob unchanged.
func MaybeDecompressBlob(blob []byte, limit uint64) ([]byte, error) {
	if !bytes.HasPrefix(blob, zstdPrefix) {
		if uint64(len(blob)) > limit {
			return nil, fmt.Errorf("%w: %d > %d", ErrBlobTooLarge, len(blob), limit)
		}
		return blob, nil
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(limit))
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	out, err := decoder.DecodeAll(blob[len(zstdPrefix):], nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing blob: %w", err)
	}
	if uint64(len(out)) > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrBlobTooLarge, len(out), limit)
	}
	return out, nil
}
