// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Body is the extrinsics inside a block
type Body []Extrinsic

// NewBody returns a Body from an Extrinsic array
func NewBody(e []Extrinsic) *Body {
	body := Body(e)
	return &body
}

// Encode returns the SCALE encoding of the body
func (b Body) Encode() ([]byte, error) {
	return scale.Marshal(b.AsEncodedExtrinsics())
}

// DecodeBody decodes a SCALE encoded body
func DecodeBody(in []byte) (*Body, error) {
	var exts [][]byte
	err := scale.Unmarshal(in, &exts)
	if err != nil {
		return nil, fmt.Errorf("cannot decode body: %w", err)
	}
	body := NewBodyFromEncodedExtrinsics(exts)
	return &body, nil
}

// Root returns the extrinsics root of the body,
// the blake2b hash of its SCALE encoding.
func (b Body) Root() (common.Hash, error) {
	enc, err := b.Encode()
	if err != nil {
		return common.Hash{}, err
	}
	return common.Blake2bHash(enc)
}

// AsEncodedExtrinsics returns the extrinsics as byte arrays
func (b Body) AsEncodedExtrinsics() [][]byte {
	encoded := make([][]byte, len(b))
	for i, ext := range b {
		encoded[i] = ext
	}
	return encoded
}

// NewBodyFromEncodedExtrinsics returns a Body from extrinsics given as byte arrays
func NewBodyFromEncodedExtrinsics(encoded [][]byte) Body {
	body := make(Body, len(encoded))
	for i, ext := range encoded {
		body[i] = ext
	}
	return body
}
