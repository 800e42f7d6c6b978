// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/lib/common"
)

// BlockOrigin is the origin of a block being imported
type BlockOrigin byte

const (
	// BlockOriginGenesis is the genesis block written at initialisation
	BlockOriginGenesis BlockOrigin = iota
	// BlockOriginOwn is a block authored by this node
	BlockOriginOwn
)

func (o BlockOrigin) String() string {
	switch o {
	case BlockOriginGenesis:
		return "genesis"
	case BlockOriginOwn:
		return "own"
	default:
		return fmt.Sprintf("unknown origin %d", byte(o))
	}
}

// ForkChoiceStrategy tells the importer how to treat the imported block
// with respect to the best block.
type ForkChoiceStrategy struct {
	// Custom is true when the caller decides the fork choice.
	Custom bool
	// Best is the decision when Custom is true.
	Best bool
}

var (
	// ForkChoiceLongestChain makes the importer pick the longest chain
	ForkChoiceLongestChain = ForkChoiceStrategy{}
	// ForkChoiceCustomFalse leaves the best block untouched. Fork choice is
	// delegated to the relay chain.
	ForkChoiceCustomFalse = ForkChoiceStrategy{Custom: true, Best: false}
)

// ForkChoiceCustom returns a custom fork choice strategy
func ForkChoiceCustom(best bool) ForkChoiceStrategy {
	return ForkChoiceStrategy{Custom: true, Best: best}
}

func (f ForkChoiceStrategy) String() string {
	if f.Custom {
		return fmt.Sprintf("custom(%t)", f.Best)
	}
	return "longest chain"
}

// StorageChange is a single key change. A nil Value deletes the key.
type StorageChange struct {
	Key   []byte
	Value []byte
}

// StorageChanges are the state changes resulting from executing a block
// on top of its parent state.
type StorageChanges struct {
	Changes   []StorageChange
	StateRoot common.Hash
}

// BlockImportParams contains everything needed to import a block
type BlockImportParams struct {
	Origin BlockOrigin
	// Header is the pre-seal header. It is never modified by sealing.
	Header Header
	// PostDigests are appended to the header to form the post-seal header.
	PostDigests    []DigestItem
	Body           Body
	StorageChanges *StorageChanges
	ForkChoice     ForkChoiceStrategy
}

// NewBlockImportParams returns import params for the header with empty post digests
func NewBlockImportParams(origin BlockOrigin, header Header) *BlockImportParams {
	return &BlockImportParams{
		Origin:      origin,
		Header:      header,
		PostDigests: []DigestItem{},
		ForkChoice:  ForkChoiceLongestChain,
	}
}

// PostHeader returns a copy of the header with the post digests appended
func (p *BlockImportParams) PostHeader() *Header {
	header := p.Header.DeepCopy()
	header.Digest = append(header.Digest, p.PostDigests...)
	return header
}

// PostHash returns the hash of the post-seal header
func (p *BlockImportParams) PostHash() common.Hash {
	return p.PostHeader().Hash()
}
