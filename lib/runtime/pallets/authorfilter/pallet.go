// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package authorfilter

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
)

// Name is the pallet name
const Name = "AuthorFilter"

// DefaultEligibleRatio is the default percentage of authors eligible at each relay height
const DefaultEligibleRatio uint8 = 50

var (
	// AuthorsKey is the storage key of the author set
	AuthorsKey = common.StoragePrefix(Name, "Authors")
	// EligibleRatioKey is the storage key of the eligible percentage
	EligibleRatioKey = common.StoragePrefix(Name, "EligibleRatio")
)

var (
	// ErrInvalidRatio is returned for an eligible ratio of 0 or above 100.
	ErrInvalidRatio = errors.New("eligible ratio must be between 1 and 100")
	// ErrNoAuthors is returned when building genesis without authors.
	ErrNoAuthors = errors.New("author set is empty")
)

// Pallet filters the author set down to the authors eligible at a relay height.
// It has no dispatchable calls.
type Pallet struct{}

// New returns a new author filter pallet
func New() *Pallet {
	return &Pallet{}
}

// Name returns the pallet name
func (*Pallet) Name() string { return Name }

// Dispatch rejects every call
func (*Pallet) Dispatch(_ runtime.Storage, call *runtime.Call) error {
	return fmt.Errorf("%w: %s", runtime.ErrUnknownMethod, call.Method)
}

// BuildGenesis writes the author set and eligible ratio to the genesis state
func BuildGenesis(s runtime.Storage, authors []types.AuthorID, ratio uint8) error {
	if len(authors) == 0 {
		return ErrNoAuthors
	}
	if ratio == 0 || ratio > 100 {
		return fmt.Errorf("%w: %d", ErrInvalidRatio, ratio)
	}

	err := runtime.PutValue(s, AuthorsKey, authors)
	if err != nil {
		return err
	}
	return runtime.PutValue(s, EligibleRatioKey, ratio)
}

// Authors returns the author set
func Authors(s runtime.Storage) ([]types.AuthorID, error) {
	var authors []types.AuthorID
	_, err := runtime.GetValue(s, AuthorsKey, &authors)
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// Eligible returns the authors eligible at the relay height. The author set is
// ordered by blake2b(seed ++ author) with the seed derived from the relay height,
// and the first EligibleRatio percent of the set, at least one, are eligible.
func Eligible(s runtime.Storage, relayParentNumber uint32) ([]types.AuthorID, error) {
	authors, err := Authors(s)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, nil
	}

	ratio := DefaultEligibleRatio
	_, err = runtime.GetValue(s, EligibleRatioKey, &ratio)
	if err != nil {
		return nil, err
	}

	height := make([]byte, 4)
	binary.LittleEndian.PutUint32(height, relayParentNumber)
	seed, err := common.Blake2bHash(height)
	if err != nil {
		return nil, err
	}

	type scored struct {
		author types.AuthorID
		score  common.Hash
	}
	ordered := make([]scored, len(authors))
	for i, author := range authors {
		score, err := common.Blake2bHash(append(seed.ToBytes(), author[:]...))
		if err != nil {
			return nil, err
		}
		ordered[i] = scored{author: author, score: score}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return bytes.Compare(ordered[i].score[:], ordered[j].score[:]) < 0
	})

	count := (len(authors)*int(ratio) + 99) / 100
	if count < 1 {
		count = 1
	}

	eligible := make([]types.AuthorID, count)
	for i := range eligible {
		eligible[i] = ordered[i].author
	}
	return eligible, nil
}

// CanAuthor returns true if the author is eligible at the relay height
func CanAuthor(s runtime.Storage, author types.AuthorID, relayParentNumber uint32) (bool, error) {
	eligible, err := Eligible(s, relayParentNumber)
	if err != nil {
		return false, err
	}

	for _, e := range eligible {
		if e == author {
			return true, nil
		}
	}
	return false, nil
}
