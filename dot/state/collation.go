// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
)

const collationPrefix = "collation"

// CollationState keeps the collations produced by this node, by relay parent
type CollationState struct {
	db chaindb.Database
}

// NewCollationState returns a new CollationState
func NewCollationState(db chaindb.Database) *CollationState {
	return &CollationState{
		db: chaindb.NewTable(db, collationPrefix),
	}
}

// SubmitCollation stores the collation under its relay parent,
// replacing any collation stored for the same relay parent.
func (s *CollationState) SubmitCollation(collation *types.Collation) error {
	enc, err := collation.Encode()
	if err != nil {
		return fmt.Errorf("cannot encode collation: %w", err)
	}
	return s.db.Put(collation.RelayParent.ToBytes(), enc)
}

// GetCollation returns the collation produced for the relay parent
func (s *CollationState) GetCollation(relayParent common.Hash) (*types.Collation, error) {
	enc, err := s.db.Get(relayParent.ToBytes())
	if err != nil {
		return nil, fmt.Errorf("getting collation for relay parent %s: %w", relayParent, err)
	}
	return types.DecodeCollation(enc)
}
