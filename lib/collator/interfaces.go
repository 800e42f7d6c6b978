// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"context"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/keystore"
	"github.com/ChainSafe/filtering-collator/lib/runtime/storage"
)

// EligibilityOracle tells if an author may build on top of a block
// for the given relay chain height.
type EligibilityOracle interface {
	CanAuthor(at common.Hash, author types.AuthorID, relayParentNumber uint32) (bool, error)
}

// ProposerFactory creates a proposer on top of a parent header
type ProposerFactory interface {
	Init(parent *types.Header) (Proposer, error)
}

// Proposer builds a single block. The context carries the proposal budget.
type Proposer interface {
	Propose(ctx context.Context, data *types.InherentData, digest types.Digest) (*types.Proposal, error)
}

// BlockImporter imports a block without executing it again
type BlockImporter interface {
	ImportBlock(params *types.BlockImportParams) error
}

// BlockVerifier verifies a sealed block against the inherent data it was built with
type BlockVerifier interface {
	VerifyBlock(block *types.Block, data *types.InherentData) error
}

// InherentDataCreator creates the inherent data of a candidate built
// against the relay parent.
type InherentDataCreator interface {
	CreateInherentData(ctx context.Context, vd *types.PersistedValidationData,
		relayParent common.Hash) (*types.InherentData, error)
}

// Keystore holds the author keys
type Keystore interface {
	HasKey(author types.AuthorID) bool
	GetKeypair(author types.AuthorID) (*keystore.Keypair, error)
}

// CollationSubmitter hands collations over to the relay chain
type CollationSubmitter interface {
	SubmitCollation(collation *types.Collation) error
}

// TrieStateGetter returns the state of a block
type TrieStateGetter interface {
	TrieState(hash common.Hash) (*storage.TrieState, error)
}

// BlockState is the parachain block state the service follows
type BlockState interface {
	HasHeader(hash common.Hash) (bool, error)
	SetBestBlockHash(hash common.Hash) error
}
