// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"github.com/ChainSafe/filtering-collator/dot/types"
)

// sealBlock turns a proposal into import params. The seal goes to the post
// digests so the proposed header is left untouched. Fork choice is left to
// the relay chain.
func sealBlock(proposal *types.Proposal) *types.BlockImportParams {
	params := types.NewBlockImportParams(types.BlockOriginOwn, proposal.Block.Header)
	params.PostDigests = append(params.PostDigests, types.NewFilteringSeal())
	params.Body = proposal.Block.Body
	params.ForkChoice = types.ForkChoiceCustom(false)

	changes := proposal.StorageChanges
	params.StorageChanges = &changes
	return params
}
