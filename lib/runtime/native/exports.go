// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package native

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// InitializeBlock calls runtime API function Core_initialize_block
func (in *Instance) InitializeBlock(header *types.Header) error {
	encodedHeader, err := header.Encode()
	if err != nil {
		return fmt.Errorf("cannot encode header: %w", err)
	}

	_, err = in.Exec(runtime.CoreInitializeBlock, encodedHeader)
	return err
}

// InherentExtrinsics calls runtime API function BlockBuilder_inherent_extrinsics
func (in *Instance) InherentExtrinsics(data *types.InherentData) ([]types.Extrinsic, error) {
	enc, err := data.Encode()
	if err != nil {
		return nil, fmt.Errorf("cannot encode inherent data: %w", err)
	}

	ret, err := in.Exec(runtime.BlockBuilderInherentExtrinsics, enc)
	if err != nil {
		return nil, err
	}

	var exts [][]byte
	err = scale.Unmarshal(ret, &exts)
	if err != nil {
		return nil, fmt.Errorf("cannot decode inherent extrinsics: %w", err)
	}
	return types.NewBodyFromEncodedExtrinsics(exts), nil
}

// ApplyExtrinsic calls runtime API function BlockBuilder_apply_extrinsic
func (in *Instance) ApplyExtrinsic(ext types.Extrinsic) error {
	_, err := in.Exec(runtime.BlockBuilderApplyExtrinsic, ext)
	return err
}

// FinalizeBlock calls runtime API function BlockBuilder_finalize_block
func (in *Instance) FinalizeBlock() (*types.Header, error) {
	data, err := in.Exec(runtime.BlockBuilderFinalizeBlock, []byte{})
	if err != nil {
		return nil, err
	}

	return types.DecodeHeader(data)
}

// ExecuteBlock calls runtime function Core_execute_block
func (in *Instance) ExecuteBlock(block *types.Block) error {
	enc, err := block.Encode()
	if err != nil {
		return fmt.Errorf("cannot encode block: %w", err)
	}

	_, err = in.Exec(runtime.CoreExecuteBlock, enc)
	return err
}

// CheckInherents calls runtime API function BlockBuilder_check_inherents
func (in *Instance) CheckInherents(block *types.Block, data *types.InherentData) error {
	encodedBlock, err := block.Encode()
	if err != nil {
		return fmt.Errorf("cannot encode block: %w", err)
	}
	encodedData, err := data.Encode()
	if err != nil {
		return fmt.Errorf("cannot encode inherent data: %w", err)
	}

	args, err := scale.Marshal(checkInherentsArgs{
		Block:        encodedBlock,
		InherentData: encodedData,
	})
	if err != nil {
		return err
	}

	_, err = in.Exec(runtime.BlockBuilderCheckInherents, args)
	return err
}

// CanAuthor calls runtime API function AuthorFilterAPI_can_author
func (in *Instance) CanAuthor(author types.AuthorID, relayParentNumber uint32) (bool, error) {
	args, err := scale.Marshal(canAuthorArgs{
		Author:            author,
		RelayParentNumber: relayParentNumber,
	})
	if err != nil {
		return false, err
	}

	ret, err := in.Exec(runtime.AuthorFilterAPICanAuthor, args)
	if err != nil {
		return false, err
	}

	var ok bool
	err = scale.Unmarshal(ret, &ok)
	if err != nil {
		return false, fmt.Errorf("cannot decode can author result: %w", err)
	}
	return ok, nil
}
