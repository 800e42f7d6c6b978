// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package native

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
)

func (in *Instance) initializeBlock(header *types.Header) error {
	s := in.ctx

	digest, err := header.Digest.Encode()
	if err != nil {
		return fmt.Errorf("encoding digest: %w", err)
	}

	err = runtime.PutValue(s, NumberKey, uint64(header.Number))
	if err != nil {
		return err
	}
	s.Set(ParentHashKey, header.ParentHash.ToBytes())
	s.Set(DigestKey, digest)
	s.Delete(ExtrinsicDataKey)

	for _, pallet := range in.pallets {
		hooks, ok := pallet.(runtime.Hooks)
		if !ok {
			continue
		}
		err = hooks.OnInitialize(s, header.Number)
		if err != nil {
			return fmt.Errorf("initialising %s: %w", pallet.Name(), err)
		}
	}

	logger.Debugf("initialised block %d with parent %s", header.Number, header.ParentHash)
	return nil
}

func (in *Instance) inherentExtrinsics(data *types.InherentData) ([]types.Extrinsic, error) {
	var exts []types.Extrinsic
	for _, pallet := range in.pallets {
		inherentPallet, ok := pallet.(runtime.InherentPallet)
		if !ok {
			continue
		}

		call, err := inherentPallet.CreateInherent(data)
		if err != nil {
			return nil, fmt.Errorf("creating %s inherent: %w", pallet.Name(), err)
		}
		if call == nil {
			continue
		}

		ext, err := call.Extrinsic()
		if err != nil {
			return nil, fmt.Errorf("encoding %s inherent: %w", pallet.Name(), err)
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

// applyExtrinsic dispatches the call of the extrinsic in a storage transaction.
// A failed inherent dispatch is a fatal inherent error.
func (in *Instance) applyExtrinsic(ext types.Extrinsic) error {
	s := in.ctx
	if !s.Has(DigestKey) {
		return runtime.ErrBlockNotInitialised
	}

	call, err := runtime.DecodeCall(ext)
	if err != nil {
		return err
	}

	pallet, ok := in.byName[call.Pallet]
	if !ok {
		return fmt.Errorf("%w: %s", runtime.ErrUnknownPallet, call.Pallet)
	}

	s.BeginStorageTransaction()
	err = pallet.Dispatch(s, call)
	if err != nil {
		s.RollbackStorageTransaction()
		dispatchErr := &runtime.DispatchError{Pallet: call.Pallet, Method: call.Method, Err: err}
		if inherentPallet, ok := pallet.(runtime.InherentPallet); ok && inherentPallet.IsInherent(call) {
			return runtime.NewFatalInherentError(inherentPallet.InherentIdentifier(), dispatchErr)
		}
		return dispatchErr
	}
	s.CommitStorageTransaction()

	var extrinsics [][]byte
	_, err = runtime.GetValue(s, ExtrinsicDataKey, &extrinsics)
	if err != nil {
		return err
	}
	return runtime.PutValue(s, ExtrinsicDataKey, append(extrinsics, ext))
}

func (in *Instance) finalizeBlock() (*types.Header, error) {
	s := in.ctx

	encodedDigest := s.Get(DigestKey)
	if encodedDigest == nil {
		return nil, runtime.ErrBlockNotInitialised
	}
	digest, err := types.DecodeDigest(encodedDigest)
	if err != nil {
		return nil, err
	}

	for _, pallet := range in.pallets {
		hooks, ok := pallet.(runtime.Hooks)
		if !ok {
			continue
		}
		err = hooks.OnFinalize(s)
		if err != nil {
			return nil, fmt.Errorf("finalising %s: %w", pallet.Name(), err)
		}
	}

	var extrinsics [][]byte
	_, err = runtime.GetValue(s, ExtrinsicDataKey, &extrinsics)
	if err != nil {
		return nil, err
	}
	extrinsicsRoot, err := types.NewBodyFromEncodedExtrinsics(extrinsics).Root()
	if err != nil {
		return nil, fmt.Errorf("computing extrinsics root: %w", err)
	}

	var number uint64
	_, err = runtime.GetValue(s, NumberKey, &number)
	if err != nil {
		return nil, err
	}
	parentHash := common.NewHash(s.Get(ParentHashKey))

	s.Delete(DigestKey)
	s.Delete(ExtrinsicDataKey)

	stateRoot, err := s.Root()
	if err != nil {
		return nil, fmt.Errorf("computing state root: %w", err)
	}

	header := types.NewHeader(parentHash, stateRoot, extrinsicsRoot, uint(number), digest)
	logger.Debugf("finalised block %d with state root %s", number, stateRoot)
	return header, nil
}

// stripSeal returns a copy of the header without the filtering seal.
// A header carrying more than one seal is rejected.
func stripSeal(header *types.Header) (*types.Header, error) {
	seals := header.Digest.Seals(types.FilteringEngineID)
	if len(seals) > 1 {
		return nil, fmt.Errorf("%w: %d", runtime.ErrMultipleSeals, len(seals))
	}

	stripped := header.DeepCopy()
	stripped.Digest = stripped.Digest.Without(types.FilteringEngineID)
	return stripped, nil
}

func (in *Instance) executeBlock(block *types.Block) error {
	header, err := stripSeal(&block.Header)
	if err != nil {
		return err
	}

	err = in.initializeBlock(header)
	if err != nil {
		return err
	}

	for i, ext := range block.Body {
		err = in.applyExtrinsic(ext)
		if err != nil {
			return fmt.Errorf("applying extrinsic %d: %w", i, err)
		}
	}

	executed, err := in.finalizeBlock()
	if err != nil {
		return err
	}

	if executed.ExtrinsicsRoot != header.ExtrinsicsRoot {
		return fmt.Errorf("%w: expected %s, got %s",
			runtime.ErrExtrinsicsRootMismatch, header.ExtrinsicsRoot, executed.ExtrinsicsRoot)
	}
	if executed.StateRoot != header.StateRoot {
		return fmt.Errorf("%w: expected %s, got %s",
			runtime.ErrStateRootMismatch, header.StateRoot, executed.StateRoot)
	}
	return nil
}

// checkInherents checks every inherent of the block against the inherent data.
// Each inherent is checked on the state left by the extrinsics before it.
// A fatal error is returned immediately, a non fatal one once every inherent is checked.
func (in *Instance) checkInherents(block *types.Block, data *types.InherentData) error {
	header, err := stripSeal(&block.Header)
	if err != nil {
		return err
	}

	err = in.initializeBlock(header)
	if err != nil {
		return err
	}

	var nonFatal error
	for i, ext := range block.Body {
		call, err := runtime.DecodeCall(ext)
		if err != nil {
			return fmt.Errorf("decoding extrinsic %d: %w", i, err)
		}

		if inherentPallet, ok := in.byName[call.Pallet].(runtime.InherentPallet); ok && inherentPallet.IsInherent(call) {
			err = inherentPallet.CheckInherent(in.ctx, call, data)
			var inherentErr *runtime.InherentError
			switch {
			case err == nil:
			case errors.As(err, &inherentErr) && !inherentErr.Fatal:
				if nonFatal == nil {
					nonFatal = err
				}
			default:
				return fmt.Errorf("checking extrinsic %d: %w", i, err)
			}
		}

		err = in.applyExtrinsic(ext)
		if err != nil {
			return fmt.Errorf("applying extrinsic %d: %w", i, err)
		}
	}

	return nonFatal
}
