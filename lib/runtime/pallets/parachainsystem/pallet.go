// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package parachainsystem

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
)

// Name is the pallet name
const Name = "ParachainSystem"

// MethodSetValidationData is the inherent call setting the validation data of the block
const MethodSetValidationData = "set_validation_data"

var (
	// ValidationDataKey is the storage key of the validation data of the current block
	ValidationDataKey = common.StoragePrefix(Name, "ValidationData")
	// LastRelayChainBlockNumberKey is the storage key of the relay parent number of the last block
	LastRelayChainBlockNumberKey = common.StoragePrefix(Name, "LastRelayChainBlockNumber")
	// RelayStateProofKey is the storage key of the relay chain state proof of the current block
	RelayStateProofKey = common.StoragePrefix(Name, "RelayStateProof")
	// ProcessedDownwardMessagesKey is the storage key of the downward message count of the current block
	ProcessedDownwardMessagesKey = common.StoragePrefix(Name, "ProcessedDownwardMessages")
	// HrmpWatermarkKey is the storage key of the relay height up to which HRMP messages were processed
	HrmpWatermarkKey = common.StoragePrefix(Name, "HrmpWatermark")
)

var (
	// ErrValidationDataAlreadySet is returned when setting the validation data twice in a block.
	ErrValidationDataAlreadySet = errors.New("validation data already set in this block")
	// ErrValidationDataNotSet is returned when finalising a block without validation data.
	ErrValidationDataNotSet = errors.New("validation data not set in this block")
	// ErrRelayParentNumberDecreased is returned when the relay parent is older than the previous block's.
	ErrRelayParentNumberDecreased = errors.New("relay parent number decreased")
	// ErrParachainInherentNotPresent is returned when the inherent data lacks the parachain inherent.
	ErrParachainInherentNotPresent = errors.New("parachain inherent data not present")
)

// Pallet records the relay chain validation data of each parachain block
type Pallet struct{}

// New returns a new parachain system pallet
func New() *Pallet {
	return &Pallet{}
}

// Name returns the pallet name
func (*Pallet) Name() string { return Name }

// InherentIdentifier returns the parachain system inherent identifier
func (*Pallet) InherentIdentifier() types.InherentIdentifier { return types.Sysi1337 }

// OnInitialize removes the validation data of the previous block
func (*Pallet) OnInitialize(s runtime.Storage, _ uint) error {
	s.Delete(ValidationDataKey)
	s.Delete(RelayStateProofKey)
	s.Delete(ProcessedDownwardMessagesKey)
	return nil
}

// OnFinalize checks the validation data was set in the block
func (*Pallet) OnFinalize(s runtime.Storage) error {
	if !s.Has(ValidationDataKey) {
		return ErrValidationDataNotSet
	}
	return nil
}

// Dispatch dispatches a call to the pallet
func (p *Pallet) Dispatch(s runtime.Storage, call *runtime.Call) error {
	switch call.Method {
	case MethodSetValidationData:
		var data types.ParachainInherentData
		err := call.DecodeArgs(&data)
		if err != nil {
			return err
		}
		return p.setValidationData(s, data)
	default:
		return fmt.Errorf("%w: %s", runtime.ErrUnknownMethod, call.Method)
	}
}

func (*Pallet) setValidationData(s runtime.Storage, data types.ParachainInherentData) error {
	if s.Has(ValidationDataKey) {
		return ErrValidationDataAlreadySet
	}

	vd := data.ValidationData

	var last uint32
	_, err := runtime.GetValue(s, LastRelayChainBlockNumberKey, &last)
	if err != nil {
		return err
	}
	if vd.RelayParentNumber < last {
		return fmt.Errorf("%w: %d < %d", ErrRelayParentNumberDecreased, vd.RelayParentNumber, last)
	}

	err = runtime.PutValue(s, ValidationDataKey, vd)
	if err != nil {
		return err
	}
	err = runtime.PutValue(s, RelayStateProofKey, data.RelayChainState)
	if err != nil {
		return err
	}
	err = runtime.PutValue(s, LastRelayChainBlockNumberKey, vd.RelayParentNumber)
	if err != nil {
		return err
	}
	err = runtime.PutValue(s, ProcessedDownwardMessagesKey, uint32(len(data.DownwardMessages)))
	if err != nil {
		return err
	}
	return runtime.PutValue(s, HrmpWatermarkKey, vd.RelayParentNumber)
}

// CreateInherent returns the set_validation_data call from the parachain inherent data
func (*Pallet) CreateInherent(data *types.InherentData) (*runtime.Call, error) {
	if !data.Has(types.Sysi1337) {
		return nil, ErrParachainInherentNotPresent
	}

	var pid types.ParachainInherentData
	err := data.Get(types.Sysi1337, &pid)
	if err != nil {
		return nil, err
	}

	return runtime.NewCall(Name, MethodSetValidationData, pid)
}

// CheckInherent accepts any validation data. It is validated by the relay chain.
func (*Pallet) CheckInherent(runtime.Storage, *runtime.Call, *types.InherentData) error {
	return nil
}

// IsInherent returns true for the set_validation_data call
func (*Pallet) IsInherent(call *runtime.Call) bool {
	return call.Pallet == Name && call.Method == MethodSetValidationData
}

// ValidationData returns the validation data stored by the current block, or nil if it is not set.
func ValidationData(s runtime.Storage) (*types.PersistedValidationData, error) {
	vd := new(types.PersistedValidationData)
	found, err := runtime.GetValue(s, ValidationDataKey, vd)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil //nolint:nilnil
	}
	return vd, nil
}
