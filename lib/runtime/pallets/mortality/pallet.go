// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package mortality

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
	"github.com/ChainSafe/filtering-collator/lib/runtime/pallets/parachainsystem"
)

// Name is the pallet name
const Name = "Mortality"

// MethodSetMaxRelayParent is the inherent call setting the freshness ceiling of the block
const MethodSetMaxRelayParent = "set_max_relay_parent"

var (
	// MaxRelayParentKey is the storage key of the last accepted freshness ceiling
	MaxRelayParentKey = common.StoragePrefix(Name, "MaxRelayParent")
	// DidSetKey is the storage key marking the ceiling as set in the current block
	DidSetKey = common.StoragePrefix(Name, "DidSet")
)

var (
	// ErrRelayParentTooHigh is returned when the ceiling exceeds the relay parent number.
	ErrRelayParentTooHigh = errors.New("relay parent too high")
	// ErrParachainInherentNotPresent is returned when the ceiling is checked
	// before the validation data of the block is set.
	ErrParachainInherentNotPresent = errors.New("parachain inherent not present")
	// ErrMaxRelayParentAlreadySet is returned when setting the ceiling twice in a block.
	ErrMaxRelayParentAlreadySet = errors.New("max relay parent already set in this block")
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "runtime"),
	log.AddContext("module", "mortality"),
)

// Pallet validates the freshness ceiling inherent against the validation
// data recorded earlier in the same block.
type Pallet struct{}

// New returns a mortality pallet
func New() *Pallet {
	return &Pallet{}
}

// Name returns the pallet name
func (*Pallet) Name() string { return Name }

// InherentIdentifier returns the freshness ceiling inherent identifier
func (*Pallet) InherentIdentifier() types.InherentIdentifier { return types.Mortalty }

// OnInitialize does nothing
func (*Pallet) OnInitialize(runtime.Storage, uint) error { return nil }

// OnFinalize clears the per block marker
func (*Pallet) OnFinalize(s runtime.Storage) error {
	s.Delete(DidSetKey)
	return nil
}

// Dispatch dispatches a call to the pallet
func (p *Pallet) Dispatch(s runtime.Storage, call *runtime.Call) error {
	switch call.Method {
	case MethodSetMaxRelayParent:
		var max uint32
		err := call.DecodeArgs(&max)
		if err != nil {
			return err
		}
		return p.setMaxRelayParent(s, max)
	default:
		return fmt.Errorf("%w: %s", runtime.ErrUnknownMethod, call.Method)
	}
}

func (p *Pallet) setMaxRelayParent(s runtime.Storage, max uint32) error {
	if s.Has(DidSetKey) {
		return ErrMaxRelayParentAlreadySet
	}

	err := p.checkRelayHeight(s, max)
	if err != nil {
		return err
	}

	err = runtime.PutValue(s, MaxRelayParentKey, max)
	if err != nil {
		return err
	}
	return runtime.PutValue(s, DidSetKey, true)
}

// checkRelayHeight accepts the ceiling iff it is not above the relay parent
// number of the validation data stored by the parachain system inherent.
func (*Pallet) checkRelayHeight(s runtime.Storage, max uint32) error {
	vd, err := parachainsystem.ValidationData(s)
	if err != nil {
		return err
	}
	if vd == nil {
		return ErrParachainInherentNotPresent
	}

	if max > vd.RelayParentNumber {
		logger.Debugf("rejecting max relay parent %d above relay parent %d",
			max, vd.RelayParentNumber)
		return fmt.Errorf("%w: %d > %d", ErrRelayParentTooHigh, max, vd.RelayParentNumber)
	}
	return nil
}

// CreateInherent returns the set_max_relay_parent call, or nil if the inherent
// data has no freshness ceiling.
func (*Pallet) CreateInherent(data *types.InherentData) (*runtime.Call, error) {
	if !data.Has(types.Mortalty) {
		return nil, nil //nolint:nilnil
	}

	var max uint32
	err := data.Get(types.Mortalty, &max)
	if err != nil {
		return nil, err
	}

	return runtime.NewCall(Name, MethodSetMaxRelayParent, max)
}

// CheckInherent checks the ceiling of a set_max_relay_parent call.
// A ceiling above the relay parent number is a fatal inherent error.
func (p *Pallet) CheckInherent(s runtime.Storage, call *runtime.Call, _ *types.InherentData) error {
	if !p.IsInherent(call) {
		return nil
	}

	var max uint32
	err := call.DecodeArgs(&max)
	if err != nil {
		return runtime.NewFatalInherentError(types.Mortalty, err)
	}

	err = p.checkRelayHeight(s, max)
	if err != nil {
		return runtime.NewFatalInherentError(types.Mortalty, err)
	}
	return nil
}

// IsInherent returns true for the set_max_relay_parent call
func (*Pallet) IsInherent(call *runtime.Call) bool {
	return call.Pallet == Name && call.Method == MethodSetMaxRelayParent
}

// MaxRelayParent returns the last accepted ceiling and whether one was ever set.
func MaxRelayParent(s runtime.Storage) (max uint32, found bool, err error) {
	found, err = runtime.GetValue(s, MaxRelayParentKey, &max)
	return max, found, err
}
