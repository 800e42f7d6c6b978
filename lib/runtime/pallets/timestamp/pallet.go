// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package timestamp

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
)

// Name is the pallet name
const Name = "Timestamp"

// MethodSet is the inherent call setting the block timestamp
const MethodSet = "set"

// MaxTimestampDriftMillis is how far in the future a block timestamp may be
// compared to the local clock.
const MaxTimestampDriftMillis = 60_000

var (
	// NowKey is the storage key of the current block timestamp
	NowKey = common.StoragePrefix(Name, "Now")
	// DidUpdateKey is the storage key marking the timestamp as set in the current block
	DidUpdateKey = common.StoragePrefix(Name, "DidUpdate")
)

var (
	// ErrAlreadyUpdated is returned when setting the timestamp twice in a block.
	ErrAlreadyUpdated = errors.New("timestamp must be updated only once in the block")
	// ErrTooEarly is returned when the timestamp is less than the previous one plus the minimum period.
	ErrTooEarly = errors.New("timestamp must increment by at least the minimum period")
	// ErrTooFarInFuture is returned when the timestamp is too far ahead of the local clock.
	ErrTooFarInFuture = errors.New("timestamp too far in the future")
)

// Pallet records the block timestamp in milliseconds
type Pallet struct {
	minimumPeriod uint64
}

// New returns a timestamp pallet requiring the given minimum period between blocks
func New(minimumPeriod uint64) *Pallet {
	return &Pallet{minimumPeriod: minimumPeriod}
}

// Name returns the pallet name
func (*Pallet) Name() string { return Name }

// InherentIdentifier returns the timestamp inherent identifier
func (*Pallet) InherentIdentifier() types.InherentIdentifier { return types.Timstap0 }

// OnInitialize does nothing
func (*Pallet) OnInitialize(runtime.Storage, uint) error { return nil }

// OnFinalize clears the per block marker
func (*Pallet) OnFinalize(s runtime.Storage) error {
	s.Delete(DidUpdateKey)
	return nil
}

// Dispatch dispatches a call to the pallet
func (p *Pallet) Dispatch(s runtime.Storage, call *runtime.Call) error {
	switch call.Method {
	case MethodSet:
		var now uint64
		err := call.DecodeArgs(&now)
		if err != nil {
			return err
		}
		return p.set(s, now)
	default:
		return fmt.Errorf("%w: %s", runtime.ErrUnknownMethod, call.Method)
	}
}

func (p *Pallet) set(s runtime.Storage, now uint64) error {
	if s.Has(DidUpdateKey) {
		return ErrAlreadyUpdated
	}

	prev, found, err := Now(s)
	if err != nil {
		return err
	}
	if found && now < prev+p.minimumPeriod {
		return fmt.Errorf("%w: %d < %d + %d", ErrTooEarly, now, prev, p.minimumPeriod)
	}

	err = runtime.PutValue(s, NowKey, now)
	if err != nil {
		return err
	}
	return runtime.PutValue(s, DidUpdateKey, true)
}

// CreateInherent returns the set call, or nil if the inherent data has no timestamp.
func (*Pallet) CreateInherent(data *types.InherentData) (*runtime.Call, error) {
	if !data.Has(types.Timstap0) {
		return nil, nil //nolint:nilnil
	}

	var now uint64
	err := data.Get(types.Timstap0, &now)
	if err != nil {
		return nil, err
	}

	return runtime.NewCall(Name, MethodSet, now)
}

// CheckInherent rejects timestamps too far ahead of the timestamp in the inherent data.
// The error is not fatal: the block may become valid later.
func (*Pallet) CheckInherent(_ runtime.Storage, call *runtime.Call, data *types.InherentData) error {
	if call.Pallet != Name || call.Method != MethodSet || !data.Has(types.Timstap0) {
		return nil
	}

	var t, local uint64
	err := call.DecodeArgs(&t)
	if err != nil {
		return runtime.NewFatalInherentError(types.Timstap0, err)
	}
	err = data.Get(types.Timstap0, &local)
	if err != nil {
		return runtime.NewFatalInherentError(types.Timstap0, err)
	}

	if t > local+MaxTimestampDriftMillis {
		return &runtime.InherentError{
			Identifier: types.Timstap0,
			Err:        fmt.Errorf("%w: %d > %d", ErrTooFarInFuture, t, local+MaxTimestampDriftMillis),
		}
	}
	return nil
}

// IsInherent returns true for the set call
func (*Pallet) IsInherent(call *runtime.Call) bool {
	return call.Pallet == Name && call.Method == MethodSet
}

// Now returns the timestamp of the last block and whether one was ever set.
func Now(s runtime.Storage) (now uint64, found bool, err error) {
	found, err = runtime.GetValue(s, NowKey, &now)
	return now, found, err
}
