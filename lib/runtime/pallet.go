// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Pallet is a runtime module with dispatchable calls
type Pallet interface {
	Name() string
	Dispatch(s Storage, call *Call) error
}

// Hooks are called by the executive at the start and end of every block
type Hooks interface {
	OnInitialize(s Storage, number uint) error
	OnFinalize(s Storage) error
}

// InherentPallet is a pallet providing an inherent
type InherentPallet interface {
	Pallet
	InherentIdentifier() types.InherentIdentifier
	// CreateInherent returns the inherent call built from the inherent data,
	// or nil if the data does not hold a value for the pallet.
	CreateInherent(data *types.InherentData) (*Call, error)
	// CheckInherent checks an inherent call of the pallet against the inherent data
	// and the state of the block being executed.
	CheckInherent(s Storage, call *Call, data *types.InherentData) error
	// IsInherent returns true if the call is an inherent call of the pallet.
	IsInherent(call *Call) bool
}

// GetValue decodes the value stored under key into dst. It returns false if the key is absent.
func GetValue(s Storage, key []byte, dst interface{}) (found bool, err error) {
	enc := s.Get(key)
	if enc == nil {
		return false, nil
	}

	err = scale.Unmarshal(enc, dst)
	if err != nil {
		return true, fmt.Errorf("decoding storage value 0x%x: %w", key, err)
	}
	return true, nil
}

// PutValue stores the SCALE encoding of value under key.
func PutValue(s Storage, key []byte, value interface{}) error {
	enc, err := scale.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding storage value 0x%x: %w", key, err)
	}
	s.Set(key, enc)
	return nil
}
