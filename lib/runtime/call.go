// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Call is a dispatchable pallet call. Extrinsics are SCALE encoded calls.
type Call struct {
	Pallet string
	Method string
	Args   []byte
}

// NewCall returns a call with its arguments SCALE encoded
func NewCall(pallet, method string, args interface{}) (*Call, error) {
	enc, err := scale.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encoding %s.%s arguments: %w", pallet, method, err)
	}

	return &Call{
		Pallet: pallet,
		Method: method,
		Args:   enc,
	}, nil
}

// DecodeArgs decodes the call arguments into dst
func (c *Call) DecodeArgs(dst interface{}) error {
	err := scale.Unmarshal(c.Args, dst)
	if err != nil {
		return fmt.Errorf("decoding %s.%s arguments: %w", c.Pallet, c.Method, err)
	}
	return nil
}

// Extrinsic returns the call as an extrinsic
func (c *Call) Extrinsic() (types.Extrinsic, error) {
	enc, err := scale.Marshal(*c)
	if err != nil {
		return nil, err
	}
	return types.NewExtrinsic(enc), nil
}

// DecodeCall decodes an extrinsic into a call
func DecodeCall(ext types.Extrinsic) (*Call, error) {
	call := new(Call)
	err := scale.Unmarshal(ext, call)
	if err != nil {
		return nil, fmt.Errorf("cannot decode call: %w", err)
	}
	return call, nil
}

func (c *Call) String() string {
	return fmt.Sprintf("%s.%s(0x%x)", c.Pallet, c.Method, c.Args)
}
