// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package runtime

import (
	"fmt"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Version is the runtime version
type Version struct {
	SpecName         []byte
	ImplName         []byte
	AuthoringVersion uint32
	SpecVersion      uint32
	ImplVersion      uint32
}

// Encode returns the SCALE encoding of the version
func (v Version) Encode() ([]byte, error) {
	return scale.Marshal(v)
}

// DecodeVersion decodes a SCALE encoded version
func DecodeVersion(in []byte) (version Version, err error) {
	err = scale.Unmarshal(in, &version)
	if err != nil {
		return version, fmt.Errorf("cannot decode version: %w", err)
	}
	return version, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%s-%d (%s-%d)", v.SpecName, v.SpecVersion, v.ImplName, v.ImplVersion)
}
