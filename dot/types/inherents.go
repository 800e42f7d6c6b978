// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ChainSafe/gossamer/pkg/scale"
)

// InherentIdentifier is the 8 byte tag of an inherent
type InherentIdentifier [8]byte

// String returns the identifier as printable text
func (i InherentIdentifier) String() string {
	return string(i[:])
}

var (
	// Timstap0 is the timestamp inherent identifier.
	Timstap0 = InherentIdentifier{'t', 'i', 'm', 's', 't', 'a', 'p', '0'}
	// Sysi1337 is the parachain system inherent identifier.
	Sysi1337 = InherentIdentifier{'s', 'y', 's', 'i', '1', '3', '3', '7'}
	// Mortalty is the freshness ceiling inherent identifier.
	Mortalty = InherentIdentifier{'m', 'o', 'r', 't', 'a', 'l', 't', 'y'}
)

var (
	// ErrInherentDataExists is returned when putting an inherent under an identifier already present.
	ErrInherentDataExists = errors.New("inherent data already exists for identifier")
	// ErrInherentDataNotFound is returned when an identifier is not present in the inherent data.
	ErrInherentDataNotFound = errors.New("inherent data not found for identifier")
)

// InherentData contains a mapping of inherent identifiers to values.
// Values are SCALE encoded.
type InherentData struct {
	data map[InherentIdentifier][]byte
}

// NewInherentData returns an empty InherentData
func NewInherentData() *InherentData {
	return &InherentData{
		data: make(map[InherentIdentifier][]byte),
	}
}

// Put SCALE encodes the value and stores it under the identifier.
// It fails with ErrInherentDataExists if the identifier is already used.
func (d *InherentData) Put(id InherentIdentifier, value interface{}) error {
	if _, ok := d.data[id]; ok {
		return fmt.Errorf("%w: %s", ErrInherentDataExists, id)
	}

	enc, err := scale.Marshal(value)
	if err != nil {
		return fmt.Errorf("cannot encode inherent %s: %w", id, err)
	}

	d.data[id] = enc
	return nil
}

// Replace stores the value under the identifier, overwriting any previous value.
func (d *InherentData) Replace(id InherentIdentifier, value interface{}) error {
	enc, err := scale.Marshal(value)
	if err != nil {
		return fmt.Errorf("cannot encode inherent %s: %w", id, err)
	}

	d.data[id] = enc
	return nil
}

// Get decodes the value stored under the identifier into dst.
func (d *InherentData) Get(id InherentIdentifier, dst interface{}) error {
	enc, ok := d.data[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInherentDataNotFound, id)
	}

	err := scale.Unmarshal(enc, dst)
	if err != nil {
		return fmt.Errorf("cannot decode inherent %s: %w", id, err)
	}
	return nil
}

// Has returns true if a value is stored under the identifier.
func (d *InherentData) Has(id InherentIdentifier) bool {
	_, ok := d.data[id]
	return ok
}

// Len returns the number of inherents.
func (d *InherentData) Len() int {
	return len(d.data)
}

// Identifiers returns the stored identifiers in ascending order.
func (d *InherentData) Identifiers() []InherentIdentifier {
	ids := make([]InherentIdentifier, 0, len(d.data))
	for id := range d.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

func (d *InherentData) String() string {
	var b strings.Builder
	for _, id := range d.Identifiers() {
		fmt.Fprintf(&b, "key=%s\tvalue=0x%x\n", id, d.data[id])
	}
	return b.String()
}

type inherentEntry struct {
	Identifier InherentIdentifier
	Data       []byte
}

// Encode returns the SCALE encoding of the inherent data.
// Entries are sorted by identifier so the encoding is deterministic.
func (d *InherentData) Encode() ([]byte, error) {
	entries := make([]inherentEntry, 0, len(d.data))
	for _, id := range d.Identifiers() {
		entries = append(entries, inherentEntry{Identifier: id, Data: d.data[id]})
	}
	return scale.Marshal(entries)
}

// DecodeInherentData decodes SCALE encoded inherent data.
func DecodeInherentData(in []byte) (*InherentData, error) {
	var entries []inherentEntry
	err := scale.Unmarshal(in, &entries)
	if err != nil {
		return nil, fmt.Errorf("cannot decode inherent data: %w", err)
	}

	d := NewInherentData()
	for _, entry := range entries {
		if _, ok := d.data[entry.Identifier]; ok {
			return nil, fmt.Errorf("%w: %s", ErrInherentDataExists, entry.Identifier)
		}
		d.data[entry.Identifier] = entry.Data
	}
	return d, nil
}
