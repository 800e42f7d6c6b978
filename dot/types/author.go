// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/btcsuite/btcutil/base58"
)

// AuthorIDLength is the length of an author public key
const AuthorIDLength = 32

// DefaultSS58Prefix is the generic substrate address prefix
const DefaultSS58Prefix = 42

var ss58Context = []byte("SS58PRE")

var (
	errInvalidAuthorIDLength = errors.New("invalid author id length")
	errInvalidAddress        = errors.New("invalid ss58 address")
)

// AuthorID is the sr25519 public key identifying a block author
type AuthorID [AuthorIDLength]byte

// NewAuthorID returns an AuthorID from a 32 byte public key
func NewAuthorID(in []byte) (id AuthorID, err error) {
	if len(in) != AuthorIDLength {
		return id, fmt.Errorf("%w: %d", errInvalidAuthorIDLength, len(in))
	}
	copy(id[:], in)
	return id, nil
}

// ToBytes returns the public key bytes
func (a AuthorID) ToBytes() []byte {
	b := [AuthorIDLength]byte(a)
	return b[:]
}

// Hex returns the public key as a 0x prefixed hex string
func (a AuthorID) Hex() string {
	return common.BytesToHex(a[:])
}

// Address returns the SS58 address of the author with the generic prefix
func (a AuthorID) Address() string {
	return a.AddressWithPrefix(DefaultSS58Prefix)
}

// AddressWithPrefix returns the SS58 address of the author for a one byte network prefix
func (a AuthorID) AddressWithPrefix(prefix byte) string {
	payload := append([]byte{prefix}, a[:]...)
	checksum := ss58Checksum(payload)
	return base58.Encode(append(payload, checksum[:2]...))
}

func (a AuthorID) String() string {
	return a.Address()
}

// AuthorIDFromAddress decodes a SS58 address with a one byte prefix
func AuthorIDFromAddress(address string) (id AuthorID, err error) {
	decoded := base58.Decode(address)
	if len(decoded) != 1+AuthorIDLength+2 {
		return id, fmt.Errorf("%w: decoded length %d", errInvalidAddress, len(decoded))
	}

	payload := decoded[:1+AuthorIDLength]
	checksum := ss58Checksum(payload)
	if checksum[0] != decoded[1+AuthorIDLength] || checksum[1] != decoded[2+AuthorIDLength] {
		return id, fmt.Errorf("%w: checksum mismatch", errInvalidAddress)
	}

	copy(id[:], payload[1:])
	return id, nil
}

// ParseAuthorID parses a 0x prefixed hex public key or a SS58 address
func ParseAuthorID(s string) (id AuthorID, err error) {
	if !strings.HasPrefix(s, "0x") {
		return AuthorIDFromAddress(s)
	}

	b, err := common.HexToBytes(s)
	if err != nil {
		return id, fmt.Errorf("cannot decode public key %s: %w", s, err)
	}
	return NewAuthorID(b)
}

func ss58Checksum(payload []byte) []byte {
	return common.Blake2b512(append(append([]byte{}, ss58Context...), payload...))
}
