// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return Hash{}, err
	}

	_, err = h.Write(in)
	if err != nil {
		return Hash{}, err
	}

	return NewHash(h.Sum(nil)), nil
}

// MustBlake2bHash returns the 256-bit blake2b hash of the input data. It panics if it fails to hash.
func MustBlake2bHash(in []byte) Hash {
	hash, err := Blake2bHash(in)
	if err != nil {
		panic(err)
	}

	return hash
}

// Blake2b512 returns the 512-bit blake2b hash of the input data
func Blake2b512(in []byte) []byte {
	sum := blake2b.Sum512(in)
	return sum[:]
}

// Twox64 returns the xx64 hash of the input data
func Twox64(in []byte) []byte {
	return xxhashWithSeed(in, 0)
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) []byte {
	return append(xxhashWithSeed(msg, 0), xxhashWithSeed(msg, 1)...)
}

// Twox64Concat returns the xx64 hash of the input data followed by the data itself.
func Twox64Concat(in []byte) []byte {
	return append(Twox64(in), in...)
}

func xxhashWithSeed(in []byte, seed uint64) []byte {
	hasher := xxhash.NewS64(seed)
	// the xxhash writer never returns an error
	_, _ = hasher.Write(in)

	hash := make([]byte, 8)
	binary.LittleEndian.PutUint64(hash, hasher.Sum64())
	return hash
}

// StoragePrefix returns the storage key prefix of a runtime storage item,
// that is twox128(pallet) ++ twox128(item).
func StoragePrefix(pallet, item string) []byte {
	return append(Twox128Hash([]byte(pallet)), Twox128Hash([]byte(item))...)
}
