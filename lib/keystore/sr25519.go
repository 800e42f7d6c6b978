// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package keystore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/lib/common"
	sr25519 "github.com/ChainSafe/go-schnorrkel"
	bip39 "github.com/cosmos/go-bip39"
)

// SigningContext is the context for signatures used or created with substrate
var SigningContext = []byte("substrate")

const (
	// SeedLength is the length of a mini secret key
	SeedLength = 32
	// SignatureLength is the length of a signature
	SignatureLength = 64
)

var (
	errInvalidSeedLength = errors.New("seed is not 32 bytes long")
	errInvalidMnemonic   = errors.New("invalid mnemonic")
)

// Keypair is a sr25519 keypair
type Keypair struct {
	private *sr25519.SecretKey
	id      types.AuthorID
}

// NewKeypairFromSeed returns a keypair from a 32 byte mini secret key
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("cannot generate key from seed: %w", errInvalidSeedLength)
	}

	var raw [SeedLength]byte
	copy(raw[:], seed)
	msk, err := sr25519.NewMiniSecretKeyFromRaw(raw)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		private: msk.ExpandEd25519(),
		id:      types.AuthorID(msk.Public().Encode()),
	}, nil
}

// NewKeypairFromMnemonic returns a keypair from a bip39 mnemonic and an optional password
func NewKeypairFromMnemonic(mnemonic, password string) (*Keypair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errInvalidMnemonic
	}

	seed, err := sr25519.SeedFromMnemonic(mnemonic, password)
	if err != nil {
		return nil, err
	}
	return NewKeypairFromSeed(seed[:SeedLength])
}

// NewKeypairFromSecret returns a keypair from a 0x prefixed hex seed or a mnemonic
func NewKeypairFromSecret(secret string) (*Keypair, error) {
	secret = strings.TrimSpace(secret)
	if strings.HasPrefix(secret, "0x") {
		seed, err := common.HexToBytes(secret)
		if err != nil {
			return nil, err
		}
		return NewKeypairFromSeed(seed)
	}
	return NewKeypairFromMnemonic(secret, "")
}

// GenerateMnemonic returns a new 12 word bip39 mnemonic
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// Public returns the author id of the keypair
func (kp *Keypair) Public() types.AuthorID {
	return kp.id
}

// Sign uses the keypair to sign the message using the sr25519 signature algorithm
func (kp *Keypair) Sign(msg []byte) ([SignatureLength]byte, error) {
	t := sr25519.NewSigningContext(SigningContext, msg)
	sig, err := kp.private.Sign(t)
	if err != nil {
		return [SignatureLength]byte{}, err
	}
	return sig.Encode(), nil
}

// Verify verifies the signature of the message by the author
func Verify(author types.AuthorID, msg []byte, signature [SignatureLength]byte) (bool, error) {
	pub := new(sr25519.PublicKey)
	err := pub.Decode(author)
	if err != nil {
		return false, fmt.Errorf("decoding public key: %w", err)
	}

	sig := new(sr25519.Signature)
	err = sig.Decode(signature)
	if err != nil {
		return false, fmt.Errorf("decoding signature: %w", err)
	}

	t := sr25519.NewSigningContext(SigningContext, msg)
	return pub.Verify(sig, t)
}
