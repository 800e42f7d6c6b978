// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/filtering-collator/dot"
	"github.com/ChainSafe/filtering-collator/lib/keystore"
	"github.com/urfave/cli"
)

var errNoKeyConfigured = errors.New("no author key configured")

// loadKeystore returns a keystore holding the configured author key
func loadKeystore(cfg dot.AccountConfig) (*keystore.Keystore, error) {
	ks := keystore.NewKeystore(keystore.NmbsName)

	switch {
	case cfg.Key != "":
		kp, err := keystore.NewKeypairFromSecret(cfg.Key)
		if err != nil {
			return nil, fmt.Errorf("cannot load author key: %w", err)
		}
		ks.Insert(kp)
	case cfg.KeyFile != "":
		_, err := ks.LoadKeyFile(cfg.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("cannot load author key: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: use --%s or --%s", errNoKeyConfigured, KeyFlag.Name, KeyFileFlag.Name)
	}

	return ks, nil
}

// accountAction generates a new author mnemonic, or shows the public key and
// address of the configured author key.
func accountAction(ctx *cli.Context) error {
	var kp *keystore.Keypair

	if ctx.Bool(GenerateFlag.Name) {
		mnemonic, err := keystore.GenerateMnemonic()
		if err != nil {
			return fmt.Errorf("failed to generate mnemonic: %w", err)
		}

		kp, err = keystore.NewKeypairFromMnemonic(mnemonic, "")
		if err != nil {
			return fmt.Errorf("failed to create keypair: %w", err)
		}

		if output := ctx.String(OutputFlag.Name); output != "" {
			err = os.WriteFile(output, []byte(mnemonic+"\n"), 0600)
			if err != nil {
				return fmt.Errorf("failed to write mnemonic: %w", err)
			}
			fmt.Fprintf(ctx.App.Writer, "mnemonic written to %s\n", output)
		} else {
			fmt.Fprintf(ctx.App.Writer, "mnemonic: %s\n", mnemonic)
		}
	} else {
		ks, err := loadKeystore(dot.AccountConfig{
			Key:     ctx.String(KeyFlag.Name),
			KeyFile: ctx.String(KeyFileFlag.Name),
		})
		if err != nil {
			return err
		}
		kp, err = ks.GetKeypair(ks.PublicKeys()[0])
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(ctx.App.Writer, "public key: %s\naddress: %s\n", kp.Public().Hex(), kp.Public().Address())
	return nil
}
