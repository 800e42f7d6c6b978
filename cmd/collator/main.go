// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/filtering-collator/dot"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var (
	errUnknownArgument     = errors.New("unknown command argument")
	errNodeInitialised     = errors.New("node is already initialised")
	errNodeNotInitialised  = errors.New("node is not initialised")
	errMissingExportTarget = errors.New("missing export target file")
)

var (
	app = cli.NewApp()

	initCommand = cli.Command{
		Action:    initAction,
		Name:      "init",
		Usage:     "Initialise node databases with the genesis author set",
		ArgsUsage: "",
		Flags:     InitFlags,
		Category:  "INIT",
		Description: "The init command writes the genesis block of the parachain to the database.\n" +
			"\tUsage: collator init --authors 5Grwva...,5FHneW... --eligible-ratio 50",
	}
	accountCommand = cli.Command{
		Action:   accountAction,
		Name:     "account",
		Usage:    "Generate an author key or show the address of an author key",
		Flags:    AccountFlags,
		Category: "ACCOUNT",
		Description: "The account command manages author keys.\n" +
			"\tTo generate a new mnemonic: collator account --generate --output=author.key\n" +
			"\tTo show the address of a key: collator account --key-file=author.key",
	}
	exportCommand = cli.Command{
		Action:   exportAction,
		Name:     "export",
		Usage:    "Export configuration values to TOML configuration file",
		Flags:    ExportFlags,
		Category: "EXPORT",
		Description: "The export command exports the effective configuration to a TOML file.\n" +
			"\tUsage: collator export --config=config.toml --para-id=2000 --to=export.toml",
	}
)

func init() {
	app.Action = collatorAction
	app.Name = "collator"
	app.Usage = "Permissionless filtering parachain collator"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		initCommand,
		accountCommand,
		exportCommand,
	}
	app.Flags = RootFlags
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// collatorAction is the root action. It loads the configuration and the
// author key, and runs the node until it stops.
func collatorAction(ctx *cli.Context) error {
	if args := ctx.Args(); len(args) > 0 {
		return fmt.Errorf("%w: %q", errUnknownArgument, args[0])
	}

	_, err := setupLogger(ctx)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}
	log.PatchLevel(cfg.Global.LogLvl)
	logger.Infof("loaded configuration:\n%s", cfg)

	if !dot.IsNodeInitialised(cfg.Global.BasePath) {
		return fmt.Errorf("%w in %s: run the %s command first",
			errNodeNotInitialised, cfg.Global.BasePath, initCommand.Name)
	}

	ks, err := loadKeystore(cfg.Account)
	if err != nil {
		return err
	}

	node, err := dot.NewNode(cfg, ks)
	if err != nil {
		return fmt.Errorf("failed to create node services: %w", err)
	}

	logger.Info("starting node " + node.Name + "...")
	return node.Start()
}

// initAction writes the genesis block to the database in the base path
func initAction(ctx *cli.Context) error {
	_, err := setupLogger(ctx)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node configuration: %w", err)
	}
	log.PatchLevel(cfg.Global.LogLvl)

	basepath := cfg.Global.BasePath
	if dot.IsNodeInitialised(basepath) {
		if !ctx.Bool(ForceFlag.Name) {
			return fmt.Errorf("%w in %s: use --%s to overwrite it",
				errNodeInitialised, basepath, ForceFlag.Name)
		}

		logger.Warnf("removing existing database in %s", basepath)
		err = os.RemoveAll(filepath.Join(basepath, "db"))
		if err != nil {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	return dot.InitNode(cfg)
}

// exportAction writes the effective configuration to a TOML file
func exportAction(ctx *cli.Context) error {
	fp := ctx.String(ExportConfigFlag.Name)
	if fp == "" {
		return fmt.Errorf("%w: use --%s", errMissingExportTarget, ExportConfigFlag.Name)
	}

	tomlCfg, err := createTomlConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create configuration: %w", err)
	}

	err = dot.ExportTomlConfig(tomlCfg, fp)
	if err != nil {
		return err
	}

	logger.Info("exported toml configuration to " + fp)
	return nil
}
