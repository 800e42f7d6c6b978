// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

const logLevelUsage = "Supports levels crit (silent), eror, warn, info, dbug and trce (trace)"

// Global node configuration flags
var (
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. " + logLevelUsage,
	}
	LogStateLevelFlag = cli.StringFlag{
		Name:  "log-state",
		Usage: "State package log level. " + logLevelUsage,
	}
	LogRuntimeLevelFlag = cli.StringFlag{
		Name:  "log-runtime",
		Usage: "Runtime package log level. " + logLevelUsage,
	}
	LogCollatorLevelFlag = cli.StringFlag{
		Name:  "log-collator",
		Usage: "Collator package log level. " + logLevelUsage,
	}

	// NameFlag node name
	NameFlag = cli.StringFlag{
		Name:  "name",
		Usage: "Node name",
	}
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// BasePathFlag data directory for node
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory for the node",
	}
)

// Account flags
var (
	// KeyFlag author secret key
	KeyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "Author secret, either a 0x prefixed hex seed or a mnemonic",
	}
	// KeyFileFlag file containing the author secret key
	KeyFileFlag = cli.StringFlag{
		Name:  "key-file",
		Usage: "File containing the author secret, either a 0x prefixed hex seed or a mnemonic",
	}
)

// Collator flags
var (
	// ParaIDFlag para id of the collated parachain
	ParaIDFlag = cli.UintFlag{
		Name:  "para-id",
		Usage: "Para id of the parachain",
	}
	// ProposalBudgetFlag maximum duration of a block proposal
	ProposalBudgetFlag = cli.DurationFlag{
		Name:  "proposal-budget",
		Usage: "Maximum duration of a block proposal, eg. 500ms",
	}
	// MaxRelayParentFlag fixed freshness ceiling
	MaxRelayParentFlag = cli.UintFlag{
		Name:  "max-relay-parent",
		Usage: "Fixed freshness ceiling of produced blocks. The relay parent number is used if not set",
	}
	// RelayEndpointFlag websocket endpoint of the relay chain node
	RelayEndpointFlag = cli.StringFlag{
		Name:  "relay-endpoint",
		Usage: "Websocket endpoint of the relay chain node",
	}
)

// Metrics flags
var (
	// PublishMetricsFlag publishes node metrics to prometheus.
	PublishMetricsFlag = cli.BoolFlag{
		Name:  "publish-metrics",
		Usage: "Publish node metrics",
	}
	// MetricsAddressFlag sets the metric server listening address.
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Listening address of the metrics server",
	}
)

// Initialization-only flags
var (
	// AuthorsFlag authors of the genesis author set
	AuthorsFlag = cli.StringFlag{
		Name:  "authors",
		Usage: "Comma separated SS58 addresses or 0x prefixed public keys of the genesis authors",
	}
	// EligibleRatioFlag percentage of authors eligible at each relay height
	EligibleRatioFlag = cli.UintFlag{
		Name:  "eligible-ratio",
		Usage: "Percentage of authors eligible at each relay height, from 1 to 100",
	}
	// ForceFlag disables all confirm prompts ("Y" to all)
	ForceFlag = cli.BoolFlag{
		Name:  "force",
		Usage: "Overwrite an existing database",
	}
)

// Account command flags
var (
	// GenerateFlag generates a new author secret
	GenerateFlag = cli.BoolFlag{
		Name:  "generate",
		Usage: "Generate a new author mnemonic",
	}
	// OutputFlag file the generated secret is written to
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "File to write the generated mnemonic to. It is printed if not set",
	}
)

// Export command flags
var (
	// ExportConfigFlag file the configuration is exported to
	ExportConfigFlag = cli.StringFlag{
		Name:  "to",
		Usage: "File the TOML configuration is exported to",
	}
)

// flag sets for the commands
var (
	// GlobalFlags are flags that are valid for use with the root command and all subcommands
	GlobalFlags = []cli.Flag{
		LogFlag,
		LogStateLevelFlag,
		LogRuntimeLevelFlag,
		LogCollatorLevelFlag,
		NameFlag,
		ConfigFlag,
		BasePathFlag,
	}

	// StartupFlags are flags that are valid for use with the root command and the export subcommand
	StartupFlags = []cli.Flag{
		KeyFlag,
		KeyFileFlag,
		ParaIDFlag,
		ProposalBudgetFlag,
		MaxRelayParentFlag,
		RelayEndpointFlag,
		PublishMetricsFlag,
		MetricsAddressFlag,
	}

	// InitFlags are the flags that are valid for use with the init subcommand
	InitFlags = append(append([]cli.Flag{}, GlobalFlags...),
		AuthorsFlag,
		EligibleRatioFlag,
		ForceFlag,
	)

	// AccountFlags are the flags that are valid for use with the account subcommand
	AccountFlags = []cli.Flag{
		KeyFlag,
		KeyFileFlag,
		GenerateFlag,
		OutputFlag,
	}

	// ExportFlags are the flags that are valid for use with the export subcommand
	ExportFlags = append(append(append([]cli.Flag{}, GlobalFlags...), StartupFlags...),
		AuthorsFlag,
		EligibleRatioFlag,
		ExportConfigFlag,
	)

	// RootFlags are the flags that are valid for use with the root command
	RootFlags = append(append([]cli.Flag{}, GlobalFlags...), StartupFlags...)
)
