// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"time"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/collator"
	"github.com/ChainSafe/filtering-collator/lib/runtime/pallets/authorfilter"
	"github.com/qdm12/gotree"
)

const (
	// DefaultBasePath is the default data directory of the node
	DefaultBasePath = "~/.filtering-collator"
	// DefaultLogLvl is the default log level
	DefaultLogLvl = log.Info
	// DefaultParaID is the default para id of the collated parachain
	DefaultParaID = types.ParaID(2000)
	// DefaultRelayEndpoint is the default websocket endpoint of the relay chain node
	DefaultRelayEndpoint = "ws://127.0.0.1:9944"
	// DefaultMetricsAddress is the default listening address of the metrics server
	DefaultMetricsAddress = "localhost:9876"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global   GlobalConfig
	Log      LogConfig
	Init     InitConfig
	Account  AccountConfig
	Collator CollatorConfig
	Relay    RelayConfig
	Metrics  MetricsConfig
}

// GlobalConfig is used for every node command
type GlobalConfig struct {
	Name     string
	BasePath string
	LogLvl   log.Level
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	StateLvl    log.Level
	RuntimeLvl  log.Level
	CollatorLvl log.Level
}

// InitConfig is the genesis configuration written when initialising the node
type InitConfig struct {
	Authors       []types.AuthorID
	EligibleRatio uint8
}

// AccountConfig is the author key configuration.
// Key takes precedence over KeyFile.
type AccountConfig struct {
	// Key is a 0x prefixed hex seed or a mnemonic.
	Key string
	// KeyFile is a file containing a 0x prefixed hex seed or a mnemonic.
	KeyFile string
}

// CollatorConfig is the candidate production configuration
type CollatorConfig struct {
	ParaID         types.ParaID
	ProposalBudget time.Duration
	// MaxRelayParent is a fixed freshness ceiling. If it is zero, the
	// relay parent number of each candidate is used instead.
	MaxRelayParent uint32
}

// RelayConfig is the relay chain node configuration
type RelayConfig struct {
	Endpoint string
}

// MetricsConfig is the prometheus metrics server configuration
type MetricsConfig struct {
	Enabled bool
	Address string
}

// DefaultConfig returns the default node configuration.
// Its node name is empty.
func DefaultConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			BasePath: DefaultBasePath,
			LogLvl:   DefaultLogLvl,
		},
		Log: LogConfig{
			StateLvl:    DefaultLogLvl,
			RuntimeLvl:  DefaultLogLvl,
			CollatorLvl: DefaultLogLvl,
		},
		Init: InitConfig{
			EligibleRatio: authorfilter.DefaultEligibleRatio,
		},
		Collator: CollatorConfig{
			ParaID:         DefaultParaID,
			ProposalBudget: collator.DefaultProposalBudget,
		},
		Relay: RelayConfig{
			Endpoint: DefaultRelayEndpoint,
		},
		Metrics: MetricsConfig{
			Address: DefaultMetricsAddress,
		},
	}
}

// String returns the configuration as a printable tree
func (c *Config) String() string {
	return c.toNode().String()
}

func (c *Config) toNode() *gotree.Node {
	node := gotree.New("Configuration:")
	node.AppendNode(c.Global.toNode())
	node.AppendNode(c.Log.toNode())
	node.AppendNode(c.Init.toNode())
	node.AppendNode(c.Account.toNode())
	node.AppendNode(c.Collator.toNode())
	node.AppendNode(c.Relay.toNode())
	node.AppendNode(c.Metrics.toNode())
	return node
}

func (g GlobalConfig) toNode() *gotree.Node {
	node := gotree.New("Global:")
	node.Appendf("Name: %s", g.Name)
	node.Appendf("Base path: %s", g.BasePath)
	node.Appendf("Log level: %s", g.LogLvl)
	return node
}

func (l LogConfig) toNode() *gotree.Node {
	node := gotree.New("Log levels:")
	node.Appendf("State: %s", l.StateLvl)
	node.Appendf("Runtime: %s", l.RuntimeLvl)
	node.Appendf("Collator: %s", l.CollatorLvl)
	return node
}

func (i InitConfig) toNode() *gotree.Node {
	node := gotree.New("Genesis:")
	node.Appendf("Eligible ratio: %d%%", i.EligibleRatio)
	if len(i.Authors) == 0 {
		node.Appendf("Authors: none")
		return node
	}
	authorsNode := gotree.New("Authors:")
	for _, author := range i.Authors {
		authorsNode.Appendf("%s", author)
	}
	node.AppendNode(authorsNode)
	return node
}

func (a AccountConfig) toNode() *gotree.Node {
	node := gotree.New("Account:")
	switch {
	case a.Key != "":
		node.Appendf("Key: [redacted]")
	case a.KeyFile != "":
		node.Appendf("Key file: %s", a.KeyFile)
	default:
		node.Appendf("Key: not set")
	}
	return node
}

func (c CollatorConfig) toNode() *gotree.Node {
	node := gotree.New("Collator:")
	node.Appendf("Para id: %d", c.ParaID)
	node.Appendf("Proposal budget: %s", c.ProposalBudget)
	if c.MaxRelayParent == 0 {
		node.Appendf("Freshness ceiling: relay parent number")
	} else {
		node.Appendf("Freshness ceiling: %d", c.MaxRelayParent)
	}
	return node
}

func (r RelayConfig) toNode() *gotree.Node {
	node := gotree.New("Relay chain:")
	node.Appendf("Endpoint: %s", r.Endpoint)
	return node
}

func (m MetricsConfig) toNode() *gotree.Node {
	node := gotree.New("Metrics:")
	if !m.Enabled {
		node.Appendf("Enabled: no")
		return node
	}
	node.Appendf("Enabled: yes")
	node.Appendf("Address: %s", m.Address)
	return node
}
