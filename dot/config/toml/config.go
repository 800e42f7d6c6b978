// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

// Config is a collection of configurations throughout the system
type Config struct {
	Global   GlobalConfig   `toml:"global,omitempty"`
	Log      LogConfig      `toml:"log,omitempty"`
	Init     InitConfig     `toml:"init,omitempty"`
	Account  AccountConfig  `toml:"account,omitempty"`
	Collator CollatorConfig `toml:"collator,omitempty"`
	Relay    RelayConfig    `toml:"relay,omitempty"`
	Metrics  MetricsConfig  `toml:"metrics,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	Name     string `toml:"name,omitempty"`
	BasePath string `toml:"basepath,omitempty"`
	LogLvl   string `toml:"log,omitempty"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	StateLvl    string `toml:"state,omitempty"`
	RuntimeLvl  string `toml:"runtime,omitempty"`
	CollatorLvl string `toml:"collator,omitempty"`
}

// InitConfig is the genesis configuration of the node initialisation
type InitConfig struct {
	// Authors are SS58 addresses or 0x prefixed hex public keys.
	Authors       []string `toml:"authors,omitempty" validate:"dive,required"`
	EligibleRatio uint8    `toml:"eligible-ratio,omitempty" validate:"omitempty,min=1,max=100"`
}

// AccountConfig is to marshal/unmarshal account config vars
type AccountConfig struct {
	Key     string `toml:"key,omitempty"`
	KeyFile string `toml:"key-file,omitempty" validate:"omitempty,file"`
}

// CollatorConfig is to marshal/unmarshal collator config vars
type CollatorConfig struct {
	ParaID         uint32 `toml:"para-id,omitempty"`
	ProposalBudget string `toml:"proposal-budget,omitempty"`
	MaxRelayParent uint32 `toml:"max-relay-parent,omitempty"`
}

// RelayConfig is to marshal/unmarshal relay chain config vars
type RelayConfig struct {
	Endpoint string `toml:"endpoint,omitempty" validate:"omitempty,url"`
}

// MetricsConfig is to marshal/unmarshal metrics config vars
type MetricsConfig struct {
	Enabled bool   `toml:"enabled,omitempty"`
	Address string `toml:"address,omitempty" validate:"omitempty,hostname_port"`
}
