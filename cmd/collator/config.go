// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ChainSafe/filtering-collator/dot"
	ctoml "github.com/ChainSafe/filtering-collator/dot/config/toml"
	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
	"github.com/urfave/cli"
)

var (
	// ErrLogLevelIntegerOutOfRange is returned for an integer log level outside of [0, 5]
	ErrLogLevelIntegerOutOfRange = errors.New("log level integer can only be between 0 and 5 included")

	errEligibleRatioOutOfRange = errors.New("eligible ratio can only be between 1 and 100 included")
	errInvalidConfig           = errors.New("invalid configuration")
)

// defaultTomlConfig returns the default configuration as a toml configuration
func defaultTomlConfig() *ctoml.Config {
	return dotConfigToToml(dot.DefaultConfig())
}

// loadConfigFile overlays the toml configuration file given with --config, if any,
// on top of the given configuration.
func loadConfigFile(ctx *cli.Context, cfg *ctoml.Config) (err error) {
	cfgPath := ctx.String(ConfigFlag.Name)
	if cfgPath == "" {
		return nil
	}

	logger.Info("loading toml configuration from " + cfgPath + "...")
	return loadConfig(cfg, cfgPath)
}

// loadConfig loads the values from the toml configuration file into the provided configuration
func loadConfig(cfg *ctoml.Config, fp string) error {
	fp, err := filepath.Abs(fp)
	if err != nil {
		return fmt.Errorf("failed to create absolute path for toml configuration file: %w", err)
	}

	file, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return fmt.Errorf("failed to open toml configuration file: %w", err)
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			logger.Warnf("failed to close toml configuration file: %s", closeErr)
		}
	}()

	err = toml.NewDecoder(file).Decode(cfg)
	if err != nil {
		return fmt.Errorf("failed to decode toml configuration file: %w", err)
	}
	return nil
}

// createTomlConfig returns the defaults, overridden by the configuration file
// values, overridden by the flag values. The result is validated.
func createTomlConfig(ctx *cli.Context) (*ctoml.Config, error) {
	tomlCfg := defaultTomlConfig()

	err := loadConfigFile(ctx, tomlCfg)
	if err != nil {
		logger.Errorf("failed to load toml configuration: %s", err)
		return nil, err
	}

	err = setTomlConfigFromFlags(ctx, tomlCfg)
	if err != nil {
		return nil, err
	}

	err = validator.New().Struct(tomlCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errInvalidConfig, err)
	}

	return tomlCfg, nil
}

// createDotConfig creates a new dot configuration from the provided flag values
// and toml configuration file.
func createDotConfig(ctx *cli.Context) (*dot.Config, error) {
	tomlCfg, err := createTomlConfig(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := tomlToDotConfig(tomlCfg)
	if err != nil {
		logger.Errorf("failed to convert toml configuration: %s", err)
		return nil, err
	}

	return cfg, nil
}

func setString(ctx *cli.Context, flagName string, value *string) {
	if flagValue := ctx.String(flagName); flagValue != "" {
		*value = flagValue
	}
}

func setUint32(ctx *cli.Context, flagName string, value *uint32) {
	if flagValue := ctx.Uint(flagName); flagValue != 0 {
		*value = uint32(flagValue)
	}
}

// setTomlConfigFromFlags overrides the configuration values with the flag values set
func setTomlConfigFromFlags(ctx *cli.Context, cfg *ctoml.Config) error {
	setString(ctx, NameFlag.Name, &cfg.Global.Name)
	setString(ctx, BasePathFlag.Name, &cfg.Global.BasePath)
	setString(ctx, LogFlag.Name, &cfg.Global.LogLvl)

	setString(ctx, LogStateLevelFlag.Name, &cfg.Log.StateLvl)
	setString(ctx, LogRuntimeLevelFlag.Name, &cfg.Log.RuntimeLvl)
	setString(ctx, LogCollatorLevelFlag.Name, &cfg.Log.CollatorLvl)

	if authors := ctx.String(AuthorsFlag.Name); authors != "" {
		cfg.Init.Authors = strings.Split(authors, ",")
	}
	if ratio := ctx.Uint(EligibleRatioFlag.Name); ratio != 0 {
		if ratio > 100 {
			return fmt.Errorf("%w: %d", errEligibleRatioOutOfRange, ratio)
		}
		cfg.Init.EligibleRatio = uint8(ratio)
	}

	// --key takes precedence over the key file of the configuration file
	if key := ctx.String(KeyFlag.Name); key != "" {
		cfg.Account.Key = key
		cfg.Account.KeyFile = ""
	}
	setString(ctx, KeyFileFlag.Name, &cfg.Account.KeyFile)

	setUint32(ctx, ParaIDFlag.Name, &cfg.Collator.ParaID)
	if budget := ctx.Duration(ProposalBudgetFlag.Name); budget != 0 {
		cfg.Collator.ProposalBudget = budget.String()
	}
	setUint32(ctx, MaxRelayParentFlag.Name, &cfg.Collator.MaxRelayParent)

	setString(ctx, RelayEndpointFlag.Name, &cfg.Relay.Endpoint)

	if ctx.Bool(PublishMetricsFlag.Name) {
		cfg.Metrics.Enabled = true
	}
	setString(ctx, MetricsAddressFlag.Name, &cfg.Metrics.Address)

	return nil
}

// parseLogLevelString parses a log level given either as an integer or as a string
func parseLogLevelString(logLevelString string) (logLevel log.Level, err error) {
	levelInt, err := strconv.Atoi(logLevelString)
	if err == nil { // level given as an integer
		if levelInt < 0 || levelInt > 5 {
			return 0, fmt.Errorf("%w: log level given: %d", ErrLogLevelIntegerOutOfRange, levelInt)
		}
		logLevel = log.Level(levelInt)
		return logLevel, nil
	}

	logLevel, err = log.ParseLevel(logLevelString)
	if err != nil {
		return 0, fmt.Errorf("cannot parse log level string: %w", err)
	}

	return logLevel, nil
}

// getLogLevel parses the level given, or returns the default level if it is empty
func getLogLevel(value string, defaultLevel log.Level) (level log.Level, err error) {
	if value == "" {
		return defaultLevel, nil
	}
	return parseLogLevelString(value)
}

func tomlToDotConfig(tomlCfg *ctoml.Config) (cfg *dot.Config, err error) {
	cfg = dot.DefaultConfig()

	err = setDotGlobalConfig(tomlCfg.Global, &cfg.Global)
	if err != nil {
		return nil, err
	}

	err = setLogConfig(tomlCfg.Log, cfg.Global.LogLvl, &cfg.Log)
	if err != nil {
		return nil, err
	}

	err = setDotInitConfig(tomlCfg.Init, &cfg.Init)
	if err != nil {
		return nil, err
	}

	cfg.Account = dot.AccountConfig{
		Key:     tomlCfg.Account.Key,
		KeyFile: tomlCfg.Account.KeyFile,
	}

	err = setDotCollatorConfig(tomlCfg.Collator, &cfg.Collator)
	if err != nil {
		return nil, err
	}

	cfg.Relay.Endpoint = tomlCfg.Relay.Endpoint
	cfg.Metrics = dot.MetricsConfig{
		Enabled: tomlCfg.Metrics.Enabled,
		Address: tomlCfg.Metrics.Address,
	}

	return cfg, nil
}

func setDotGlobalConfig(tomlCfg ctoml.GlobalConfig, cfg *dot.GlobalConfig) (err error) {
	cfg.Name = tomlCfg.Name
	if cfg.Name == "" {
		cfg.Name = dot.RandomNodeName()
	}

	cfg.BasePath, err = expandDir(tomlCfg.BasePath)
	if err != nil {
		return fmt.Errorf("cannot expand base path: %w", err)
	}

	cfg.LogLvl, err = getLogLevel(tomlCfg.LogLvl, dot.DefaultLogLvl)
	if err != nil {
		return fmt.Errorf("cannot parse global log level: %w", err)
	}
	return nil
}

// setLogConfig sets the package log levels, defaulting to the global log level
func setLogConfig(tomlCfg ctoml.LogConfig, globalLvl log.Level, cfg *dot.LogConfig) (err error) {
	cfg.StateLvl, err = getLogLevel(tomlCfg.StateLvl, globalLvl)
	if err != nil {
		return fmt.Errorf("cannot parse state log level: %w", err)
	}

	cfg.RuntimeLvl, err = getLogLevel(tomlCfg.RuntimeLvl, globalLvl)
	if err != nil {
		return fmt.Errorf("cannot parse runtime log level: %w", err)
	}

	cfg.CollatorLvl, err = getLogLevel(tomlCfg.CollatorLvl, globalLvl)
	if err != nil {
		return fmt.Errorf("cannot parse collator log level: %w", err)
	}

	return nil
}

func setDotInitConfig(tomlCfg ctoml.InitConfig, cfg *dot.InitConfig) error {
	cfg.Authors = make([]types.AuthorID, len(tomlCfg.Authors))
	for i, author := range tomlCfg.Authors {
		id, err := types.ParseAuthorID(strings.TrimSpace(author))
		if err != nil {
			return fmt.Errorf("cannot parse author %d: %w", i, err)
		}
		cfg.Authors[i] = id
	}

	if tomlCfg.EligibleRatio != 0 {
		cfg.EligibleRatio = tomlCfg.EligibleRatio
	}
	return nil
}

func setDotCollatorConfig(tomlCfg ctoml.CollatorConfig, cfg *dot.CollatorConfig) error {
	cfg.ParaID = types.ParaID(tomlCfg.ParaID)
	cfg.MaxRelayParent = tomlCfg.MaxRelayParent

	if tomlCfg.ProposalBudget != "" {
		budget, err := time.ParseDuration(tomlCfg.ProposalBudget)
		if err != nil {
			return fmt.Errorf("cannot parse proposal budget: %w", err)
		}
		cfg.ProposalBudget = budget
	}
	return nil
}

// dotConfigToToml converts a dot configuration to a toml configuration.
// Package log levels equal to the global log level are omitted.
func dotConfigToToml(dcfg *dot.Config) *ctoml.Config {
	cfg := &ctoml.Config{
		Global: ctoml.GlobalConfig{
			Name:     dcfg.Global.Name,
			BasePath: dcfg.Global.BasePath,
			LogLvl:   dcfg.Global.LogLvl.String(),
		},
		Init: ctoml.InitConfig{
			EligibleRatio: dcfg.Init.EligibleRatio,
		},
		Account: ctoml.AccountConfig{
			Key:     dcfg.Account.Key,
			KeyFile: dcfg.Account.KeyFile,
		},
		Collator: ctoml.CollatorConfig{
			ParaID:         uint32(dcfg.Collator.ParaID),
			ProposalBudget: dcfg.Collator.ProposalBudget.String(),
			MaxRelayParent: dcfg.Collator.MaxRelayParent,
		},
		Relay: ctoml.RelayConfig{
			Endpoint: dcfg.Relay.Endpoint,
		},
		Metrics: ctoml.MetricsConfig{
			Enabled: dcfg.Metrics.Enabled,
			Address: dcfg.Metrics.Address,
		},
	}

	packageLevel := func(level log.Level) string {
		if level == dcfg.Global.LogLvl {
			return ""
		}
		return level.String()
	}
	cfg.Log = ctoml.LogConfig{
		StateLvl:    packageLevel(dcfg.Log.StateLvl),
		RuntimeLvl:  packageLevel(dcfg.Log.RuntimeLvl),
		CollatorLvl: packageLevel(dcfg.Log.CollatorLvl),
	}

	for _, author := range dcfg.Init.Authors {
		cfg.Init.Authors = append(cfg.Init.Authors, author.Address())
	}

	return cfg
}
