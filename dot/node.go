// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/ChainSafe/filtering-collator/dot/state"
	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/collator"
	"github.com/ChainSafe/filtering-collator/lib/keystore"
	"github.com/ChainSafe/filtering-collator/lib/relaychain"
	"github.com/ChainSafe/filtering-collator/lib/relaychain/rpc"
	"github.com/ChainSafe/filtering-collator/lib/runtime/native"
	"github.com/ChainSafe/filtering-collator/lib/services"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// Node is a container for all the components of a node.
type Node struct {
	Name     string
	Services *services.ServiceRegistry // registry of all node services
	collator *collator.Service
	started  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

// InitNode writes the genesis state of the parachain to the database
// in the base path.
func InitNode(cfg *Config) error {
	logger.Patch(log.SetLevel(cfg.Global.LogLvl))
	logger.Infof("🕸️ initialising node with name %s, base path %s and %d authors...",
		cfg.Global.Name, cfg.Global.BasePath, len(cfg.Init.Authors))

	genesisState, header, err := native.BuildGenesis(native.Genesis{
		Authors:       cfg.Init.Authors,
		EligibleRatio: cfg.Init.EligibleRatio,
	})
	if err != nil {
		return fmt.Errorf("failed to build genesis: %w", err)
	}

	stateSrvc := newStateService(cfg)
	err = stateSrvc.Initialise(genesisState, header)
	if err != nil {
		return fmt.Errorf("failed to initialise state service: %w", err)
	}

	err = stateSrvc.Stop()
	if err != nil {
		return fmt.Errorf("failed to stop state service: %w", err)
	}

	logger.Infof("node initialised with name %s, base path %s and genesis hash %s",
		cfg.Global.Name, cfg.Global.BasePath, header.Hash())
	return nil
}

// IsNodeInitialised returns true if the database in the base path has been
// created and holds the genesis block.
func IsNodeInitialised(basepath string) bool {
	registry := filepath.Join(basepath, "db", "KEYREGISTRY")
	_, err := os.Stat(registry)
	if os.IsNotExist(err) {
		logger.Debugf("node has not been initialised in %s: no key registry found", basepath)
		return false
	}

	stateSrvc := state.NewService(state.Config{Path: basepath, LogLevel: log.Critical})
	err = stateSrvc.Start()
	if err != nil {
		logger.Debugf("node has not been initialised in %s: %s", basepath, err)
		return false
	}

	err = stateSrvc.Stop()
	if err != nil {
		logger.Errorf("failed to close database: %s", err)
	}
	return true
}

// NewNode creates a collator node connected to the configured relay chain node.
// The keystore must hold the author key.
func NewNode(cfg *Config, ks *keystore.Keystore) (*Node, error) {
	if ks.Size() == 0 {
		return nil, ErrNoKeysProvided
	}

	relay, err := rpc.Dial(cfg.Relay.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to relay chain: %w", err)
	}

	return newNode(cfg, ks, relay)
}

func newNode(cfg *Config, ks *keystore.Keystore, relay relaychain.Interface) (*Node, error) {
	log.PatchLevel(cfg.Global.LogLvl)
	logger.Patch(log.SetLevel(cfg.Global.LogLvl))

	logger.Infof("🕸️ initialising node services with name %s and base path %s...",
		cfg.Global.Name, cfg.Global.BasePath)

	stateSrvc, err := createStateService(cfg)
	if err != nil {
		return nil, err
	}

	node, err := newNodeWithState(cfg, ks, relay, stateSrvc)
	if err != nil {
		stopErr := stateSrvc.Stop()
		if stopErr != nil {
			logger.Errorf("failed to stop state service: %s", stopErr)
		}
		return nil, err
	}

	return node, nil
}

func newNodeWithState(cfg *Config, ks *keystore.Keystore, relay relaychain.Interface,
	stateSrvc *state.Service) (*Node, error) {
	producer, err := createProducer(cfg, stateSrvc, ks, relay)
	if err != nil {
		return nil, err
	}

	collatorSrvc, err := createCollatorService(cfg, stateSrvc, ks, relay, producer)
	if err != nil {
		return nil, err
	}

	registry := services.NewServiceRegistry(logger)
	registry.RegisterService(stateSrvc)
	if cfg.Metrics.Enabled {
		registry.RegisterService(createMetricsServer(cfg.Metrics))
	}
	registry.RegisterService(collatorSrvc)

	return &Node{
		Name:     cfg.Global.Name,
		Services: registry,
		collator: collatorSrvc,
		started:  make(chan struct{}),
		stop:     make(chan struct{}),
	}, nil
}

// authorKey returns the author public key of the keystore
func authorKey(ks *keystore.Keystore) (author types.AuthorID, err error) {
	keys := ks.PublicKeys()
	if len(keys) == 0 {
		return author, ErrNoKeysProvided
	}
	if len(keys) > 1 {
		logger.Warnf("keystore holds %d keys, using %s", len(keys), keys[0])
	}
	return keys[0], nil
}

// Start starts all node services and blocks until the node is stopped,
// an interrupt signal is received or the collator service exits.
// It returns the error the collator service exited with, if any.
func (n *Node) Start() (err error) {
	logger.Info("🕸️ starting node services...")

	err = n.Services.StartAll()
	if err != nil {
		return fmt.Errorf("failed to start services: %w", err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)

	close(n.started)

	select {
	case <-sigc:
		logger.Info("signal interrupt, shutting down...")
	case <-n.stop:
		logger.Info("stopping node...")
	case <-n.collator.Done():
		err = n.collator.Err()
		if err != nil {
			logger.Errorf("collator service exited: %s", err)
			err = fmt.Errorf("collator service exited: %w", err)
		} else {
			logger.Warn("collator service exited")
		}
	}

	n.Services.StopAll()
	return err
}

// Started returns a channel closed once all node services are started
func (n *Node) Started() <-chan struct{} {
	return n.started
}

// Stop makes Start stop all node services and return
func (n *Node) Stop() {
	n.stopOnce.Do(func() {
		close(n.stop)
	})
}
