// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"time"

	"github.com/ChainSafe/filtering-collator/dot/state"
	"github.com/ChainSafe/filtering-collator/internal/metrics"
	"github.com/ChainSafe/filtering-collator/lib/collator"
	"github.com/ChainSafe/filtering-collator/lib/inherents"
	"github.com/ChainSafe/filtering-collator/lib/keystore"
	"github.com/ChainSafe/filtering-collator/lib/proposer"
	"github.com/ChainSafe/filtering-collator/lib/relaychain"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
	"github.com/ChainSafe/filtering-collator/lib/runtime/native"
	"github.com/ChainSafe/filtering-collator/lib/runtime/pallets/mortality"
)

func newStateService(cfg *Config) *state.Service {
	return state.NewService(state.Config{
		Path:     cfg.Global.BasePath,
		LogLevel: cfg.Log.StateLvl,
	})
}

// createStateService creates and starts the state service
func createStateService(cfg *Config) (*state.Service, error) {
	logger.Debug("creating state service...")

	stateSrvc := newStateService(cfg)
	err := stateSrvc.Start()
	if err != nil {
		return nil, fmt.Errorf("failed to start state service: %w", err)
	}

	return stateSrvc, nil
}

// freshnessSource returns the source of the freshness ceiling put into the
// inherent data of the authored blocks.
func freshnessSource(cfg CollatorConfig) mortality.FreshnessSource {
	if cfg.MaxRelayParent == 0 {
		return mortality.RelayParentSource{}
	}
	return mortality.FixedSource{Value: cfg.MaxRelayParent}
}

// newRuntimeFactory returns a factory of native runtime instances
func newRuntimeFactory(cfg *Config) proposer.RuntimeFactory {
	return func() (runtime.Instance, error) {
		rt, err := native.NewDefaultInstance(cfg.Log.RuntimeLvl)
		if err != nil {
			return nil, err
		}
		return rt, nil
	}
}

// createProducer creates the candidate producer of the author
func createProducer(cfg *Config, st *state.Service, ks *keystore.Keystore,
	relay relaychain.Interface) (*collator.Producer, error) {
	author, err := authorKey(ks)
	if err != nil {
		return nil, err
	}

	logger.Infof("creating candidate producer for author %s and para %d...", author, cfg.Collator.ParaID)

	newRuntime := newRuntimeFactory(cfg)

	rt, err := newRuntime()
	if err != nil {
		return nil, fmt.Errorf("failed to create runtime: %w", err)
	}

	providers, err := inherents.NewProviders(
		inherents.NewTimestampProvider(time.Now),
		mortality.NewInherentDataProvider(freshnessSource(cfg.Collator)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create inherent data providers: %w", err)
	}

	producer, err := collator.NewProducer(collator.ProducerConfig{
		LogLvl:          cfg.Log.CollatorLvl,
		Author:          author,
		Oracle:          collator.NewRuntimeOracle(st.Block, rt),
		ProposerFactory: collator.NewProposerFactory(proposer.NewFactory(st.Block, newRuntime)),
		BlockImporter:   collator.NewLocalImporter(st.Block),
		InherentData:    collator.NewInherentDataAssembler(providers, relay, cfg.Collator.ParaID),
		Keystore:        ks,
		Verifier:        collator.NewRuntimeVerifier(st.Block, newRuntime),
		ProposalBudget:  cfg.Collator.ProposalBudget,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate producer: %w", err)
	}

	return producer, nil
}

// createCollatorService creates the service following the relay chain
func createCollatorService(cfg *Config, st *state.Service, ks *keystore.Keystore,
	relay relaychain.Interface, producer *collator.Producer) (*collator.Service, error) {
	logger.Debug("creating collator service...")

	author, err := authorKey(ks)
	if err != nil {
		return nil, err
	}

	srvc, err := collator.NewService(&collator.ServiceConfig{
		LogLvl:     cfg.Log.CollatorLvl,
		ParaID:     cfg.Collator.ParaID,
		Author:     author,
		Producer:   producer,
		BlockState: st.Block,
		RelayChain: relay,
		Keystore:   ks,
		Submitter:  st.Collation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create collator service: %w", err)
	}

	return srvc, nil
}

func createMetricsServer(cfg MetricsConfig) *metrics.Server {
	logger.Debugf("creating metrics server listening on %s...", cfg.Address)
	return metrics.NewServer(cfg.Address)
}
