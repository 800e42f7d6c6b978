// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultProposalBudget is the time given to the proposer to build a block
const DefaultProposalBudget = 500 * time.Millisecond

var logger = log.NewFromGlobal(log.AddContext("pkg", "collator"))

// ProducerConfig is the configuration of a candidate producer
type ProducerConfig struct {
	LogLvl          log.Level
	Author          types.AuthorID
	Oracle          EligibilityOracle
	ProposerFactory ProposerFactory
	BlockImporter   BlockImporter
	InherentData    InherentDataCreator
	// Keystore is optional, it is only used to report if the author key is present.
	Keystore Keystore
	// Verifier is optional, sealed blocks are imported unverified without it.
	Verifier       BlockVerifier
	ProposalBudget time.Duration
}

// Producer produces parachain candidates when the author is eligible.
// Clones share the proposer and importer locks, so that at most one
// proposal and one import are in flight at any time.
type Producer struct {
	author         types.AuthorID
	oracle         EligibilityOracle
	inherentData   InherentDataCreator
	keystore       Keystore
	verifier       BlockVerifier
	proposalBudget time.Duration

	proposerFactory ProposerFactory
	proposerLock    *sync.Mutex

	blockImporter BlockImporter
	importLock    *sync.Mutex

	produced prometheus.Counter
	skipped  prometheus.Counter
	aborted  prometheus.Counter
}

// NewProducer returns a new candidate producer
func NewProducer(cfg ProducerConfig) (*Producer, error) {
	if cfg.Oracle == nil {
		return nil, errNilOracle
	}
	if cfg.ProposerFactory == nil {
		return nil, errNilProposerFactory
	}
	if cfg.BlockImporter == nil {
		return nil, errNilBlockImporter
	}
	if cfg.InherentData == nil {
		return nil, errNilInherentDataSource
	}

	logger.Patch(log.SetLevel(cfg.LogLvl))

	budget := cfg.ProposalBudget
	if budget == 0 {
		budget = DefaultProposalBudget
	}

	return &Producer{
		author:          cfg.Author,
		oracle:          cfg.Oracle,
		inherentData:    cfg.InherentData,
		keystore:        cfg.Keystore,
		verifier:        cfg.Verifier,
		proposalBudget:  budget,
		proposerFactory: cfg.ProposerFactory,
		proposerLock:    new(sync.Mutex),
		blockImporter:   cfg.BlockImporter,
		importLock:      new(sync.Mutex),
		produced:        producedCounter,
		skipped:         skippedCounter,
		aborted:         abortedCounter,
	}, nil
}

// Clone returns a producer handle sharing the proposer and importer of p
func (p *Producer) Clone() *Producer {
	clone := *p
	return &clone
}

// ProduceCandidate builds, seals and imports a block on top of the parent for
// the relay parent. It returns a nil candidate and a nil error if the author
// is not eligible. Any other abort is logged and returned as an error wrapping
// one of ErrEligibilityQuery, ErrInherentData, ErrProposerInit, ErrPropose,
// ErrBlockVerification or ErrBlockImport. Once sealed, the block import is not canceled by the context.
func (p *Producer) ProduceCandidate(ctx context.Context, parent *types.Header, relayParent common.Hash,
	vd *types.PersistedValidationData) (*types.Candidate, error) {
	parentHash := parent.Hash()

	if p.keystore != nil {
		logger.Debugf("keystore has the key of author %s: %t", p.author, p.keystore.HasKey(p.author))
	}

	eligible, err := p.oracle.CanAuthor(parentHash, p.author, vd.RelayParentNumber)
	if err != nil {
		logger.Criticalf("cannot query author eligibility at %s: %s", parentHash, err)
		p.aborted.Inc()
		return nil, fmt.Errorf("%w: %s", ErrEligibilityQuery, err)
	}

	if !eligible {
		logger.Infof("skipping candidate production at relay parent %s because we are not eligible",
			relayParent)
		p.skipped.Inc()
		return nil, nil //nolint:nilnil
	}

	data, err := p.inherentData.CreateInherentData(ctx, vd, relayParent)
	if err != nil {
		logger.Errorf("failed to create inherent data at relay parent %s: %s", relayParent, err)
		p.aborted.Inc()
		return nil, fmt.Errorf("%w: %s", ErrInherentData, err)
	}

	proposal, err := p.propose(ctx, parent, data)
	if err != nil {
		p.aborted.Inc()
		return nil, err
	}

	params := sealBlock(proposal)
	postHeader := params.PostHeader()
	logger.Infof("sealed block for proposal at %d. Hash now %s, previously %s.",
		postHeader.Number, postHeader.Hash(), proposal.Block.Header.Hash())

	block := types.NewBlock(*postHeader, proposal.Block.Body)
	if p.verifier != nil {
		err = p.verifier.VerifyBlock(&block, data)
		if err != nil {
			logger.Errorf("built block %s failed verification: %s", postHeader.Hash(), err)
			p.aborted.Inc()
			return nil, fmt.Errorf("%w: %s", ErrBlockVerification, err)
		}
	}

	err = p.importBlock(params)
	if err != nil {
		logger.Errorf("error importing built block at parent %s: %s", parentHash, err)
		p.aborted.Inc()
		return nil, fmt.Errorf("%w: %s", ErrBlockImport, err)
	}

	p.produced.Inc()
	return &types.Candidate{
		Block: block,
		Proof: proposal.Proof,
	}, nil
}

func (p *Producer) propose(ctx context.Context, parent *types.Header,
	data *types.InherentData) (*types.Proposal, error) {
	p.proposerLock.Lock()
	defer p.proposerLock.Unlock()

	proposer, err := p.proposerFactory.Init(parent)
	if err != nil {
		logger.Errorf("could not create proposer: %s", err)
		return nil, fmt.Errorf("%w: %s", ErrProposerInit, err)
	}

	proposeCtx, cancel := context.WithTimeout(ctx, p.proposalBudget)
	defer cancel()

	proposal, err := proposer.Propose(proposeCtx, data, types.NewDigest())
	if err != nil {
		logger.Errorf("proposing failed: %s", err)
		return nil, fmt.Errorf("%w: %s", ErrPropose, err)
	}

	return proposal, nil
}

func (p *Producer) importBlock(params *types.BlockImportParams) error {
	p.importLock.Lock()
	defer p.importLock.Unlock()
	return p.blockImporter.ImportBlock(params)
}
