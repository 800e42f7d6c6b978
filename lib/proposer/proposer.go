// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package proposer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
	"github.com/ChainSafe/filtering-collator/lib/runtime/storage"
	ethmetrics "github.com/ethereum/go-ethereum/metrics"
)

const (
	buildBlockTimer  = "filtering/proposer/block/constructed"
	buildBlockErrors = "filtering/proposer/block/constructed/errors"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "proposer"))

// ErrProposalTimeout is returned when the proposal does not complete within its budget
var ErrProposalTimeout = errors.New("proposal timed out")

// BlockState is the block state the proposer reads parent states from
type BlockState interface {
	TrieState(hash common.Hash) (*storage.TrieState, error)
}

// RuntimeFactory returns a runtime instance dedicated to one proposal
type RuntimeFactory func() (runtime.Instance, error)

// Factory creates proposers on top of parent blocks
type Factory struct {
	blockState BlockState
	newRuntime RuntimeFactory
}

// NewFactory returns a new proposer factory
func NewFactory(blockState BlockState, newRuntime RuntimeFactory) *Factory {
	return &Factory{
		blockState: blockState,
		newRuntime: newRuntime,
	}
}

// Init returns a proposer building on top of the parent
func (f *Factory) Init(parent *types.Header) (*Proposer, error) {
	parentHash := parent.Hash()
	state, err := f.blockState.TrieState(parentHash)
	if err != nil {
		return nil, fmt.Errorf("getting state of parent %s: %w", parentHash, err)
	}

	rt, err := f.newRuntime()
	if err != nil {
		return nil, fmt.Errorf("creating runtime: %w", err)
	}

	return &Proposer{
		parent:     parent,
		parentHash: parentHash,
		state:      state,
		rt:         rt,
	}, nil
}

// Proposer builds one block on top of its parent. It must not be reused.
type Proposer struct {
	parent     *types.Header
	parentHash common.Hash
	state      *storage.TrieState
	rt         runtime.Instance
}

type proposeResult struct {
	proposal *types.Proposal
	err      error
}

// Propose builds a block from the inherent data, with the digest as pre-runtime digest.
// The reads of the parent state are recorded into the proposal proof. It returns
// ErrProposalTimeout if the context is done before the block is built.
func (p *Proposer) Propose(ctx context.Context, data *types.InherentData,
	digest types.Digest) (*types.Proposal, error) {
	// is necessary to enable ethmetrics to be possible register values
	ethmetrics.Enabled = true

	start := time.Now()
	done := make(chan proposeResult, 1)
	go func() {
		proposal, err := p.buildBlock(ctx, data, digest)
		done <- proposeResult{proposal: proposal, err: err}
	}()

	var result proposeResult
	select {
	case <-ctx.Done():
		result.err = fmt.Errorf("%w: %s", ErrProposalTimeout, ctx.Err())
	case result = <-done:
	}

	if result.err != nil {
		builderErrors := ethmetrics.GetOrRegisterCounter(buildBlockErrors, nil)
		builderErrors.Inc(1)
		return nil, result.err
	}

	timerMetrics := ethmetrics.GetOrRegisterTimer(buildBlockTimer, nil)
	timerMetrics.Update(time.Since(start))
	return result.proposal, nil
}

func (p *Proposer) buildBlock(ctx context.Context, data *types.InherentData,
	digest types.Digest) (*types.Proposal, error) {
	logger.Tracef("build block with parent %s", p.parent)

	p.state.StartRecording()
	p.rt.SetContextStorage(p.state)

	header := types.NewHeader(p.parentHash, common.Hash{}, common.Hash{}, p.parent.Number+1, digest)
	err := p.rt.InitializeBlock(header)
	if err != nil {
		return nil, fmt.Errorf("initialising block: %w", err)
	}

	logger.Trace("initialised block")

	inherents, err := p.rt.InherentExtrinsics(data)
	if err != nil {
		return nil, fmt.Errorf("creating inherent extrinsics: %w", err)
	}

	for _, ext := range inherents {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s", ErrProposalTimeout, ctx.Err())
		}

		// inherents are mandatory, a failing one makes the block invalid
		err = p.rt.ApplyExtrinsic(ext)
		if err != nil {
			return nil, fmt.Errorf("applying inherent %s: %w", ext, err)
		}
	}

	logger.Tracef("applied %d inherent extrinsics", len(inherents))

	finalised, err := p.rt.FinalizeBlock()
	if err != nil {
		return nil, fmt.Errorf("finalising block: %w", err)
	}

	logger.Trace("finalised block")

	changes, err := p.state.StorageChanges()
	if err != nil {
		return nil, err
	}
	if changes.StateRoot != finalised.StateRoot {
		return nil, fmt.Errorf("%w: state has %s and header has %s",
			runtime.ErrStateRootMismatch, changes.StateRoot, finalised.StateRoot)
	}

	proof, err := p.state.Proof()
	if err != nil {
		return nil, fmt.Errorf("building storage proof: %w", err)
	}

	return &types.Proposal{
		Block:          types.NewBlock(*finalised, types.Body(inherents)),
		StorageChanges: *changes,
		Proof:          proof,
	}, nil
}
