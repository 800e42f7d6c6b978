// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/relaychain"
	"github.com/ChainSafe/gossamer/pkg/scale"
	"github.com/prometheus/client_golang/prometheus"
)

// ServiceConfig is the configuration of the collator service
type ServiceConfig struct {
	LogLvl     log.Level
	ParaID     types.ParaID
	Author     types.AuthorID
	Producer   *Producer
	BlockState BlockState
	RelayChain relaychain.Interface
	Keystore   Keystore
	Submitter  CollationSubmitter
}

// Service follows the relay chain and produces one candidate per relay
// chain block at which the para is scheduled.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	paraID     types.ParaID
	author     types.AuthorID
	producer   *Producer
	blockState BlockState
	relay      relaychain.Interface
	keystore   Keystore
	submitter  CollationSubmitter
	submitted  prometheus.Counter

	notifications chan relaychain.Notification
	wg            sync.WaitGroup
	done          chan struct{}

	errLock sync.Mutex
	err     error
}

// NewService returns a new collator service
func NewService(cfg *ServiceConfig) (*Service, error) {
	switch {
	case cfg.Producer == nil:
		return nil, errNilProducer
	case cfg.BlockState == nil:
		return nil, errNilBlockState
	case cfg.RelayChain == nil:
		return nil, errNilRelayChain
	case cfg.Keystore == nil:
		return nil, errNilKeystore
	case cfg.Submitter == nil:
		return nil, errNilSubmitter
	}

	logger.Patch(log.SetLevel(cfg.LogLvl))

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		ctx:           ctx,
		cancel:        cancel,
		paraID:        cfg.ParaID,
		author:        cfg.Author,
		producer:      cfg.Producer,
		blockState:    cfg.BlockState,
		relay:         cfg.RelayChain,
		keystore:      cfg.Keystore,
		submitter:     cfg.Submitter,
		submitted:     submittedCounter,
		notifications: make(chan relaychain.Notification),
		done:          make(chan struct{}),
	}, nil
}

// Start follows the relay chain heads and starts producing candidates
func (s *Service) Start() error {
	logger.Infof("starting collator for para %d with author %s", s.paraID, s.author.Address())

	s.wg.Add(2)
	go s.follow()
	go s.run()

	go func() {
		s.wg.Wait()
		close(s.done)
	}()
	return nil
}

// Stop stops the service and waits for it to exit
func (s *Service) Stop() error {
	s.cancel()
	s.wg.Wait()
	return nil
}

// Done returns a channel closed once the service stopped
func (s *Service) Done() <-chan struct{} {
	return s.done
}

// Err returns the error that stopped the service, if any
func (s *Service) Err() error {
	s.errLock.Lock()
	defer s.errLock.Unlock()
	return s.err
}

func (s *Service) setErr(err error) {
	s.errLock.Lock()
	defer s.errLock.Unlock()
	if s.err == nil {
		s.err = err
	}
}

func (s *Service) follow() {
	defer s.wg.Done()
	defer close(s.notifications)

	err := relaychain.Follow(s.ctx, s.relay, s.paraID, s.notifications)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("following relay chain: %s", err)
		s.setErr(err)
	}
	s.cancel()
}

func (s *Service) run() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case notification, ok := <-s.notifications:
			if !ok {
				return
			}

			err := s.handleNotification(notification)
			if err != nil {
				logger.Criticalf("stopping collator: %s", err)
				s.setErr(err)
				s.cancel()
				return
			}
		}
	}
}

// handleNotification produces and submits a candidate for the relay parent.
// Only a fatal error is returned.
func (s *Service) handleNotification(notification relaychain.Notification) error {
	vd := notification.ValidationData
	parent, err := types.DecodeHeader(vd.ParentHead)
	if err != nil {
		logger.Errorf("cannot decode parent head at relay parent %s: %s", notification.RelayParent, err)
		return nil
	}

	parentHash := parent.Hash()
	has, err := s.blockState.HasHeader(parentHash)
	if err != nil {
		logger.Errorf("cannot check parent %s: %s", parentHash, err)
		return nil
	}
	if !has {
		logger.Warnf("parent %s at number %d is not known locally, skipping relay parent %s",
			parentHash, parent.Number, notification.RelayParent)
		return nil
	}

	// the best block follows the head included by the relay chain
	err = s.blockState.SetBestBlockHash(parentHash)
	if err != nil {
		logger.Errorf("cannot set best block to %s: %s", parentHash, err)
		return nil
	}

	candidate, err := s.producer.ProduceCandidate(s.ctx, parent, notification.RelayParent, &vd)
	if errors.Is(err, ErrEligibilityQuery) {
		return err
	}
	if err != nil || candidate == nil {
		return nil
	}

	collation, err := s.buildCollation(notification.RelayParent, &vd, candidate)
	if err != nil {
		logger.Errorf("cannot build collation at relay parent %s: %s", notification.RelayParent, err)
		return nil
	}

	err = s.submitter.SubmitCollation(collation)
	if err != nil {
		logger.Errorf("cannot submit collation at relay parent %s: %s", notification.RelayParent, err)
		return nil
	}

	s.submitted.Inc()
	logger.Infof("submitted collation for block %s at relay parent %s",
		candidate.Block.Hash(), notification.RelayParent)
	return nil
}

// buildCollation packages the candidate and signs it with the author key.
func (s *Service) buildCollation(relayParent common.Hash, vd *types.PersistedValidationData,
	candidate *types.Candidate) (*types.Collation, error) {
	kp, err := s.keystore.GetKeypair(s.author)
	if err != nil {
		return nil, err
	}

	blockData, err := types.NewParachainBlockData(candidate)
	if err != nil {
		return nil, err
	}

	encBlockData, err := scale.Marshal(*blockData)
	if err != nil {
		return nil, fmt.Errorf("encoding block data: %w", err)
	}

	pov, err := types.CompressBlob(encBlockData)
	if err != nil {
		return nil, err
	}
	if vd.MaxPovSize > 0 && uint64(len(pov)) > uint64(vd.MaxPovSize) {
		return nil, fmt.Errorf("%w: %d > %d", ErrPoVTooLarge, len(pov), vd.MaxPovSize)
	}

	head, err := candidate.Block.Header.Encode()
	if err != nil {
		return nil, fmt.Errorf("encoding head: %w", err)
	}

	collation := &types.Collation{
		RelayParent: relayParent,
		ParaID:      s.paraID,
		Collator:    s.author,
		HeadData:    head,
		PoV:         pov,
	}

	payload, err := collation.SigningPayload()
	if err != nil {
		return nil, fmt.Errorf("encoding signing payload: %w", err)
	}

	collation.Signature, err = kp.Sign(payload)
	if err != nil {
		return nil, fmt.Errorf("signing collation: %w", err)
	}

	return collation, nil
}
