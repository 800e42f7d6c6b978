// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/runtime/storage"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "state"),
)

// ErrNotInitialised is returned when starting a service on a database without genesis.
var ErrNotInitialised = errors.New("database is not initialised")

// Service is the struct that holds the storage, block and collation states
type Service struct {
	dbPath    string
	isMemDB   bool
	db        chaindb.Database
	Storage   *StorageState
	Block     *BlockState
	Collation *CollationState
}

// Config is the default configuration used by state service.
type Config struct {
	Path     string
	LogLevel log.Level
	// InMemory uses an in-memory key-value store. It is meant for tests.
	InMemory bool
}

// NewService create a new instance of Service
func NewService(config Config) *Service {
	logger.Patch(log.SetLevel(config.LogLevel))

	return &Service{
		dbPath:  config.Path,
		isMemDB: config.InMemory,
	}
}

// DB returns the Service's database
func (s *Service) DB() chaindb.Database {
	return s.db
}

func (s *Service) setupDatabase() error {
	if s.db != nil {
		return nil
	}

	cfg := &chaindb.Config{InMemory: s.isMemDB}
	if !s.isMemDB {
		basepath, err := filepath.Abs(s.dbPath)
		if err != nil {
			return fmt.Errorf("failed to read basepath: %w", err)
		}
		cfg.DataDir = filepath.Join(basepath, "db")
	}

	db, err := chaindb.NewBadgerDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	s.db = db
	return nil
}

// Initialise writes the genesis state and header to the database.
// It only needs to be called once, when initialising the node.
func (s *Service) Initialise(genesisState *storage.TrieState, genesis *types.Header) error {
	err := s.setupDatabase()
	if err != nil {
		return err
	}

	s.Storage = NewStorageState(s.db)
	s.Block, err = NewBlockStateFromGenesis(s.db, s.Storage, genesisState, genesis)
	if err != nil {
		return fmt.Errorf("failed to create block state from genesis: %w", err)
	}
	s.Collation = NewCollationState(s.db)

	logger.Infof("initialised state with genesis hash %s and state root %s",
		genesis.Hash(), genesis.StateRoot)
	return nil
}

// Start opens the database and loads the block state.
func (s *Service) Start() error {
	if s.Block != nil {
		return nil
	}

	err := s.setupDatabase()
	if err != nil {
		return err
	}

	s.Storage = NewStorageState(s.db)
	s.Block, err = NewBlockState(s.db, s.Storage)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", ErrNotInitialised, err)
	} else if err != nil {
		return fmt.Errorf("failed to create block state: %w", err)
	}
	s.Collation = NewCollationState(s.db)

	best, err := s.Block.BestBlockHeader()
	if err != nil {
		return fmt.Errorf("failed to get best block header: %w", err)
	}

	logger.Infof("created state service with head %s, highest number %d and genesis hash %s",
		best.Hash(), best.Number, s.Block.GenesisHash())
	return nil
}

// Stop closes the database
func (s *Service) Stop() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.Block = nil
	return err
}
