// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package native

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/runtime"
	"github.com/ChainSafe/filtering-collator/lib/runtime/pallets/authorfilter"
	"github.com/ChainSafe/filtering-collator/lib/runtime/pallets/mortality"
	"github.com/ChainSafe/filtering-collator/lib/runtime/pallets/parachainsystem"
	"github.com/ChainSafe/filtering-collator/lib/runtime/pallets/timestamp"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// Name represents the name of the interpreter
const Name = "native"

// DefaultMinimumPeriod is the default minimum period between block timestamps in milliseconds
const DefaultMinimumPeriod = 6000

// Check that runtime interfaces are satisfied
var (
	_ runtime.Instance = (*Instance)(nil)

	logger = log.NewFromGlobal(
		log.AddContext("pkg", "runtime"),
		log.AddContext("module", "native"),
	)
)

// Config is the runtime instance configuration
type Config struct {
	// Pallets in execution order. Inherents are created in this order.
	Pallets []runtime.Pallet
	LogLvl  log.Level
}

// Instance is a runtime compiled into the node. It exports the same calls
// a Wasm runtime would.
type Instance struct {
	ctx     runtime.Storage
	pallets []runtime.Pallet
	byName  map[string]runtime.Pallet
	version runtime.Version
	sync.Mutex
}

// NewInstance returns a runtime instance executing the given pallets
func NewInstance(cfg Config) (*Instance, error) {
	logger.Patch(log.SetLevel(cfg.LogLvl), log.SetCallerFunc(true))

	byName := make(map[string]runtime.Pallet, len(cfg.Pallets))
	for _, pallet := range cfg.Pallets {
		if _, ok := byName[pallet.Name()]; ok {
			return nil, fmt.Errorf("duplicate pallet %s", pallet.Name())
		}
		byName[pallet.Name()] = pallet
	}

	return &Instance{
		pallets: cfg.Pallets,
		byName:  byName,
		version: runtime.Version{
			SpecName:         []byte(runtime.SpecName),
			ImplName:         []byte(Name),
			AuthoringVersion: 1,
			SpecVersion:      1,
			ImplVersion:      1,
		},
	}, nil
}

// DefaultPallets returns the pallets of the filtering parachain runtime.
// The parachain system pallet comes first so the validation data is set
// before the freshness ceiling is checked.
func DefaultPallets() []runtime.Pallet {
	return []runtime.Pallet{
		parachainsystem.New(),
		timestamp.New(DefaultMinimumPeriod / 2),
		authorfilter.New(),
		mortality.New(),
	}
}

// NewDefaultInstance returns an instance of the filtering parachain runtime
func NewDefaultInstance(lvl log.Level) (*Instance, error) {
	return NewInstance(Config{
		Pallets: DefaultPallets(),
		LogLvl:  lvl,
	})
}

// SetContextStorage sets the storage the next runtime calls operate on
func (in *Instance) SetContextStorage(s runtime.Storage) {
	in.Lock()
	defer in.Unlock()
	in.ctx = s
}

// Version returns the instance version
func (in *Instance) Version() runtime.Version {
	return in.version
}

type checkInherentsArgs struct {
	Block        []byte
	InherentData []byte
}

type canAuthorArgs struct {
	Author            types.AuthorID
	RelayParentNumber uint32
}

// Exec calls the given runtime function with SCALE encoded arguments
// and returns its SCALE encoded result.
func (in *Instance) Exec(function string, data []byte) ([]byte, error) {
	in.Lock()
	defer in.Unlock()

	if in.ctx == nil {
		return nil, runtime.ErrNilStorage
	}

	logger.Tracef("executing %s with %d bytes of input", function, len(data))

	switch function {
	case runtime.CoreVersion:
		return in.version.Encode()
	case runtime.CoreInitializeBlock:
		header, err := types.DecodeHeader(data)
		if err != nil {
			return nil, err
		}
		return []byte{}, in.initializeBlock(header)
	case runtime.BlockBuilderInherentExtrinsics:
		inherentData, err := types.DecodeInherentData(data)
		if err != nil {
			return nil, err
		}
		exts, err := in.inherentExtrinsics(inherentData)
		if err != nil {
			return nil, err
		}
		return scale.Marshal(types.Body(exts).AsEncodedExtrinsics())
	case runtime.BlockBuilderApplyExtrinsic:
		return []byte{}, in.applyExtrinsic(types.NewExtrinsic(data))
	case runtime.BlockBuilderFinalizeBlock:
		header, err := in.finalizeBlock()
		if err != nil {
			return nil, err
		}
		return header.Encode()
	case runtime.CoreExecuteBlock:
		block, err := types.DecodeBlock(data)
		if err != nil {
			return nil, err
		}
		return []byte{}, in.executeBlock(block)
	case runtime.BlockBuilderCheckInherents:
		var args checkInherentsArgs
		err := scale.Unmarshal(data, &args)
		if err != nil {
			return nil, fmt.Errorf("decoding check inherents arguments: %w", err)
		}
		block, err := types.DecodeBlock(args.Block)
		if err != nil {
			return nil, err
		}
		inherentData, err := types.DecodeInherentData(args.InherentData)
		if err != nil {
			return nil, err
		}
		return []byte{}, in.checkInherents(block, inherentData)
	case runtime.AuthorFilterAPICanAuthor:
		var args canAuthorArgs
		err := scale.Unmarshal(data, &args)
		if err != nil {
			return nil, fmt.Errorf("decoding can author arguments: %w", err)
		}
		ok, err := authorfilter.CanAuthor(in.ctx, args.Author, args.RelayParentNumber)
		if err != nil {
			return nil, err
		}
		return scale.Marshal(ok)
	default:
		return nil, fmt.Errorf("%w: %s", runtime.ErrUnknownFunction, function)
	}
}
