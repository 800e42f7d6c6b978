// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/ChainSafe/filtering-collator/internal/log"
	"github.com/ChainSafe/filtering-collator/lib/common"
	"github.com/ChainSafe/filtering-collator/lib/relaychain"
	"github.com/ChainSafe/gossamer/pkg/scale"
	gsrpc "github.com/centrifuge/go-substrate-rpc-client/v4"
	ctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "relaychain"),
	log.AddContext("module", "rpc"),
)

var _ relaychain.Interface = (*Client)(nil)

// Runtime API functions of the relay chain
const (
	persistedValidationDataMethod = "ParachainHost_persisted_validation_data"
	dmqContentsMethod             = "ParachainHost_dmq_contents"
	inboundHrmpChannelsMethod     = "ParachainHost_inbound_hrmp_channels_contents"
)

// occupiedCoreAssumptionIncluded assumes the pending candidate of the para is included
const occupiedCoreAssumptionIncluded = byte(0)

const headsBufferSize = 16

var errEmptyResult = errors.New("empty result")

// Caller performs JSON-RPC calls
type Caller interface {
	Call(result interface{}, method string, args ...interface{}) error
}

// HeadSubscriber subscribes to new relay chain heads
type HeadSubscriber interface {
	SubscribeNewHeads() (Subscription, error)
	GetBlockHash(number uint64) (common.Hash, error)
}

// Subscription is a subscription to relay chain heads
type Subscription interface {
	Chan() <-chan ctypes.Header
	Err() <-chan error
	Unsubscribe()
}

// Client is the relay chain interface over the JSON-RPC API of a relay chain node
type Client struct {
	caller Caller
	heads  HeadSubscriber
}

// NewClient returns a client using the given caller and head subscriber
func NewClient(caller Caller, heads HeadSubscriber) *Client {
	return &Client{
		caller: caller,
		heads:  heads,
	}
}

// Dial connects to the relay chain node at the websocket url
func Dial(url string) (*Client, error) {
	api, err := gsrpc.NewSubstrateAPI(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to relay chain node %s: %w", url, err)
	}
	logger.Infof("connected to relay chain node at %s", url)
	return NewClient(api.Client, &chainHeads{api: api}), nil
}

type chainHeads struct {
	api *gsrpc.SubstrateAPI
}

func (c *chainHeads) SubscribeNewHeads() (Subscription, error) {
	sub, err := c.api.RPC.Chain.SubscribeNewHeads()
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (c *chainHeads) GetBlockHash(number uint64) (common.Hash, error) {
	hash, err := c.api.RPC.Chain.GetBlockHash(number)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(hash), nil
}

// NewHeads subscribes to the new heads of the relay chain
func (c *Client) NewHeads(ctx context.Context) (<-chan relaychain.Head, error) {
	sub, err := c.heads.SubscribeNewHeads()
	if err != nil {
		return nil, err
	}

	out := make(chan relaychain.Head, headsBufferSize)
	go func() {
		defer close(out)
		defer sub.Unsubscribe()

		for {
			select {
			case <-ctx.Done():
				return
			case err := <-sub.Err():
				logger.Errorf("relay chain heads subscription failed: %s", err)
				return
			case header, ok := <-sub.Chan():
				if !ok {
					return
				}

				number := uint32(header.Number)
				hash, err := c.heads.GetBlockHash(uint64(number))
				if err != nil {
					logger.Warnf("cannot get hash of relay block %d: %s", number, err)
					continue
				}

				select {
				case out <- relaychain.Head{Hash: hash, Number: number}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

type readProof struct {
	At    string   `json:"at"`
	Proof []string `json:"proof"`
}

// ProveRead calls state_getReadProof
func (c *Client) ProveRead(ctx context.Context, at common.Hash, keys [][]byte) (types.StorageProof, error) {
	if err := ctx.Err(); err != nil {
		return types.StorageProof{}, err
	}

	hexKeys := make([]string, len(keys))
	for i, key := range keys {
		hexKeys[i] = common.BytesToHex(key)
	}

	var res readProof
	err := c.caller.Call(&res, "state_getReadProof", hexKeys, at.String())
	if err != nil {
		return types.StorageProof{}, err
	}

	nodes := make([][]byte, len(res.Proof))
	for i, node := range res.Proof {
		nodes[i], err = common.HexToBytes(node)
		if err != nil {
			return types.StorageProof{}, fmt.Errorf("decoding proof node %d: %w", i, err)
		}
	}
	return types.NewStorageProof(nodes), nil
}

func (c *Client) stateCall(ctx context.Context, method string, at common.Hash, args interface{}) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enc, err := scale.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encoding %s arguments: %w", method, err)
	}

	var res string
	err = c.caller.Call(&res, "state_call", method, common.BytesToHex(enc), at.String())
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}
	if res == "" {
		return nil, fmt.Errorf("calling %s: %w", method, errEmptyResult)
	}
	return common.HexToBytes(res)
}

type validationDataArgs struct {
	ParaID     uint32
	Assumption byte
}

// PersistedValidationData calls ParachainHost_persisted_validation_data
func (c *Client) PersistedValidationData(ctx context.Context, at common.Hash,
	paraID types.ParaID) (*types.PersistedValidationData, error) {
	ret, err := c.stateCall(ctx, persistedValidationDataMethod, at, validationDataArgs{
		ParaID:     uint32(paraID),
		Assumption: occupiedCoreAssumptionIncluded,
	})
	if err != nil {
		return nil, err
	}

	var vd *types.PersistedValidationData
	err = scale.Unmarshal(ret, &vd)
	if err != nil {
		return nil, fmt.Errorf("decoding validation data: %w", err)
	}
	return vd, nil
}

// DownwardMessages calls ParachainHost_dmq_contents
func (c *Client) DownwardMessages(ctx context.Context, at common.Hash,
	paraID types.ParaID) ([]types.InboundDownwardMessage, error) {
	ret, err := c.stateCall(ctx, dmqContentsMethod, at, uint32(paraID))
	if err != nil {
		return nil, err
	}

	var messages []types.InboundDownwardMessage
	err = scale.Unmarshal(ret, &messages)
	if err != nil {
		return nil, fmt.Errorf("decoding downward messages: %w", err)
	}
	return messages, nil
}

// InboundHrmpChannelsContents calls ParachainHost_inbound_hrmp_channels_contents
func (c *Client) InboundHrmpChannelsContents(ctx context.Context, at common.Hash,
	paraID types.ParaID) ([]types.HrmpChannelContents, error) {
	ret, err := c.stateCall(ctx, inboundHrmpChannelsMethod, at, uint32(paraID))
	if err != nil {
		return nil, err
	}

	// a BTreeMap encodes as a sequence of key value pairs
	var channels []types.HrmpChannelContents
	err = scale.Unmarshal(ret, &channels)
	if err != nil {
		return nil, fmt.Errorf("decoding horizontal messages: %w", err)
	}
	return channels, nil
}
