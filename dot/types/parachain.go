// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
	"sort"

	"github.com/ChainSafe/filtering-collator/lib/common"
)

// ParaID is the identifier of a parachain on the relay chain
type ParaID uint32

// HeadData is the SCALE encoded head of a parachain block
type HeadData []byte

// PersistedValidationData is the validation data of a parachain block
// as persisted by the relay chain. It is read only for the collator.
type PersistedValidationData struct {
	// ParentHead is the encoded header of the parachain parent block.
	ParentHead []byte
	// RelayParentNumber is the number of the relay chain block the candidate is built against.
	RelayParentNumber uint32
	// RelayParentStorageRoot is the state root of the relay parent.
	RelayParentStorageRoot common.Hash
	// MaxPovSize is the maximum legal size of a proof of validity.
	MaxPovSize uint32
}

// String returns the validation data as a string
func (vd PersistedValidationData) String() string {
	return fmt.Sprintf("RelayParentNumber=%d RelayParentStorageRoot=%s MaxPovSize=%d ParentHead=0x%x",
		vd.RelayParentNumber, vd.RelayParentStorageRoot, vd.MaxPovSize, vd.ParentHead)
}

// StorageProof is a set of trie nodes proving a set of storage reads
type StorageProof struct {
	TrieNodes [][]byte
}

// NewStorageProof returns a storage proof from the given nodes,
// deduplicated and sorted.
func NewStorageProof(nodes [][]byte) StorageProof {
	seen := make(map[string]struct{}, len(nodes))
	proof := StorageProof{TrieNodes: make([][]byte, 0, len(nodes))}
	for _, node := range nodes {
		if _, ok := seen[string(node)]; ok {
			continue
		}
		seen[string(node)] = struct{}{}
		proof.TrieNodes = append(proof.TrieNodes, node)
	}
	sort.Slice(proof.TrieNodes, func(i, j int) bool {
		return string(proof.TrieNodes[i]) < string(proof.TrieNodes[j])
	})
	return proof
}

// Len returns the number of trie nodes in the proof
func (p StorageProof) Len() int {
	return len(p.TrieNodes)
}

// InboundDownwardMessage is a downward message from the relay chain
type InboundDownwardMessage struct {
	SentAt uint32
	Msg    []byte
}

// InboundHrmpMessage is a horizontal message sent by another parachain
type InboundHrmpMessage struct {
	SentAt uint32
	Data   []byte
}

// HrmpChannelContents are the inbound messages of the channel from a sender
type HrmpChannelContents struct {
	Sender   uint32
	Messages []InboundHrmpMessage
}

// ParachainInherentData is the parachain system inherent. It is a superset
// of the persisted validation data and proves the relay chain state the
// parachain block is built against.
type ParachainInherentData struct {
	ValidationData     PersistedValidationData
	RelayChainState    StorageProof
	DownwardMessages   []InboundDownwardMessage
	HorizontalMessages []HrmpChannelContents
}

// SortHorizontalMessages orders the horizontal message channels by sender
// to give the deterministic encoding of an ordered map.
func (p *ParachainInherentData) SortHorizontalMessages() {
	sort.Slice(p.HorizontalMessages, func(i, j int) bool {
		return p.HorizontalMessages[i].Sender < p.HorizontalMessages[j].Sender
	})
}
