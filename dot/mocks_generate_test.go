// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

//go:generate mockgen -destination=mock_relaychain_test.go -package=$GOPACKAGE -mock_names=Interface=MockRelayChain github.com/ChainSafe/filtering-collator/lib/relaychain Interface
