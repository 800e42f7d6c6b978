// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . BlockImporter,BlockState,BlockVerifier,CollationSubmitter,EligibilityOracle,InherentDataCreator,Keystore,Proposer,ProposerFactory,TrieStateGetter
//go:generate mockgen -destination=mock_relaychain_test.go -package=$GOPACKAGE -mock_names=Interface=MockRelayChain github.com/ChainSafe/filtering-collator/lib/relaychain Interface
