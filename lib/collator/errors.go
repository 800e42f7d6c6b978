// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"errors"
)

var (
	// ErrEligibilityQuery is returned when the eligibility oracle fails. It is fatal for the service.
	ErrEligibilityQuery = errors.New("eligibility query failed")
	// ErrInherentData is returned when the inherent data of a candidate cannot be assembled.
	ErrInherentData = errors.New("cannot create inherent data")
	// ErrProposerInit is returned when no proposer can be created on top of the parent.
	ErrProposerInit = errors.New("cannot create proposer")
	// ErrPropose is returned when proposing the candidate block fails.
	ErrPropose = errors.New("proposing failed")
	// ErrBlockVerification is returned when the sealed block fails re-execution.
	ErrBlockVerification = errors.New("built block failed verification")
	// ErrBlockImport is returned when importing the sealed block fails.
	ErrBlockImport = errors.New("cannot import built block")
	// ErrPoVTooLarge is returned when the compressed proof of validity exceeds the relay chain limit.
	ErrPoVTooLarge = errors.New("proof of validity is too large")

	errNilOracle             = errors.New("cannot have nil eligibility oracle")
	errNilProposerFactory    = errors.New("cannot have nil proposer factory")
	errNilBlockImporter      = errors.New("cannot have nil block importer")
	errNilInherentDataSource = errors.New("cannot have nil inherent data creator")
	errNilProducer           = errors.New("cannot have nil candidate producer")
	errNilBlockState         = errors.New("cannot have nil block state")
	errNilRelayChain         = errors.New("cannot have nil relay chain interface")
	errNilKeystore           = errors.New("cannot have nil keystore")
	errNilSubmitter          = errors.New("cannot have nil collation submitter")
)
