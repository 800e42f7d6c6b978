// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"github.com/ChainSafe/filtering-collator/dot/types"
	"github.com/prometheus/client_golang/prometheus"
)

// localImporter imports own blocks into the local block state,
// using the storage changes of the proposal.
type localImporter struct {
	blockImporter BlockImporter
	imported      prometheus.Counter
}

// NewLocalImporter returns an importer of own blocks over the block state
func NewLocalImporter(blockImporter BlockImporter) BlockImporter {
	return &localImporter{
		blockImporter: blockImporter,
		imported:      importedCounter,
	}
}

func (i *localImporter) ImportBlock(params *types.BlockImportParams) error {
	logger.Debugf("importing block number %d with origin %s and fork choice %s",
		params.Header.Number, params.Origin, params.ForkChoice)

	err := i.blockImporter.ImportBlock(params)
	if err != nil {
		return err
	}

	i.imported.Inc()
	return nil
}
