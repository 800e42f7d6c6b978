// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package collator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "filtering_collator"

var (
	producedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "candidates_produced_total",
		Help:      "total number of candidates produced",
	})
	skippedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "candidates_skipped_total",
		Help:      "total number of relay parents skipped because the author was not eligible",
	})
	abortedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "candidates_aborted_total",
		Help:      "total number of candidate productions aborted on error",
	})
	importedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "blocks_imported_total",
		Help:      "total number of own blocks imported",
	})
	submittedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "collations_submitted_total",
		Help:      "total number of collations submitted",
	})
)
