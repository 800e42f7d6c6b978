// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/filtering-collator/internal/httpserver"
	"github.com/ChainSafe/filtering-collator/internal/log"
	ethmetrics "github.com/ethereum/go-ethereum/metrics"
	ethprometheus "github.com/ethereum/go-ethereum/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const stopTimeout = 30 * time.Second

var logger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

var (
	errUnexpectedExit = errors.New("metrics server exited unexpectedly")
	errStopTimeout    = errors.New("metrics server exit timeout")
)

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server. The prometheus
// registry is served on /metrics and the block building metrics
// on /debug/metrics/prometheus.
func NewServer(address string) (s *Server) {
	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.Handler())
	m.Handle("/debug/metrics/prometheus", ethprometheus.Handler(ethmetrics.DefaultRegistry))
	return &Server{
		server: httpserver.New("metrics", address, m, logger),
	}
}

// Start starts the metrics server and returns once it listens.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("metrics server available at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		return errUnexpectedExit
	}
}

// Address returns the address the server listens on
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Stop stops the metrics server
func (s *Server) Stop() (err error) {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case err := <-s.done:
		return err
	case <-timer.C:
		return errStopTimeout
	}
}
