// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"fmt"
	"reflect"
)

// Service must be implemented by all Services.
// Stop must be safe to call on a service that is not running.
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry starts and stops the node services.
// It holds at most one service per concrete type.
type ServiceRegistry struct {
	services []Service
	logger   Logger
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry(logger Logger) *ServiceRegistry {
	return &ServiceRegistry{
		logger: logger,
	}
}

func (s *ServiceRegistry) lookup(typ reflect.Type) Service {
	for _, service := range s.services {
		if reflect.TypeOf(service) == typ {
			return service
		}
	}
	return nil
}

// RegisterService appends the service to the registry.
// A service of an already registered type is ignored.
func (s *ServiceRegistry) RegisterService(service Service) {
	if s.lookup(reflect.TypeOf(service)) != nil {
		s.logger.Warnf("service %T is already registered", service)
		return
	}
	s.services = append(s.services, service)
}

// StartAll starts the services in registration order. If a service
// fails to start, the services started before it are stopped in
// reverse order and the start error is returned.
func (s *ServiceRegistry) StartAll() error {
	for i, service := range s.services {
		s.logger.Debugf("starting service %T", service)
		err := service.Start()
		if err != nil {
			s.logger.Errorf("cannot start service %T: %s", service, err)
			s.stop(s.services[:i])
			return fmt.Errorf("starting service %T: %w", service, err)
		}
	}
	s.logger.Info("all services started")
	return nil
}

// StopAll stops all the services in reverse registration order
func (s *ServiceRegistry) StopAll() {
	s.stop(s.services)
	s.logger.Info("all services stopped")
}

func (s *ServiceRegistry) stop(services []Service) {
	for i := len(services) - 1; i >= 0; i-- {
		s.logger.Debugf("stopping service %T", services[i])
		err := services[i].Stop()
		if err != nil {
			s.logger.Errorf("cannot stop service %T: %s", services[i], err)
		}
	}
}

// Get returns the registered service of the same type as srvc, or nil.
// srvc must be a pointer.
func (s *ServiceRegistry) Get(srvc interface{}) Service {
	typ := reflect.TypeOf(srvc)
	if typ == nil || typ.Kind() != reflect.Ptr {
		s.logger.Warnf("expected a pointer but got %T", srvc)
		return nil
	}

	service := s.lookup(typ)
	if service == nil {
		s.logger.Warnf("unknown service type %T", srvc)
	}
	return service
}
