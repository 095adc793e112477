// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"fmt"
	"net/http"
	"reflect"
	"sync"
)

// ServiceKey identifies a replaceable service slot.
type ServiceKey int

// Service slots.
const (
	AssembliesResolverService ServiceKey = iota + 1
	TraceWriterService
	ControllerActivatorService
)

func (k ServiceKey) String() string {
	switch k {
	case AssembliesResolverService:
		return "AssembliesResolver"
	case TraceWriterService:
		return "TraceWriter"
	case ControllerActivatorService:
		return "ControllerActivator"
	default:
		return fmt.Sprintf("ServiceKey(%d)", int(k))
	}
}

var serviceContracts = map[ServiceKey]reflect.Type{
	AssembliesResolverService:  reflect.TypeFor[AssembliesResolver](),
	TraceWriterService:         reflect.TypeFor[TraceWriter](),
	ControllerActivatorService: reflect.TypeFor[ControllerActivator](),
}

// ControllerActivator creates the controller instance for a request.
type ControllerActivator interface {
	Create(r *http.Request, descriptor ControllerDescriptor, scope DependencyScope) (any, error)
}

// ServicesContainer holds the host's replaceable services.
type ServicesContainer struct {
	mu       sync.RWMutex
	services map[ServiceKey]any
	frozen   bool
}

func newServicesContainer() *ServicesContainer {
	return &ServicesContainer{
		services: map[ServiceKey]any{
			AssembliesResolverService:  DefaultAssembliesResolver{},
			ControllerActivatorService: DefaultControllerActivator{},
		},
	}
}

// Replace installs impl in the slot identified by key.
func (s *ServicesContainer) Replace(key ServiceKey, impl any) error {
	contract, ok := serviceContracts[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownService, key)
	}
	if impl == nil {
		return fmt.Errorf("%w: %s", ErrNilService, key)
	}
	if !reflect.TypeOf(impl).Implements(contract) {
		return fmt.Errorf("%w: %T does not implement %s", ErrServiceTypeMismatch, impl, contract)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrConfigurationFrozen
	}
	s.services[key] = impl
	return nil
}

// Get returns the implementation installed for key, or nil.
func (s *ServicesContainer) Get(key ServiceKey) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.services[key]
}

// AssembliesResolver returns the installed assemblies resolver.
func (s *ServicesContainer) AssembliesResolver() AssembliesResolver {
	if r, ok := s.Get(AssembliesResolverService).(AssembliesResolver); ok {
		return r
	}
	return DefaultAssembliesResolver{}
}

// TraceWriter returns the installed trace writer, or a writer that drops
// everything.
func (s *ServicesContainer) TraceWriter() TraceWriter {
	if w, ok := s.Get(TraceWriterService).(TraceWriter); ok {
		return w
	}
	return nopTraceWriter{}
}

// ControllerActivator returns the installed controller activator.
func (s *ServicesContainer) ControllerActivator() ControllerActivator {
	if a, ok := s.Get(ControllerActivatorService).(ControllerActivator); ok {
		return a
	}
	return DefaultControllerActivator{}
}

func (s *ServicesContainer) freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frozen = true
}

// DefaultControllerActivator asks the request scope for the controller type.
// When the scope has no registration and the type is a struct pointer, a
// zero-valued instance is created instead.
type DefaultControllerActivator struct{}

// Create implements [ControllerActivator].
func (DefaultControllerActivator) Create(_ *http.Request, descriptor ControllerDescriptor, scope DependencyScope) (any, error) {
	instance, err := scope.GetService(descriptor.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrControllerNotResolved, descriptor.Name, err)
	}
	if instance != nil {
		return instance, nil
	}

	if descriptor.Type.Kind() == reflect.Pointer && descriptor.Type.Elem().Kind() == reflect.Struct {
		return reflect.New(descriptor.Type.Elem()).Interface(), nil
	}

	return nil, fmt.Errorf("%w: %s (%s)", ErrControllerNotResolved, descriptor.Name, descriptor.Type)
}
