// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import (
	"errors"
	"reflect"

	"github.com/MKhiriev/book-library/internal/webapi"
)

// DependencyResolver adapts a [Container] to [webapi.DependencyResolver].
// Unregistered types resolve to nil so the host can fall back to its own
// activation.
type DependencyResolver struct {
	container *Container
}

// NewDependencyResolver wraps c.
func NewDependencyResolver(c *Container) *DependencyResolver {
	return &DependencyResolver{container: c}
}

// Container returns the wrapped container.
func (r *DependencyResolver) Container() *Container {
	return r.container
}

// GetService implements [webapi.DependencyScope].
func (r *DependencyResolver) GetService(t reflect.Type) (any, error) {
	return getService(r.container.root, t)
}

// BeginScope implements [webapi.DependencyResolver].
func (r *DependencyResolver) BeginScope() webapi.DependencyScope {
	return &dependencyScope{scope: r.container.BeginLifetimeScope()}
}

// Close implements [webapi.DependencyScope]. It disposes the container.
func (r *DependencyResolver) Close() error {
	return r.container.Close()
}

type dependencyScope struct {
	scope *Scope
}

func (s *dependencyScope) GetService(t reflect.Type) (any, error) {
	return getService(s.scope, t)
}

func (s *dependencyScope) Close() error {
	return s.scope.Close()
}

func getService(s *Scope, t reflect.Type) (any, error) {
	v, err := s.Resolve(t)
	if errors.Is(err, ErrNotRegistered) && !s.container.IsRegistered(t) {
		return nil, nil
	}
	return v, err
}
