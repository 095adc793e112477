// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"sync"
)

// Container holds frozen registrations and the root lifetime scope, which
// owns single instances.
type Container struct {
	registrations map[reflect.Type]registration
	root          *Scope
}

// IsRegistered reports whether t has a registration.
func (c *Container) IsRegistered(t reflect.Type) bool {
	_, ok := c.registrations[t]
	return ok
}

// Resolve resolves t from the root scope.
func (c *Container) Resolve(t reflect.Type) (any, error) {
	return c.root.Resolve(t)
}

// BeginLifetimeScope starts a child scope for InstancePerRequest components.
func (c *Container) BeginLifetimeScope() *Scope {
	return newScope(c, c.root)
}

// Close disposes the root scope.
func (c *Container) Close() error {
	return c.root.Close()
}

// Resolve resolves T from r.
func Resolve[T any](r Resolver) (T, error) {
	var zero T
	v, err := r.Resolve(reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("resolved %T for %s", v, reflect.TypeFor[T]())
	}
	return typed, nil
}

// Scope is a lifetime scope. Instances it creates that implement io.Closer
// are closed with the scope, in reverse creation order.
type Scope struct {
	container *Container
	parent    *Scope

	mu       sync.Mutex
	shared   map[reflect.Type]any
	owned    []io.Closer
	disposed bool
}

func newScope(c *Container, parent *Scope) *Scope {
	return &Scope{
		container: c,
		parent:    parent,
		shared:    make(map[reflect.Type]any),
	}
}

// Resolve implements [Resolver].
func (s *Scope) Resolve(t reflect.Type) (any, error) {
	return s.resolve(t, nil)
}

func (s *Scope) resolve(t reflect.Type, path []reflect.Type) (any, error) {
	reg, ok := s.container.registrations[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, t)
	}
	if slices.Contains(path, t) {
		return nil, fmt.Errorf("%w: %s", ErrCircularDependency, formatPath(append(path, t)))
	}
	path = append(path, t)

	switch reg.lifetime {
	case SingleInstance:
		return s.rootScope().sharedInstance(reg, path)
	case InstancePerRequest:
		return s.sharedInstance(reg, path)
	default:
		return s.create(reg, path)
	}
}

func (s *Scope) rootScope() *Scope {
	root := s
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// sharedInstance returns the instance cached in s, creating it on first use.
func (s *Scope) sharedInstance(reg registration, path []reflect.Type) (any, error) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil, ErrScopeDisposed
	}
	if v, ok := s.shared[reg.serviceType]; ok {
		s.mu.Unlock()
		return v, nil
	}
	s.mu.Unlock()

	v, err := s.create(reg, path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return nil, ErrScopeDisposed
	}
	if existing, ok := s.shared[reg.serviceType]; ok {
		return existing, nil
	}
	s.shared[reg.serviceType] = v
	return v, nil
}

func (s *Scope) create(reg registration, path []reflect.Type) (any, error) {
	s.mu.Lock()
	disposed := s.disposed
	s.mu.Unlock()
	if disposed {
		return nil, ErrScopeDisposed
	}

	v, err := reg.factory(&pathResolver{scope: s, path: path})
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", reg.serviceType, err)
	}

	if closer, ok := v.(io.Closer); ok {
		s.mu.Lock()
		s.owned = append(s.owned, closer)
		s.mu.Unlock()
	}
	return v, nil
}

// Close disposes the scope and closes the instances it owns. Closing twice
// is a no-op.
func (s *Scope) Close() error {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return nil
	}
	s.disposed = true
	owned := s.owned
	s.owned = nil
	s.shared = nil
	s.mu.Unlock()

	var errs error
	for i := len(owned) - 1; i >= 0; i-- {
		errs = errors.Join(errs, owned[i].Close())
	}
	return errs
}

// pathResolver carries the resolution path into factories so cycles are
// detected.
type pathResolver struct {
	scope *Scope
	path  []reflect.Type
}

func (p *pathResolver) Resolve(t reflect.Type) (any, error) {
	return p.scope.resolve(t, slices.Clone(p.path))
}

func formatPath(path []reflect.Type) string {
	var out string
	for i, t := range path {
		if i > 0 {
			out += " -> "
		}
		out += t.String()
	}
	return out
}
