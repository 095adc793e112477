// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import (
	"errors"
	"fmt"
	"reflect"
)

// Lifetime controls how long a resolved instance is shared.
type Lifetime int

const (
	// InstancePerDependency creates a new instance on every resolve.
	InstancePerDependency Lifetime = iota
	// SingleInstance shares one instance for the whole container.
	SingleInstance
	// InstancePerRequest shares one instance per lifetime scope.
	InstancePerRequest
)

func (l Lifetime) String() string {
	switch l {
	case InstancePerDependency:
		return "per-dependency"
	case SingleInstance:
		return "single"
	case InstancePerRequest:
		return "per-request"
	default:
		return fmt.Sprintf("Lifetime(%d)", int(l))
	}
}

// Factory builds a component, resolving its own dependencies from r.
type Factory func(r Resolver) (any, error)

// Resolver is what factories resolve their dependencies from.
type Resolver interface {
	Resolve(t reflect.Type) (any, error)
}

type registration struct {
	serviceType reflect.Type
	factory     Factory
	lifetime    Lifetime
}

// Builder collects registrations. It is not safe for concurrent use.
type Builder struct {
	registrations []registration
	built         bool
	err           error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Register adds a component for serviceType. A later registration for the
// same type wins.
func (b *Builder) Register(serviceType reflect.Type, factory Factory, lifetime Lifetime) *Builder {
	if serviceType == nil || factory == nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: type and factory are required", ErrInvalidRegistration))
		return b
	}
	b.registrations = append(b.registrations, registration{
		serviceType: serviceType,
		factory:     factory,
		lifetime:    lifetime,
	})
	return b
}

// Provide registers a typed factory for T.
func Provide[T any](b *Builder, lifetime Lifetime, factory func(r Resolver) (T, error)) *Builder {
	if factory == nil {
		return b.Register(reflect.TypeFor[T](), nil, lifetime)
	}
	return b.Register(reflect.TypeFor[T](), func(r Resolver) (any, error) {
		return factory(r)
	}, lifetime)
}

// ProvideInstance registers an existing value as a single instance of T.
func ProvideInstance[T any](b *Builder, instance T) *Builder {
	return b.Register(reflect.TypeFor[T](), func(Resolver) (any, error) {
		return instance, nil
	}, SingleInstance)
}

// Build freezes the registrations into a [Container].
func (b *Builder) Build() (*Container, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	if b.err != nil {
		return nil, fmt.Errorf("error building container: %w", b.err)
	}
	b.built = true

	regs := make(map[reflect.Type]registration, len(b.registrations))
	for _, reg := range b.registrations {
		regs[reg.serviceType] = reg
	}

	c := &Container{registrations: regs}
	c.root = newScope(c, nil)
	return c, nil
}
