// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import "errors"

var (
	// ErrNotRegistered is returned by Resolve when no component is
	// registered for the requested type.
	ErrNotRegistered = errors.New("component is not registered")

	// ErrCircularDependency is returned when a factory, directly or
	// indirectly, resolves its own type.
	ErrCircularDependency = errors.New("circular component dependency")

	// ErrInvalidRegistration is returned by Build for registrations without
	// a type or factory.
	ErrInvalidRegistration = errors.New("invalid component registration")

	// ErrScopeDisposed is returned when a closed scope is used.
	ErrScopeDisposed = errors.New("lifetime scope is disposed")

	// ErrAlreadyBuilt is returned by Build when called twice.
	ErrAlreadyBuilt = errors.New("container is already built")
)
