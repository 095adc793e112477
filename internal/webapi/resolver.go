// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import "reflect"

//go:generate mockgen -source=resolver.go -destination=../mock/dependency_resolver_mock.go -package=mock

// DependencyScope resolves services for the lifetime of one unit of work,
// usually a single request. Close releases everything the scope created.
type DependencyScope interface {
	// GetService returns an instance of serviceType, or nil with a nil error
	// when the scope has no registration for it.
	GetService(serviceType reflect.Type) (any, error)

	// Close releases the scope.
	Close() error
}

// DependencyResolver is the root scope the host calls into to construct
// controllers. The host opens a child scope per request with BeginScope.
type DependencyResolver interface {
	DependencyScope

	// BeginScope starts a child scope.
	BeginScope() DependencyScope
}

// EmptyResolver resolves nothing. It is installed by [NewConfiguration]
// until a real resolver replaces it.
type EmptyResolver struct{}

// GetService implements [DependencyScope].
func (EmptyResolver) GetService(reflect.Type) (any, error) { return nil, nil }

// Close implements [DependencyScope].
func (EmptyResolver) Close() error { return nil }

// BeginScope implements [DependencyResolver].
func (r EmptyResolver) BeginScope() DependencyScope { return r }
