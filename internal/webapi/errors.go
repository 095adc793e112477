// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import "errors"

// Configuration errors. They are returned while the configuration is being
// built or initialized and are fatal for the host.
var (
	// ErrConfigurationFrozen is returned by mutating calls made after
	// [Configuration.EnsureInitialized].
	ErrConfigurationFrozen = errors.New("configuration is already initialized")

	// ErrInvalidRouteTemplate is returned for malformed route templates.
	ErrInvalidRouteTemplate = errors.New("invalid route template")

	// ErrDuplicateRouteName is returned when a route name is mapped twice.
	ErrDuplicateRouteName = errors.New("duplicate route name")

	// ErrRouteConflict is returned when the router rejects a route pattern.
	ErrRouteConflict = errors.New("route conflict")

	// ErrUnknownService is returned for a [ServiceKey] the container does
	// not define.
	ErrUnknownService = errors.New("unknown service")

	// ErrNilService is returned when a nil implementation is supplied.
	ErrNilService = errors.New("service implementation is nil")

	// ErrServiceTypeMismatch is returned when an implementation does not
	// satisfy the interface of the slot it replaces.
	ErrServiceTypeMismatch = errors.New("service implementation has wrong type")

	// ErrAmbiguousController is returned when two discovered controllers
	// share a name.
	ErrAmbiguousController = errors.New("multiple controllers share a name")

	// ErrNoDependencyResolver is returned when the configuration is
	// initialized without a dependency resolver.
	ErrNoDependencyResolver = errors.New("no dependency resolver is configured")

	// ErrInvalidController is returned for descriptors without a name or
	// type, or with attribute routes missing an action.
	ErrInvalidController = errors.New("invalid controller descriptor")
)

// Request errors. They are mapped to HTTP status codes by statusFromError.
var (
	// ErrControllerNotFound means no discovered controller matches the
	// "controller" route value.
	ErrControllerNotFound = errors.New("controller not found")

	// ErrActionNotFound means the controller exists but has no action for
	// the request's HTTP verb.
	ErrActionNotFound = errors.New("action not found")

	// ErrControllerNotResolved means neither the dependency resolver nor
	// type activation produced a controller instance.
	ErrControllerNotResolved = errors.New("controller could not be resolved")

	// ErrControllerTypeMismatch means the resolver returned an instance of
	// an unexpected type for a controller.
	ErrControllerTypeMismatch = errors.New("resolved controller has unexpected type")

	// ErrInvalidRequestBody is returned by [Request.Bind] when the body is
	// missing or cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrResourceNotFound may be returned by actions for missing resources.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrBadRequest may be returned by actions for invalid input.
	ErrBadRequest = errors.New("bad request")

	// ErrConflict may be returned by actions for conflicting writes.
	ErrConflict = errors.New("conflict")
)
