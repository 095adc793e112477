// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package webapi is the request pipeline the book-library host is built on.
//
// A [Configuration] is populated once at startup: a [DependencyResolver] that
// constructs controllers, replaceable services in a [ServicesContainer], the
// [JSONFormatter] used for request and response bodies, an optional
// diagnostics [TraceWriter], and the route table. Routes come from two
// sources: templates mapped on [RouteCollection] (conventional routing, where
// the controller and action are picked from route values and the HTTP verb)
// and [RouteAttribute] values declared next to controllers (attribute
// routing).
//
// Controllers are published through [Assembly] values registered with
// [RegisterAssembly]; the [AssembliesResolver] service decides which
// assemblies are searched when the configuration is initialized.
//
// After [Configuration.EnsureInitialized] the configuration is frozen and
// treated as read-only for the rest of the process lifetime.
package webapi
