// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controllers holds the infrastructure controllers the host serves
// on its own: build and uptime information under api/status and the plain
// text version under api/version.
//
// The package publishes its controllers as the "controllers" assembly in
// init, so importing it is enough for the default assemblies resolver to
// discover them. Instances are created by the dependency container; see
// [Register].
package controllers
