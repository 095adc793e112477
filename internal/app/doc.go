// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app composes the book-library host: it builds the dependency
// container and applies the startup registration to the web API
// configuration before the listener starts.
package app
