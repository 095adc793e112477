// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the book-library host.
//
// It mounts the web API request pipeline built by package webapi behind the
// cross-cutting middleware stack: OpenTelemetry spans, panic recovery,
// request tracing, access logging, Prometheus metrics, response
// compression, trailing-slash normalisation and request timeouts. The
// Prometheus scrape endpoint is served next to the API.
package http
