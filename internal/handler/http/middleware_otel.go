// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// withOTel starts a server span per request and extracts the incoming trace
// context. The metrics endpoint is not traced.
func (h *Handler) withOTel(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, h.appName,
		otelhttp.WithTracerProvider(h.tracerProvider),
		otelhttp.WithPropagators(h.propagator),
		otelhttp.WithFilter(h.shouldTrace),
		otelhttp.WithSpanNameFormatter(spanName),
	)
}

func (h *Handler) shouldTrace(r *http.Request) bool {
	return h.metrics.Disabled || r.URL.Path != h.metrics.Path
}

// spanName names the span before routing. withSpanRoute appends the
// matched route pattern once it is known.
func spanName(_ string, r *http.Request) string {
	return "HTTP " + r.Method
}

// withSpanRoute renames the server span to "HTTP GET /api/{controller}/{id}"
// after routing and records http.route. Unmatched requests keep the
// method-only name.
func (h *Handler) withSpanRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		route := routeLabel(r)
		if route == unmatchedRoute {
			return
		}
		span := trace.SpanFromContext(r.Context())
		span.SetName(spanName("", r) + " " + route)
		span.SetAttributes(attribute.String("http.route", route))
	})
}
