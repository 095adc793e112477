// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unmatchedRoute = "unmatched"

type requestMetrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	inFlight     prometheus.Gauge
	responseSize *prometheus.HistogramVec
}

func newRequestMetrics(reg prometheus.Registerer) *requestMetrics {
	factory := promauto.With(reg)
	return &requestMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "book_library_http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "book_library_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "book_library_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		}),

		responseSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "book_library_http_response_size_bytes",
			Help:    "HTTP response sizes in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		}, []string{"method", "route", "status"}),
	}
}

// withMetrics records request count, latency and response size labelled by
// the matched route pattern, so ids in the path do not create new series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	m := h.requestMetrics
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		m.inFlight.Inc()
		defer m.inFlight.Dec()

		mw := wrapResponseWriter(w)
		next.ServeHTTP(mw, r)

		route := routeLabel(r)
		status := strconv.Itoa(mw.Status())

		m.requests.WithLabelValues(r.Method, route, status).Inc()
		m.duration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		if mw.size > 0 {
			m.responseSize.WithLabelValues(r.Method, route, status).Observe(float64(mw.size))
		}
	})
}

func routeLabel(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	pattern := rctx.RoutePattern()
	if pattern == "" || pattern == "/*" {
		return unmatchedRoute
	}
	return pattern
}
