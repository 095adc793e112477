// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/MKhiriev/book-library/internal/webapi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	api *webapi.Configuration

	appName string
	server  config.Server
	metrics config.Metrics

	registry       *prometheus.Registry
	requestMetrics *requestMetrics
	tracerProvider trace.TracerProvider
	propagator     propagation.TextMapPropagator

	logger *logger.Logger
}

// NewHandler creates the transport handler for api. Request metrics are
// registered on a registry owned by the handler, together with the Go
// runtime and process collectors.
func NewHandler(api *webapi.Configuration, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		api:            api,
		appName:        cfg.App.Name,
		server:         cfg.Server,
		metrics:        cfg.Metrics,
		registry:       registry,
		requestMetrics: newRequestMetrics(registry),
		tracerProvider: otel.GetTracerProvider(),
		propagator:     otel.GetTextMapPropagator(),
		logger:         logger,
	}
}

// Registry returns the Prometheus registry served on the metrics path.
func (h *Handler) Registry() *prometheus.Registry {
	return h.registry
}
