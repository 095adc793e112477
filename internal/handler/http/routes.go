// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init initializes the web API configuration and returns the complete
// request handler. Initialization errors are fatal for the host.
func (h *Handler) Init() (http.Handler, error) {
	api, err := h.api.Handler()
	if err != nil {
		return nil, fmt.Errorf("error initializing web api: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withSpanRoute)
	router.Use(withGZip)
	router.Use(middleware.StripSlashes)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	if !h.metrics.Disabled {
		router.Method(http.MethodGet, h.metrics.Path, promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{
			Registry:           h.registry,
			DisableCompression: true,
		}))
	}

	router.Mount("/", api)

	return h.withOTel(router), nil
}
