// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/handler/http"
	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/MKhiriev/book-library/internal/webapi"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(api *webapi.Configuration, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if api == nil || cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(api, cfg, logger),
	}, nil
}
