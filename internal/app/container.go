// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"
	"time"

	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/container"
	"github.com/MKhiriev/book-library/internal/controllers"
	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/MKhiriev/book-library/models"
)

// NewContainer registers the shared components and every controller
// assembly compiled into the host.
func NewContainer(cfg *config.StructuredConfig, build models.AppBuildInfo, startedAt time.Time, log *logger.Logger) (*container.Container, error) {
	b := container.NewBuilder()
	container.ProvideInstance(b, cfg)
	container.ProvideInstance(b, log)

	controllers.Register(b, cfg.App, build, startedAt, log)

	c, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("error building dependency container: %w", err)
	}
	return c, nil
}
