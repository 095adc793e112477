// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controllers

import (
	"time"

	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/MKhiriev/book-library/internal/webapi"
	"github.com/MKhiriev/book-library/models"
)

// StatusController reports the build and uptime of the running host.
type StatusController struct {
	name      string
	version   string
	build     models.AppBuildInfo
	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

// NewStatusController returns a controller reporting app and build. The
// configured version takes precedence over the build version.
func NewStatusController(app config.App, build models.AppBuildInfo, startedAt time.Time, logger *logger.Logger) (*StatusController, error) {
	version := app.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &StatusController{
		name:      app.Name,
		version:   version,
		build:     build,
		startedAt: startedAt,
		now:       time.Now,
		logger:    logger,
	}, nil
}

// List serves GET api/status.
func (c *StatusController) List(r *webapi.Request) (any, error) {
	uptime := c.now().Sub(c.startedAt).Truncate(time.Second)

	c.logger.Debug().Dur("uptime", uptime).Msg("status requested")

	return models.Status{
		Name:      c.name,
		Version:   c.version,
		BuildDate: c.build.BuildDate(),
		Commit:    c.build.BuildCommit(),
		StartedAt: c.startedAt.UTC(),
		Uptime:    uptime.String(),
	}, nil
}

// Version serves GET api/version as plain text.
func (c *StatusController) Version(*webapi.Request) (any, error) {
	return webapi.Text(c.version), nil
}
