// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controllers

import (
	"net/http"
	"time"

	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/container"
	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/MKhiriev/book-library/internal/webapi"
	"github.com/MKhiriev/book-library/models"
)

// AssemblyName is the name the package's controllers are published under.
const AssemblyName = "controllers"

// Assembly lists the controllers of this package.
var Assembly = webapi.Assembly{
	Name: AssemblyName,
	Controllers: []webapi.ControllerDescriptor{
		webapi.Controller[*StatusController]("StatusController",
			webapi.Route[*StatusController](http.MethodGet, "api/version", (*StatusController).Version).Named("Version"),
		),
	},
}

func init() {
	webapi.RegisterAssembly(Assembly)
}

// Register adds the package's controllers to b. Controllers are created per
// request.
func Register(b *container.Builder, app config.App, build models.AppBuildInfo, startedAt time.Time, log *logger.Logger) *container.Builder {
	return container.Provide(b, container.InstancePerRequest, func(container.Resolver) (*StatusController, error) {
		return NewStatusController(app, build, startedAt, log.WithComponent("status"))
	})
}
