// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"fmt"

	"github.com/MKhiriev/book-library/internal/webapi"
)

const (
	// DefaultRouteName is the name of the conventional route.
	DefaultRouteName = "DefaultApi"

	// DefaultRouteTemplate maps api/{controller} with an optional id.
	DefaultRouteTemplate = "api/{controller}/{id}"
)

// AssembliesResolver is the assembly discovery service installed by
// [RegisterWebAPI]. It is the extension point for restricting controller
// discovery and currently returns exactly what the default resolver does.
type AssembliesResolver struct {
	webapi.DefaultAssembliesResolver
}

// GetAssemblies implements [webapi.AssembliesResolver].
func (r AssembliesResolver) GetAssemblies() []webapi.Assembly {
	return r.DefaultAssembliesResolver.GetAssemblies()
}

// RegisterWebAPI applies the startup registration to cfg. It must run once,
// before cfg is initialized. resolver is installed as given.
func RegisterWebAPI(cfg *webapi.Configuration, resolver webapi.DependencyResolver) error {
	cfg.DependencyResolver = resolver

	if err := cfg.Services.Replace(webapi.AssembliesResolverService, AssembliesResolver{}); err != nil {
		return fmt.Errorf("error replacing assemblies resolver: %w", err)
	}

	cfg.Formatters.JSONFormatter.SerializerSettings.ContractResolver = &webapi.DefaultContractResolver{}

	traceWriter, err := cfg.EnableDiagnosticsTracing()
	if err != nil {
		return fmt.Errorf("error enabling diagnostics tracing: %w", err)
	}
	traceWriter.MinimumLevel = webapi.TraceLevelDebug

	if err = cfg.MapHTTPAttributeRoutes(); err != nil {
		return fmt.Errorf("error mapping attribute routes: %w", err)
	}

	if _, err = cfg.Routes.MapHTTPRoute(DefaultRouteName, DefaultRouteTemplate, webapi.RouteDefaults{
		"id": webapi.RouteParameterOptional,
	}); err != nil {
		return fmt.Errorf("error mapping %s route: %w", DefaultRouteName, err)
	}

	return nil
}
