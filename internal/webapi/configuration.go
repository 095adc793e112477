// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/go-chi/chi/v5"
)

// Formatters holds the media type formatters of a configuration.
type Formatters struct {
	JSONFormatter *JSONFormatter
}

// Configuration is the host's request pipeline configuration. It is written
// once during startup and must not be mutated after EnsureInitialized.
type Configuration struct {
	// DependencyResolver constructs controllers. It defaults to
	// [EmptyResolver].
	DependencyResolver DependencyResolver

	// Services holds the replaceable pipeline services.
	Services *ServicesContainer

	// Formatters holds the body formatters.
	Formatters *Formatters

	// Routes is the route table.
	Routes *RouteCollection

	// MessageHandlers wrap every request that reaches the route table, in
	// order (the first handler is outermost).
	MessageHandlers []func(http.Handler) http.Handler

	logger *logger.Logger

	mu                sync.Mutex
	attributeRouting  bool
	attributeRoutesAt int
	initialized       bool
	initErr           error
	controllers       map[string]ControllerDescriptor
	handler           http.Handler
}

// NewConfiguration returns an uninitialized configuration with default
// services, an empty route table and a JSON formatter.
func NewConfiguration(log *logger.Logger) *Configuration {
	if log == nil {
		log = logger.Nop()
	}
	return &Configuration{
		DependencyResolver: EmptyResolver{},
		Services:           newServicesContainer(),
		Formatters:         &Formatters{JSONFormatter: NewJSONFormatter()},
		Routes:             newRouteCollection(),
		logger:             log.WithComponent("webapi"),
	}
}

// MapHTTPAttributeRoutes enables attribute routing. The routes declared on
// discovered controllers are added to the route table at the current
// position when the configuration is initialized.
func (c *Configuration) MapHTTPAttributeRoutes() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return ErrConfigurationFrozen
	}
	if c.attributeRouting {
		return nil
	}
	c.attributeRouting = true
	c.attributeRoutesAt = c.Routes.Len()
	return nil
}

// EnableDiagnosticsTracing installs a [DiagnosticsTraceWriter] as the trace
// writer service and returns it so the caller can adjust its level.
func (c *Configuration) EnableDiagnosticsTracing() (*DiagnosticsTraceWriter, error) {
	writer := NewDiagnosticsTraceWriter(c.logger)
	if err := c.Services.Replace(TraceWriterService, writer); err != nil {
		return nil, err
	}
	return writer, nil
}

// IsInitialized reports whether EnsureInitialized has run.
func (c *Configuration) IsInitialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.initialized
}

// EnsureInitialized discovers controllers, adds attribute routes, freezes
// the configuration and builds the request handler. It runs once; later
// calls return the first result.
func (c *Configuration) EnsureInitialized() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return c.initErr
	}
	c.initialized = true
	c.initErr = c.initialize()
	if c.initErr != nil {
		c.logger.Error().Err(c.initErr).Msg("web api configuration failed to initialize")
	}
	return c.initErr
}

// Handler initializes the configuration if needed and returns the handler
// serving the route table.
func (c *Configuration) Handler() (http.Handler, error) {
	if err := c.EnsureInitialized(); err != nil {
		return nil, err
	}
	return c.handler, nil
}

// Controllers returns the controllers discovered during initialization,
// ordered by name.
func (c *Configuration) Controllers() []ControllerDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]ControllerDescriptor, 0, len(c.controllers))
	for _, d := range c.controllers {
		result = append(result, d)
	}
	slices.SortFunc(result, func(a, b ControllerDescriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result
}

func (c *Configuration) initialize() error {
	if c.DependencyResolver == nil {
		return ErrNoDependencyResolver
	}

	controllers, owners, err := discoverControllers(c.Services.AssembliesResolver())
	if err != nil {
		return err
	}
	c.controllers = controllers

	if c.attributeRouting {
		routes, err := attributeRoutes(controllers)
		if err != nil {
			return err
		}
		if err := c.Routes.insertAt(c.attributeRoutesAt, routes); err != nil {
			return err
		}
	}

	c.Routes.freeze()
	c.Services.freeze()

	handler, err := c.buildRouter()
	if err != nil {
		return err
	}
	c.handler = handler

	c.logger.Info().
		Int("controllers", len(controllers)).
		Strs("assemblies", owners).
		Int("routes", c.Routes.Len()).
		Msg("web api configuration initialized")

	return nil
}

// discoverControllers indexes controllers by lower-cased name.
func discoverControllers(resolver AssembliesResolver) (map[string]ControllerDescriptor, []string, error) {
	controllers := make(map[string]ControllerDescriptor)
	ownerOf := make(map[string]string)
	var names []string

	for _, assembly := range resolver.GetAssemblies() {
		names = append(names, assembly.Name)
		for _, d := range assembly.Controllers {
			if err := d.validate(); err != nil {
				return nil, nil, fmt.Errorf("assembly %q: %w", assembly.Name, err)
			}
			key := strings.ToLower(d.Name)
			if owner, dup := ownerOf[key]; dup {
				return nil, nil, fmt.Errorf("%w: %q in assemblies %q and %q", ErrAmbiguousController, d.Name, owner, assembly.Name)
			}
			ownerOf[key] = assembly.Name
			controllers[key] = d
		}
	}

	return controllers, names, nil
}

func attributeRoutes(controllers map[string]ControllerDescriptor) ([]*HTTPRoute, error) {
	keys := make([]string, 0, len(controllers))
	for k := range controllers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var routes []*HTTPRoute
	for _, key := range keys {
		descriptor := controllers[key]
		for _, attr := range descriptor.Routes {
			route, err := newHTTPRoute(attr.Name, attr.Template, nil)
			if err != nil {
				return nil, fmt.Errorf("controller %s: %w", descriptor.Name, err)
			}
			route.Method = attr.Method
			route.controller = &descriptor
			route.action = attr.Action
			routes = append(routes, route)
		}
	}
	return routes, nil
}

// buildRouter registers conventional routes first and attribute routes
// last, so an attribute route wins over a conventional one with an
// identical pattern and verb.
func (c *Configuration) buildRouter() (handler http.Handler, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrRouteConflict, rec)
		}
	}()

	router := chi.NewRouter()
	for _, mw := range c.MessageHandlers {
		router.Use(mw)
	}
	router.NotFound(c.notFound)
	router.MethodNotAllowed(c.notFound)

	routes := c.Routes.All()
	registered := make(map[string]struct{})

	for _, route := range routes {
		if route.IsAttributeRoute() {
			continue
		}
		for _, p := range route.patterns() {
			if _, dup := registered[p.pattern]; dup {
				continue
			}
			registered[p.pattern] = struct{}{}
			router.Handle(p.pattern, c.routeHandler(route, p))
		}
	}

	for _, route := range routes {
		if !route.IsAttributeRoute() {
			continue
		}
		for _, p := range route.patterns() {
			if route.Method == "" {
				router.Handle(p.pattern, c.routeHandler(route, p))
				continue
			}
			router.Method(route.Method, p.pattern, c.routeHandler(route, p))
		}
	}

	return router, nil
}
