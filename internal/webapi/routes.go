// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"fmt"
	"maps"
	"strings"
	"sync"
)

type optionalParameter struct{}

func (optionalParameter) String() string { return "" }

// RouteParameterOptional marks a template parameter as optional in
// [RouteDefaults].
var RouteParameterOptional = optionalParameter{}

// RouteDefaults maps template parameter names to default values or to
// [RouteParameterOptional].
type RouteDefaults map[string]any

type templateSegment struct {
	literal  string
	param    string
	catchAll bool
	optional bool
}

func (s templateSegment) isParam() bool { return s.param != "" }

// HTTPRoute is a mapped route template. Attribute routes additionally carry
// the controller and action they are bound to.
type HTTPRoute struct {
	Name     string
	Template string
	Defaults RouteDefaults
	// Method restricts an attribute route to one HTTP verb.
	Method string

	segments   []templateSegment
	controller *ControllerDescriptor
	action     Action
}

// IsAttributeRoute reports whether the route was declared on a controller.
func (r *HTTPRoute) IsAttributeRoute() bool {
	return r.controller != nil
}

// parseRouteTemplate splits a template like "api/{controller}/{id}" into
// segments.
func parseRouteTemplate(template string) ([]templateSegment, error) {
	if strings.HasPrefix(template, "/") || strings.HasPrefix(template, "~") {
		return nil, fmt.Errorf("%w: %q must not start with '/' or '~'", ErrInvalidRouteTemplate, template)
	}
	if template == "" {
		return nil, nil
	}

	parts := strings.Split(template, "/")
	segments := make([]templateSegment, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidRouteTemplate, template)
		}

		open := strings.Count(part, "{")
		closing := strings.Count(part, "}")
		if open == 0 && closing == 0 {
			if strings.Contains(part, "?") {
				return nil, fmt.Errorf("%w: %q: literal %q must not contain '?'", ErrInvalidRouteTemplate, template, part)
			}
			segments = append(segments, templateSegment{literal: part})
			continue
		}
		if open != 1 || closing != 1 || !strings.HasPrefix(part, "{") || !strings.HasSuffix(part, "}") {
			return nil, fmt.Errorf("%w: %q: segment %q must be a literal or a single {parameter}", ErrInvalidRouteTemplate, template, part)
		}

		name := part[1 : len(part)-1]
		seg := templateSegment{}
		if strings.HasPrefix(name, "*") {
			if i != len(parts)-1 {
				return nil, fmt.Errorf("%w: %q: catch-all parameter must be last", ErrInvalidRouteTemplate, template)
			}
			seg.catchAll = true
			name = name[1:]
		}
		if trimmed, ok := strings.CutSuffix(name, "?"); ok {
			seg.optional = true
			name = trimmed
		}
		if name == "" || strings.ContainsAny(name, "*{}") {
			return nil, fmt.Errorf("%w: %q: bad parameter name in %q", ErrInvalidRouteTemplate, template, part)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q: parameter %q repeated", ErrInvalidRouteTemplate, template, name)
		}
		seen[name] = struct{}{}

		seg.param = name
		segments = append(segments, seg)
	}

	return segments, nil
}

// newHTTPRoute parses template and checks that optional parameters only
// appear in trailing positions.
func newHTTPRoute(name, template string, defaults RouteDefaults) (*HTTPRoute, error) {
	segments, err := parseRouteTemplate(template)
	if err != nil {
		return nil, err
	}

	defaults = maps.Clone(defaults)
	for _, seg := range segments {
		if !seg.optional {
			continue
		}
		if defaults == nil {
			defaults = RouteDefaults{}
		}
		defaults[seg.param] = RouteParameterOptional
	}

	route := &HTTPRoute{
		Name:     name,
		Template: template,
		Defaults: defaults,
		segments: segments,
	}

	first := route.firstOmittable()
	for i, seg := range segments {
		if i < first && seg.isParam() && route.isOptional(seg.param) {
			return nil, fmt.Errorf("%w: %q: optional parameter %q is followed by a required segment",
				ErrInvalidRouteTemplate, template, seg.param)
		}
	}

	return route, nil
}

func (r *HTTPRoute) isOptional(param string) bool {
	v, ok := r.Defaults[param]
	if !ok {
		return false
	}
	_, optional := v.(optionalParameter)
	return optional
}

func (r *HTTPRoute) hasDefault(param string) bool {
	_, ok := r.Defaults[param]
	return ok
}

// firstOmittable returns the index of the first segment of the trailing run
// of parameters that have defaults; those segments may be left out of a URL.
func (r *HTTPRoute) firstOmittable() int {
	i := len(r.segments)
	for i > 0 {
		seg := r.segments[i-1]
		if !seg.isParam() || !r.hasDefault(seg.param) {
			break
		}
		i--
	}
	return i
}

// routePattern is one chi pattern serving a route, with the template
// segments it covers.
type routePattern struct {
	pattern  string
	segments []templateSegment
}

// patterns returns the chi patterns that serve this route, longest first.
func (r *HTTPRoute) patterns() []routePattern {
	first := r.firstOmittable()
	result := make([]routePattern, 0, len(r.segments)-first+1)
	for n := len(r.segments); n >= first; n-- {
		result = append(result, routePattern{
			pattern:  chiPattern(r.segments[:n]),
			segments: r.segments[:n],
		})
	}
	return result
}

func chiPattern(segments []templateSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		b.WriteByte('/')
		switch {
		case seg.catchAll:
			b.WriteByte('*')
		case seg.isParam():
			b.WriteString("{" + seg.param + "}")
		default:
			b.WriteString(seg.literal)
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// RouteCollection is the named route table of a [Configuration].
type RouteCollection struct {
	mu     sync.RWMutex
	routes []*HTTPRoute
	byName map[string]*HTTPRoute
	frozen bool
}

func newRouteCollection() *RouteCollection {
	return &RouteCollection{byName: make(map[string]*HTTPRoute)}
}

// MapHTTPRoute adds a conventional route. The template's {controller}
// parameter selects the controller; {id}, when present, is passed to the
// verb action.
func (rc *RouteCollection) MapHTTPRoute(name, template string, defaults RouteDefaults) (*HTTPRoute, error) {
	route, err := newHTTPRoute(name, template, defaults)
	if err != nil {
		return nil, err
	}
	return route, rc.add(route)
}

func (rc *RouteCollection) add(route *HTTPRoute) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.frozen {
		return ErrConfigurationFrozen
	}
	if route.Name != "" {
		if _, dup := rc.byName[route.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateRouteName, route.Name)
		}
		rc.byName[route.Name] = route
	}
	rc.routes = append(rc.routes, route)
	return nil
}

// insertAt adds routes at position pos, keeping their order.
func (rc *RouteCollection) insertAt(pos int, routes []*HTTPRoute) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.frozen {
		return ErrConfigurationFrozen
	}
	for _, route := range routes {
		if route.Name == "" {
			continue
		}
		if _, dup := rc.byName[route.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateRouteName, route.Name)
		}
		rc.byName[route.Name] = route
	}

	pos = min(max(pos, 0), len(rc.routes))
	rc.routes = append(rc.routes[:pos], append(append([]*HTTPRoute(nil), routes...), rc.routes[pos:]...)...)
	return nil
}

// Get returns the route registered under name.
func (rc *RouteCollection) Get(name string) (*HTTPRoute, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	route, ok := rc.byName[name]
	return route, ok
}

// All returns the routes in mapping order.
func (rc *RouteCollection) All() []*HTTPRoute {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	return append([]*HTTPRoute(nil), rc.routes...)
}

// Len returns the number of mapped routes.
func (rc *RouteCollection) Len() int {
	rc.mu.RLock()
	defer rc.mu.RUnlock()

	return len(rc.routes)
}

func (rc *RouteCollection) freeze() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	rc.frozen = true
}
