// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/go-chi/chi/v5"
)

const (
	controllerRouteKey = "controller"
	idRouteKey         = "id"
)

func (c *Configuration) routeHandler(route *HTTPRoute, p routePattern) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := routeValuesFor(r, route, p.segments)

		tw := c.Services.TraceWriter()
		tw.Trace(r, CategoryRouting, TraceLevelDebug, func(rec *TraceRecord) {
			rec.Operator = "HttpRouteCollection"
			rec.Operation = "GetRouteData"
			rec.Message = fmt.Sprintf("route %q matched with values %v", route.Template, map[string]string(values))
		})

		c.dispatch(w, r, route, values)
	}
}

// routeValuesFor collects the captured parameters of the pattern that
// matched, plus the route's non-optional defaults.
func routeValuesFor(r *http.Request, route *HTTPRoute, segments []templateSegment) RouteValues {
	values := make(RouteValues, len(route.Defaults)+len(segments))

	rctx := chi.RouteContext(r.Context())
	for _, seg := range segments {
		if !seg.isParam() || rctx == nil {
			continue
		}
		key := seg.param
		if seg.catchAll {
			key = "*"
		}
		values[seg.param] = rctx.URLParam(key)
	}

	for name, def := range route.Defaults {
		if _, ok := values[name]; ok {
			continue
		}
		if _, optional := def.(optionalParameter); optional {
			continue
		}
		values[name] = fmt.Sprint(def)
	}

	return values
}

func (c *Configuration) dispatch(w http.ResponseWriter, r *http.Request, route *HTTPRoute, values RouteValues) {
	tw := c.Services.TraceWriter()

	descriptor, err := c.selectController(r, tw, route, values)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	scope := c.DependencyResolver.BeginScope()
	defer func() {
		if err := scope.Close(); err != nil {
			c.requestLogger(r).Warn().Err(err).Msg("error closing dependency scope")
		}
	}()

	var controller any
	_, err = traceBeginEnd(tw, r, CategoryControllers, "DefaultControllerActivator", "Create", func() (int, error) {
		var err error
		controller, err = c.Services.ControllerActivator().Create(r, descriptor, scope)
		if err != nil {
			return statusFromError(err), err
		}
		return 0, nil
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	action, allowed := c.selectAction(route, controller, r.Method, values)
	if action == nil {
		err := fmt.Errorf("%w: %s %s", ErrActionNotFound, r.Method, descriptor.Name)
		tw.Trace(r, CategoryActions, TraceLevelWarn, func(rec *TraceRecord) {
			rec.Operator = "ApiControllerActionSelector"
			rec.Operation = "SelectAction"
			rec.Status = http.StatusMethodNotAllowed
			rec.Err = err
		})
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		c.writeError(w, r, err)
		return
	}

	req := &Request{
		Request:     r,
		Controller:  descriptor.Name,
		RouteName:   route.Name,
		RouteValues: values,
		formatter:   c.Formatters.JSONFormatter,
	}

	var result any
	_, err = traceBeginEnd(tw, r, CategoryActions, descriptor.Name+"Controller", "InvokeAction", func() (int, error) {
		var err error
		result, err = action(controller, req)
		if err != nil {
			return statusFromError(err), err
		}
		return 0, nil
	})
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	_, _ = traceBeginEnd(tw, r, CategoryFormatting, "JsonMediaTypeFormatter", "WriteToStream", func() (int, error) {
		return c.writeResult(w, result)
	})
}

func (c *Configuration) selectController(r *http.Request, tw TraceWriter, route *HTTPRoute, values RouteValues) (ControllerDescriptor, error) {
	if route.IsAttributeRoute() {
		return *route.controller, nil
	}

	var descriptor ControllerDescriptor
	_, err := traceBeginEnd(tw, r, CategoryControllers, "DefaultHttpControllerSelector", "SelectController", func() (int, error) {
		name, ok := values.Get(controllerRouteKey)
		if !ok || name == "" {
			return http.StatusNotFound, fmt.Errorf("%w: route %q has no controller value", ErrControllerNotFound, route.Template)
		}
		d, found := c.controllers[strings.ToLower(name)]
		if !found {
			return http.StatusNotFound, fmt.Errorf("%w: no type was found that matches the controller named '%s'", ErrControllerNotFound, name)
		}
		descriptor = d
		return 0, nil
	})

	return descriptor, err
}

func (c *Configuration) selectAction(route *HTTPRoute, controller any, method string, values RouteValues) (Action, []string) {
	if route.IsAttributeRoute() {
		return route.action, nil
	}
	id, hasID := values.Get(idRouteKey)
	return conventionalAction(controller, method, id, hasID)
}

// writeResult writes what an action returned: nil becomes 204, a [Result]
// sets status and headers, anything else is a 200 JSON body.
func (c *Configuration) writeResult(w http.ResponseWriter, result any) (int, error) {
	formatter := c.Formatters.JSONFormatter

	var res *Result
	switch v := result.(type) {
	case nil:
		w.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent, nil
	case *Result:
		res = v
	case Result:
		res = &v
	default:
		_, err := formatter.WriteResponse(w, http.StatusOK, v)
		return http.StatusOK, err
	}

	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return http.StatusNoContent, nil
	}

	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	for key, vals := range res.Header {
		for _, v := range vals {
			w.Header().Add(key, v)
		}
	}

	if res.Body == nil {
		w.WriteHeader(status)
		return status, nil
	}
	if text, ok := res.Body.(string); ok && strings.HasPrefix(w.Header().Get("Content-Type"), "text/") {
		w.WriteHeader(status)
		_, err := w.Write([]byte(text))
		return status, err
	}

	_, err := formatter.WriteResponse(w, status, res.Body)
	return status, err
}

func (c *Configuration) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		c.requestLogger(r).Error().Err(err).Msg("request failed")
	}

	if _, werr := c.Formatters.JSONFormatter.WriteResponse(w, status, newHTTPError(status, err)); werr != nil {
		c.requestLogger(r).Error().Err(werr).Msg("error writing error response")
	}
}

func (c *Configuration) notFound(w http.ResponseWriter, r *http.Request) {
	c.Services.TraceWriter().Trace(r, CategoryRouting, TraceLevelWarn, func(rec *TraceRecord) {
		rec.Operator = "HttpRouteCollection"
		rec.Operation = "GetRouteData"
		rec.Status = http.StatusNotFound
		rec.Message = "no route matched"
	})

	if _, err := c.Formatters.JSONFormatter.WriteResponse(w, http.StatusNotFound, HTTPError{Message: msgNoResourceFound}); err != nil {
		c.requestLogger(r).Error().Err(err).Msg("error writing not found response")
	}
}

func (c *Configuration) requestLogger(r *http.Request) *logger.Logger {
	if logger.HasContextLogger(r.Context()) {
		return logger.FromRequest(r)
	}
	return c.logger
}
