// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

const controllerSuffix = "Controller"

// Conventional actions. A controller reached through a mapped route template
// handles the HTTP verbs whose interfaces it implements.
type (
	// Lister handles GET without an id.
	Lister interface {
		List(r *Request) (any, error)
	}

	// Getter handles GET with an id.
	Getter interface {
		Get(r *Request, id string) (any, error)
	}

	// Poster handles POST.
	Poster interface {
		Post(r *Request) (any, error)
	}

	// Putter handles PUT with an id.
	Putter interface {
		Put(r *Request, id string) (any, error)
	}

	// Deleter handles DELETE with an id.
	Deleter interface {
		Delete(r *Request, id string) (any, error)
	}
)

// Action is a controller method bound to a resolved controller instance.
type Action func(controller any, r *Request) (any, error)

// ControllerDescriptor describes a controller for discovery. Type is the
// type the dependency resolver is asked for, typically a struct pointer.
type ControllerDescriptor struct {
	Name   string
	Type   reflect.Type
	Routes []RouteAttribute
}

// Controller builds a descriptor for controllers of type T. A trailing
// "Controller" suffix is trimmed from name.
func Controller[T any](name string, routes ...RouteAttribute) ControllerDescriptor {
	return ControllerDescriptor{
		Name:   trimControllerSuffix(name),
		Type:   reflect.TypeFor[T](),
		Routes: routes,
	}
}

func trimControllerSuffix(name string) string {
	if trimmed := strings.TrimSuffix(name, controllerSuffix); trimmed != "" {
		return trimmed
	}
	return name
}

func (d ControllerDescriptor) validate() error {
	if d.Name == "" || d.Type == nil {
		return fmt.Errorf("%w: name and type are required", ErrInvalidController)
	}
	for _, rt := range d.Routes {
		if rt.Action == nil || rt.Template == "" {
			return fmt.Errorf("%w: route on %s needs a template and an action", ErrInvalidController, d.Name)
		}
	}
	return nil
}

// RouteAttribute declares a route directly on a controller.
type RouteAttribute struct {
	// Method is the HTTP verb; empty matches any verb.
	Method string
	// Template is relative to the site root, e.g. "api/books/{id}/cover".
	Template string
	// Name optionally names the route.
	Name string
	// Action runs the route against a resolved controller.
	Action Action
}

// Route declares an attribute route handled by a method of controllers of
// type T.
func Route[T any](method, template string, action func(c T, r *Request) (any, error)) RouteAttribute {
	return RouteAttribute{
		Method:   strings.ToUpper(method),
		Template: template,
		Action: func(controller any, r *Request) (any, error) {
			typed, ok := controller.(T)
			if !ok {
				return nil, fmt.Errorf("%w: got %T", ErrControllerTypeMismatch, controller)
			}
			return action(typed, r)
		},
	}
}

// Named sets the route name.
func (a RouteAttribute) Named(name string) RouteAttribute {
	a.Name = name
	return a
}

// conventionalAction picks the verb-based action for controller, and
// reports the verbs it supports otherwise.
func conventionalAction(controller any, method string, id string, hasID bool) (Action, []string) {
	var action Action
	switch method {
	case http.MethodGet, http.MethodHead:
		if hasID {
			if c, ok := controller.(Getter); ok {
				action = func(_ any, r *Request) (any, error) { return c.Get(r, id) }
			}
		} else if c, ok := controller.(Lister); ok {
			action = func(_ any, r *Request) (any, error) { return c.List(r) }
		}
	case http.MethodPost:
		if c, ok := controller.(Poster); ok {
			action = func(_ any, r *Request) (any, error) { return c.Post(r) }
		}
	case http.MethodPut:
		if c, ok := controller.(Putter); ok && hasID {
			action = func(_ any, r *Request) (any, error) { return c.Put(r, id) }
		}
	case http.MethodDelete:
		if c, ok := controller.(Deleter); ok && hasID {
			action = func(_ any, r *Request) (any, error) { return c.Delete(r, id) }
		}
	}

	if action != nil {
		return action, nil
	}
	return nil, allowedMethods(controller, hasID)
}

func allowedMethods(controller any, hasID bool) []string {
	var allowed []string
	if _, ok := controller.(Getter); ok && hasID {
		allowed = append(allowed, http.MethodGet)
	}
	if _, ok := controller.(Lister); ok && !hasID {
		allowed = append(allowed, http.MethodGet)
	}
	if _, ok := controller.(Poster); ok {
		allowed = append(allowed, http.MethodPost)
	}
	if _, ok := controller.(Putter); ok && hasID {
		allowed = append(allowed, http.MethodPut)
	}
	if _, ok := controller.(Deleter); ok && hasID {
		allowed = append(allowed, http.MethodDelete)
	}
	return allowed
}
