// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// RouteValues are the parameters captured by the matched route, plus any
// non-optional defaults of that route.
type RouteValues map[string]string

// Get returns the value for key and whether it is present.
func (v RouteValues) Get(key string) (string, bool) {
	value, ok := v[key]
	return value, ok
}

// Request is what controller actions receive.
type Request struct {
	*http.Request

	// Controller is the name of the selected controller.
	Controller string

	// RouteName is the name of the matched route, if it has one.
	RouteName string

	// RouteValues holds the matched route parameters.
	RouteValues RouteValues

	formatter *JSONFormatter
}

// Bind decodes the JSON request body into v using the configured formatter.
func (r *Request) Bind(v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("%w: empty body", ErrInvalidRequestBody)
	}
	if err := r.formatter.ReadFrom(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidRequestBody)
		}
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// Result lets an action choose the response status and headers.
type Result struct {
	Status int
	Header http.Header
	Body   any
}

// OK returns a 200 result.
func OK(body any) *Result {
	return &Result{Status: http.StatusOK, Body: body}
}

// Created returns a 201 result with a Location header when location is set.
func Created(location string, body any) *Result {
	res := &Result{Status: http.StatusCreated, Body: body}
	if location != "" {
		res.Header = http.Header{"Location": []string{location}}
	}
	return res
}

// NoContent returns a 204 result.
func NoContent() *Result {
	return &Result{Status: http.StatusNoContent}
}

// Text returns a 200 text/plain result.
func Text(s string) *Result {
	return &Result{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": []string{"text/plain; charset=utf-8"}},
		Body:   s,
	}
}
