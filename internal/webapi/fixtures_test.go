// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type book struct {
	ID    string
	Title string
}

// booksController is a fixture controller supporting GET, POST and DELETE.
type booksController struct {
	shelf string
}

func (c *booksController) List(r *Request) (any, error) {
	_, hasID := r.RouteValues.Get(idRouteKey)
	return map[string]any{
		"Controller": r.Controller,
		"HasID":      hasID,
		"Shelf":      c.shelf,
		"Books":      []book{{ID: "5", Title: "Dune"}},
	}, nil
}

func (c *booksController) Get(_ *Request, id string) (any, error) {
	if id == "404" {
		return nil, fmt.Errorf("book %s: %w", id, ErrResourceNotFound)
	}
	return book{ID: id, Title: "Dune"}, nil
}

func (c *booksController) Post(r *Request) (any, error) {
	var b book
	if err := r.Bind(&b); err != nil {
		return nil, err
	}
	return Created("/api/books/"+b.ID, b), nil
}

func (c *booksController) Delete(*Request, string) (any, error) {
	return nil, nil
}

func (c *booksController) Cover(r *Request) (any, error) {
	return Text("cover of " + r.RouteValues["id"]), nil
}

func (c *booksController) Featured(*Request) (any, error) {
	return book{ID: "featured", Title: "Dune"}, nil
}

func booksDescriptor() ControllerDescriptor {
	return Controller[*booksController]("BooksController",
		Route[*booksController](http.MethodGet, "api/books/{id}/cover", (*booksController).Cover).Named("BookCover"),
		Route[*booksController](http.MethodGet, "api/books/featured", (*booksController).Featured),
	)
}

// authorsController only lists.
type authorsController struct{}

func (authorsController) List(*Request) (any, error) {
	return []string{"Frank Herbert"}, nil
}

func testAssemblies() StaticAssembliesResolver {
	return StaticAssembliesResolver{Assemblies: []Assembly{{
		Name: "library",
		Controllers: []ControllerDescriptor{
			booksDescriptor(),
			Controller[authorsController]("Authors"),
		},
	}}}
}

// stubScope serves fixed instances and counts Close calls.
type stubScope struct {
	instances map[reflect.Type]any
	err       error
	closed    *atomic.Int32
}

func (s stubScope) GetService(t reflect.Type) (any, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.instances[t], nil
}

func (s stubScope) Close() error {
	if s.closed != nil {
		s.closed.Add(1)
	}
	return nil
}

// stubResolver hands out stubScope children.
type stubResolver struct {
	stubScope
	begun *atomic.Int32
}

func (r stubResolver) BeginScope() DependencyScope {
	if r.begun != nil {
		r.begun.Add(1)
	}
	return r.stubScope
}

var errResolverBroken = errors.New("resolver broken")

// newBooksConfiguration maps attribute routes and DefaultApi over the test
// assemblies.
func newBooksConfiguration(t *testing.T) *Configuration {
	t.Helper()

	cfg := NewConfiguration(nil)
	require.NoError(t, cfg.Services.Replace(AssembliesResolverService, testAssemblies()))
	require.NoError(t, cfg.MapHTTPAttributeRoutes())
	_, err := cfg.Routes.MapHTTPRoute("DefaultApi", "api/{controller}/{id}", RouteDefaults{"id": RouteParameterOptional})
	require.NoError(t, err)

	return cfg
}

func serve(t *testing.T, cfg *Configuration, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler, err := cfg.Handler()
	require.NoError(t, err)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}
