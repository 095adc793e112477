package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/container"
	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/MKhiriev/book-library/internal/webapi"
	"github.com/MKhiriev/book-library/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembly_RegisteredOnImport(t *testing.T) {
	var names []string
	for _, a := range (webapi.DefaultAssembliesResolver{}).GetAssemblies() {
		names = append(names, a.Name)
	}

	assert.Contains(t, names, AssemblyName)
}

func TestRegister_PerRequest(t *testing.T) {
	b := Register(container.NewBuilder(), config.App{Version: "1.0.0"}, models.AppBuildInfo{}, startedAt, logger.Nop())
	c, err := b.Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	first := c.BeginLifetimeScope()
	second := c.BeginLifetimeScope()
	t.Cleanup(func() {
		_ = first.Close()
		_ = second.Close()
	})

	a, err := container.Resolve[*StatusController](first)
	require.NoError(t, err)
	again, err := container.Resolve[*StatusController](first)
	require.NoError(t, err)
	other, err := container.Resolve[*StatusController](second)
	require.NoError(t, err)

	assert.Same(t, a, again)
	assert.NotSame(t, a, other)
}

// newStatusAPI serves the package assembly through the container.
func newStatusAPI(t *testing.T, app config.App) http.Handler {
	t.Helper()

	b := Register(container.NewBuilder(), app, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"), time.Now(), logger.Nop())
	c, err := b.Build()
	require.NoError(t, err)
	resolver := container.NewDependencyResolver(c)
	t.Cleanup(func() { _ = resolver.Close() })

	api := webapi.NewConfiguration(nil)
	api.DependencyResolver = resolver
	require.NoError(t, api.Services.Replace(webapi.AssembliesResolverService, webapi.StaticAssembliesResolver{
		Assemblies: []webapi.Assembly{Assembly},
	}))
	require.NoError(t, api.MapHTTPAttributeRoutes())
	_, err = api.Routes.MapHTTPRoute("DefaultApi", "api/{controller}/{id}", webapi.RouteDefaults{"id": webapi.RouteParameterOptional})
	require.NoError(t, err)

	handler, err := api.Handler()
	require.NoError(t, err)
	return handler
}

func TestStatusRoutes(t *testing.T) {
	handler := newStatusAPI(t, config.App{Name: "book-library"})

	tests := []struct {
		name            string
		method          string
		target          string
		wantStatus      int
		wantContentType string
		wantBody        []string
	}{
		{
			name:            "status",
			method:          http.MethodGet,
			target:          "/api/status",
			wantStatus:      http.StatusOK,
			wantContentType: "application/json; charset=utf-8",
			wantBody:        []string{`"Name":"book-library"`, `"Version":"1.0.0"`, `"Commit":"abc123"`, `"Uptime":"`},
		},
		{
			name:            "controller name is case-insensitive",
			method:          http.MethodGet,
			target:          "/api/STATUS",
			wantStatus:      http.StatusOK,
			wantContentType: "application/json; charset=utf-8",
			wantBody:        []string{`"BuildDate":"2026-01-01"`},
		},
		{
			name:            "version",
			method:          http.MethodGet,
			target:          "/api/version",
			wantStatus:      http.StatusOK,
			wantContentType: "text/plain; charset=utf-8",
			wantBody:        []string{"1.0.0"},
		},
		{
			name:       "status is read-only",
			method:     http.MethodPost,
			target:     "/api/status",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantContentType != "" {
				assert.Equal(t, tt.wantContentType, rr.Header().Get("Content-Type"))
			}
			for _, want := range tt.wantBody {
				assert.Contains(t, rr.Body.String(), want)
			}
		})
	}
}
