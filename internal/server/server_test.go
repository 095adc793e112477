package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/book-library/internal/app"
	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/container"
	"github.com/MKhiriev/book-library/internal/handler"
	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/MKhiriev/book-library/internal/webapi"
	"github.com/MKhiriev/book-library/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func testConfig(address string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{Name: "book-library", Version: "1.2.3"},
		Server: config.Server{
			HTTPAddress:     address,
			RequestTimeout:  time.Second,
			ShutdownTimeout: 2 * time.Second,
		},
		Metrics: config.Metrics{Path: "/metrics"},
	}
}

// newTestServer wires the host the way main does, with hooks appended
// after the container disposal hook.
func newTestServer(t *testing.T, cfg *config.StructuredConfig, hooks ...ShutdownHook) *server {
	t.Helper()

	log := logger.Nop()
	c, err := app.NewContainer(cfg, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123"), time.Now(), log)
	require.NoError(t, err)
	resolver := container.NewDependencyResolver(c)

	api := webapi.NewConfiguration(log)
	require.NoError(t, app.RegisterWebAPI(api, resolver))

	handlers, err := handler.NewHandlers(api, cfg, log)
	require.NoError(t, err)

	closeResolver := func(context.Context) error { return resolver.Close() }
	srv, err := NewServer(handlers, cfg.Server, log, append([]ShutdownHook{closeResolver}, hooks...)...)
	require.NoError(t, err)

	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", handlers: nil, cfg: config.Server{HTTPAddress: ":8080"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":8080"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			assert.Nil(t, srv)
			assert.ErrorIs(t, err, errNoServersAreCreated)
		})
	}
}

func TestNewServer_InitError(t *testing.T) {
	cfg := testConfig("127.0.0.1:0")
	api := webapi.NewConfiguration(nil)
	require.NoError(t, api.Services.Replace(webapi.AssembliesResolverService, webapi.StaticAssembliesResolver{
		Assemblies: []webapi.Assembly{
			{Name: "a", Controllers: []webapi.ControllerDescriptor{webapi.Controller[*struct{}]("Dup")}},
			{Name: "b", Controllers: []webapi.ControllerDescriptor{webapi.Controller[*struct{}]("Dup")}},
		},
	}))
	handlers, err := handler.NewHandlers(api, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg.Server, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, webapi.ErrAmbiguousController)
}

func TestServer_ServesAndStops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var hookCalls atomic.Int32
	srv := newTestServer(t, testConfig("127.0.0.1:0"), func(context.Context) error {
		hookCalls.Add(1)
		return nil
	})

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.serve(ctx, l)
	}()

	client := resty.New().SetBaseURL("http://" + l.Addr().String())
	defer client.GetClient().CloseIdleConnections()

	var status models.Status
	resp, err := client.R().SetResult(&status).Get("/api/status")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "book-library", status.Name)
	assert.Equal(t, "1.2.3", status.Version)
	assert.Equal(t, "abc123", status.Commit)
	assert.NotEmpty(t, resp.Header().Get("X-Trace-ID"))

	resp, err = client.R().Get("/api/version")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "1.2.3", resp.String())

	resp, err = client.R().Get("/api/books/5")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = client.R().Get("/metrics")
	require.NoError(t, err)
	assert.Contains(t, resp.String(), `route="/api/version"`)

	client.GetClient().CloseIdleConnections()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
	assert.Equal(t, int32(1), hookCalls.Load())

	// a second shutdown is a no-op
	require.NoError(t, srv.Shutdown())
	assert.Equal(t, int32(1), hookCalls.Load())
}

func TestServer_ShutdownFromOutside(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := newTestServer(t, testConfig("127.0.0.1:0"))

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- srv.serve(context.Background(), l)
	}()

	require.NoError(t, srv.Shutdown())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after Shutdown")
	}
}

func TestServer_HookErrors(t *testing.T) {
	errFlush := errors.New("flush failed")
	srv := newTestServer(t, testConfig("127.0.0.1:0"), func(context.Context) error {
		return errFlush
	})

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = srv.serve(ctx, l)

	assert.ErrorIs(t, err, errFlush)
}

func TestServer_ListenError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	var hookCalls atomic.Int32
	srv := newTestServer(t, testConfig(taken.Addr().String()), func(context.Context) error {
		hookCalls.Add(1)
		return nil
	})

	err = srv.run(context.Background())

	assert.ErrorContains(t, err, "error listening on "+taken.Addr().String())
	assert.Equal(t, int32(1), hookCalls.Load(), "resources are released when the listener cannot start")
}
