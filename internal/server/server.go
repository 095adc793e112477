// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/handler"
	"github.com/MKhiriev/book-library/internal/logger"
)

type server struct {
	httpServer      *httpServer
	hooks           []ShutdownHook
	shutdownTimeout time.Duration

	stopOnce sync.Once
	stopErr  error

	logger *logger.Logger
}

// NewServer initializes the HTTP handler and prepares the listener. hooks
// run in order after the listener stops.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, hooks ...ShutdownHook) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	router, err := handlers.HTTP.Init()
	if err != nil {
		return nil, fmt.Errorf("error initializing http handler: %w", err)
	}

	return &server{
		httpServer:      newHTTPServer(router, cfg, logger),
		hooks:           hooks,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Shutdown() error {
	s.stopOnce.Do(func() {
		ctx := context.Background()
		if s.shutdownTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
			defer cancel()
		}

		errs := []error{s.httpServer.shutdown(ctx)}
		for _, hook := range s.hooks {
			errs = append(errs, hook(ctx))
		}
		s.stopErr = errors.Join(errs...)
	})
	return s.stopErr
}

func (s *server) run(ctx context.Context) error {
	l, err := s.httpServer.listen()
	if err != nil {
		return errors.Join(err, s.Shutdown())
	}
	return s.serve(ctx, l)
}

// serve runs the HTTP server on l until ctx is done or serving fails.
func (s *server) serve(ctx context.Context, l net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(l)
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		err = s.Shutdown()
		err = errors.Join(err, <-serveErr)
	case err = <-serveErr:
		err = errors.Join(err, s.Shutdown())
	}

	if err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
