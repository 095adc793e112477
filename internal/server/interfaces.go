package server

import "context"

// Server defines the lifecycle contract of the host.
//
// RunServer blocks until a stop signal arrives or the listener fails, then
// shuts down gracefully. Shutdown stops a running server from elsewhere.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and runs the shutdown hooks.
	Shutdown() error
}

// ShutdownHook releases a resource after the listener has stopped.
type ShutdownHook func(ctx context.Context) error
