// Package server runs the book-library HTTP listener.
//
// It owns the listener lifecycle: startup, signal handling, graceful
// shutdown bounded by the configured timeout, and the shutdown hooks that
// flush telemetry and dispose the dependency container once the listener
// has stopped.
package server
