// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the book-library host.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application name and version reported by the host.
	App App `envPrefix:"APP_"`

	// Server holds listener address and timeout settings.
	Server Server `envPrefix:"SERVER_"`

	// Tracing holds OpenTelemetry exporter settings.
	Tracing Tracing `envPrefix:"TRACING_"`

	// Metrics holds Prometheus endpoint settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Name is the service name used in logs and traces.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string exposed by GET api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Tracing holds OpenTelemetry settings.
type Tracing struct {
	// Exporter is one of "none", "stdout", "http" or "grpc".
	// Env: TRACING_EXPORTER
	Exporter string `env:"EXPORTER"`

	// Endpoint is the OTLP collector endpoint, required for "http" and
	// "grpc".
	// Env: TRACING_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Insecure disables TLS towards the collector.
	// Env: TRACING_INSECURE
	Insecure bool `env:"INSECURE"`

	// SamplingRate is the fraction of traces sampled, 0.0 to 1.0. A zero
	// value in a later source does not override an earlier one.
	// Env: TRACING_SAMPLING_RATE
	SamplingRate float64 `env:"SAMPLING_RATE"`
}

// Metrics holds Prometheus settings.
type Metrics struct {
	// Disabled turns off request metrics and the scrape endpoint.
	// Env: METRICS_DISABLED
	Disabled bool `env:"DISABLED"`

	// Path is the scrape endpoint path.
	// Env: METRICS_PATH
	Path string `env:"PATH"`
}

// Default values applied before any other source.
const (
	DefaultAppName         = "book-library"
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultTraceExporter   = "none"
	DefaultSamplingRate    = 1.0
	DefaultMetricsPath     = "/metrics"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name: DefaultAppName,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Tracing: Tracing{
			Exporter:     DefaultTraceExporter,
			SamplingRate: DefaultSamplingRate,
		},
		Metrics: Metrics{
			Path: DefaultMetricsPath,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources, in increasing priority:
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (os.Args)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Later sources override earlier ones for non-zero fields.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadConfig(os.Args[1:])
}

func loadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
