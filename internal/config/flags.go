// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags into a partial config.
//
// Flags:
//
//	-a                   server address in format [host]:[port]
//	-c / -config         json file path with configs
//	-request-timeout     request timeout (e.g. "30s", "1m")
//	-shutdown-timeout    graceful shutdown timeout
//	-trace-exporter      none | stdout | http | grpc
//	-trace-endpoint      OTLP collector endpoint
//	-trace-insecure      disable TLS towards the collector
//	-trace-sampling-rate fraction of sampled traces
//	-metrics-path        Prometheus scrape path
//	-metrics-disabled    disable request metrics
//	-app-version         version reported by the host
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("book-library", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, shutdownTimeout time.Duration
	var traceExporter, traceEndpoint string
	var traceInsecure bool
	var samplingRate float64
	var metricsPath string
	var metricsDisabled bool
	var appVersion string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&traceExporter, "trace-exporter", "", "Trace exporter: none, stdout, http, grpc")
	fs.StringVar(&traceEndpoint, "trace-endpoint", "", "OTLP collector endpoint")
	fs.BoolVar(&traceInsecure, "trace-insecure", false, "Disable TLS towards the collector")
	fs.Float64Var(&samplingRate, "trace-sampling-rate", 0, "Trace sampling rate (0.0-1.0)")
	fs.StringVar(&metricsPath, "metrics-path", "", "Prometheus scrape path")
	fs.BoolVar(&metricsDisabled, "metrics-disabled", false, "Disable request metrics")
	fs.StringVar(&appVersion, "app-version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Tracing: Tracing{
			Exporter:     traceExporter,
			Endpoint:     traceEndpoint,
			Insecure:     traceInsecure,
			SamplingRate: samplingRate,
		},
		Metrics: Metrics{
			Disabled: metricsDisabled,
			Path:     metricsPath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, found := strings.Cut(s, ":")
	if !found || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
