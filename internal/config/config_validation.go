// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"
)

// validate checks that the merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAppConfigs)
	}

	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: address %q: %w", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	switch cfg.Tracing.Exporter {
	case "none", "stdout":
	case "http", "grpc":
		if cfg.Tracing.Endpoint == "" {
			return fmt.Errorf("%w: exporter %q needs an endpoint", ErrInvalidTracingConfigs, cfg.Tracing.Exporter)
		}
	default:
		return fmt.Errorf("%w: unknown exporter %q", ErrInvalidTracingConfigs, cfg.Tracing.Exporter)
	}
	if cfg.Tracing.SamplingRate < 0 || cfg.Tracing.SamplingRate > 1 {
		return fmt.Errorf("%w: sampling rate %v", ErrInvalidTracingConfigs, cfg.Tracing.SamplingRate)
	}

	if !cfg.Metrics.Disabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("%w: path %q must start with '/'", ErrInvalidMetricsConfigs, cfg.Metrics.Path)
	}

	return nil
}
