package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates invalid listener settings (for
	// example, a malformed address or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTracingConfigs indicates an unknown exporter, a missing
	// collector endpoint, or a sampling rate outside [0, 1].
	ErrInvalidTracingConfigs = errors.New("invalid tracing configuration")
	// ErrInvalidMetricsConfigs indicates an invalid metrics path.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
	// ErrInvalidAppConfigs indicates missing application settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
