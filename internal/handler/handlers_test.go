package handler

import (
	"testing"

	"github.com/MKhiriev/book-library/internal/config"
	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/MKhiriev/book-library/internal/webapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(address string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App:     config.App{Name: "book-library"},
		Server:  config.Server{HTTPAddress: address},
		Metrics: config.Metrics{Path: "/metrics"},
	}
}

// TestNewHandlers_HTTP verifies that an HTTP address produces an HTTP handler.
func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(webapi.NewConfiguration(nil), newTestConfig(":8080"), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// TestNewHandlers_NoAddress verifies that a missing address is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(webapi.NewConfiguration(nil), newTestConfig(""), logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

// TestNewHandlers_NoConfiguration verifies that a nil web API configuration
// is rejected.
func TestNewHandlers_NoConfiguration(t *testing.T) {
	h, err := NewHandlers(nil, newTestConfig(":8080"), logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
