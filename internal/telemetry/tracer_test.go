// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestNewProvider_None(t *testing.T) {
	for _, exporter := range []string{"", ExporterNone} {
		provider, err := NewProvider(context.Background(), Config{Exporter: exporter})
		require.NoError(t, err)
		assert.False(t, provider.Enabled())

		_, span := otel.Tracer("test").Start(context.Background(), "noop-check")
		assert.False(t, span.IsRecording(), "expected noop span for exporter %q", exporter)
		span.End()

		assert.NoError(t, provider.Shutdown(context.Background()))
	}
}

func TestNewProvider_InstallsTraceContextPropagator(t *testing.T) {
	const traceparent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

	tests := []struct {
		name     string
		exporter string
	}{
		{name: "empty", exporter: ""},
		{name: "none", exporter: ExporterNone},
		{name: "stdout", exporter: ExporterStdout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())

			provider, err := NewProvider(context.Background(), Config{Exporter: tt.exporter, Writer: &bytes.Buffer{}})
			require.NoError(t, err)
			t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

			carrier := propagation.MapCarrier{"traceparent": traceparent}
			ctx := otel.GetTextMapPropagator().Extract(context.Background(), carrier)

			sc := trace.SpanContextFromContext(ctx)
			require.True(t, sc.IsValid())
			assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", sc.TraceID().String())
		})
	}
}

func TestNewProvider_InvalidExporter(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Exporter: "invalid"})
	require.Error(t, err)
	assert.Equal(t, "unsupported exporter type: invalid (supported: none, stdout, http, grpc)", err.Error())
}

func TestNewProvider_StdoutExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	provider, err := NewProvider(context.Background(), Config{
		ServiceName:  "book-library-test",
		Exporter:     ExporterStdout,
		SamplingRate: 1.0,
		Writer:       &buf,
	})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	_, span := otel.Tracer("test").Start(context.Background(), "exported-span")
	assert.True(t, span.IsRecording())
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "exported-span")
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{name: "always", rate: 1.0, want: "AlwaysOnSampler"},
		{name: "above one", rate: 2.0, want: "AlwaysOnSampler"},
		{name: "never", rate: 0.0, want: "AlwaysOffSampler"},
		{name: "ratio", rate: 0.5, want: "TraceIDRatioBased"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, newSampler(tt.rate).Description(), tt.want)
		})
	}
}
