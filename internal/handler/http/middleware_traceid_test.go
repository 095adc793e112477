package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func serveTraceID(t *testing.T, ctx context.Context, header string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/shelves", nil).WithContext(ctx)
	if header != "" {
		req.Header.Set(traceIDHeader, header)
	}

	rr := httptest.NewRecorder()
	h := &Handler{logger: logger.Nop()}
	h.withTraceID(next).ServeHTTP(rr, req)

	require.NotNil(t, captured, "next handler must be called")
	return rr, captured
}

func TestWithTraceID_Sources(t *testing.T) {
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36},
		SpanID:     trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7},
		TraceFlags: trace.FlagsSampled,
	})

	tests := []struct {
		name   string
		ctx    context.Context
		header string
		want   string
	}{
		{
			name:   "header wins",
			ctx:    trace.ContextWithSpanContext(context.Background(), spanCtx),
			header: "client-trace",
			want:   "client-trace",
		},
		{
			name: "active span",
			ctx:  trace.ContextWithSpanContext(context.Background(), spanCtx),
			want: "4bf92f3577b34da6a3ce929d0e0e4736",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := serveTraceID(t, tt.ctx, tt.header)
			assert.Equal(t, tt.want, rr.Header().Get(traceIDHeader))
		})
	}
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	first, _ := serveTraceID(t, context.Background(), "")
	second, _ := serveTraceID(t, context.Background(), "")

	id := first.Header().Get(traceIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, second.Header().Get(traceIDHeader))
}

func TestWithTraceID_AttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.NewLoggerWithWriter("test", &buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/shelves", nil)
	req.Header.Set(traceIDHeader, "abc")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
	assert.Contains(t, buf.String(), `"message":"inside"`)
	assert.False(t, logger.HasContextLogger(req.Context()), "original request must not be mutated")
}
