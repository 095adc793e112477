// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"net/http"
	"time"

	"github.com/MKhiriev/book-library/internal/logger"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TraceLevel orders trace records by severity.
type TraceLevel int

// Trace levels. TraceLevelOff disables a writer entirely.
const (
	TraceLevelOff TraceLevel = iota
	TraceLevelDebug
	TraceLevelInfo
	TraceLevelWarn
	TraceLevelError
	TraceLevelFatal
)

func (l TraceLevel) String() string {
	switch l {
	case TraceLevelOff:
		return "off"
	case TraceLevelDebug:
		return "debug"
	case TraceLevelInfo:
		return "info"
	case TraceLevelWarn:
		return "warn"
	case TraceLevelError:
		return "error"
	case TraceLevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

func (l TraceLevel) zerologLevel() zerolog.Level {
	switch l {
	case TraceLevelDebug:
		return zerolog.DebugLevel
	case TraceLevelInfo:
		return zerolog.InfoLevel
	case TraceLevelWarn:
		return zerolog.WarnLevel
	case TraceLevelError:
		return zerolog.ErrorLevel
	case TraceLevelFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}

// Trace categories emitted by the pipeline.
const (
	CategoryRouting     = "webapi.Routing"
	CategoryControllers = "webapi.Controllers"
	CategoryActions     = "webapi.Actions"
	CategoryFormatting  = "webapi.Formatting"
)

// TraceKind marks where a record sits relative to the traced operation.
type TraceKind int

// Trace kinds.
const (
	TraceKindTrace TraceKind = iota
	TraceKindBegin
	TraceKindEnd
)

func (k TraceKind) String() string {
	switch k {
	case TraceKindBegin:
		return "begin"
	case TraceKindEnd:
		return "end"
	default:
		return "trace"
	}
}

// TraceRecord is one diagnostics entry.
type TraceRecord struct {
	Category  string
	Level     TraceLevel
	Kind      TraceKind
	Operator  string
	Operation string
	Message   string
	Status    int
	Elapsed   time.Duration
	Err       error
}

// TraceWriter receives diagnostics from the pipeline. Implementations must
// call fill only when they intend to keep the record.
type TraceWriter interface {
	Trace(r *http.Request, category string, level TraceLevel, fill func(*TraceRecord))
}

// DiagnosticsTraceWriter writes records at or above MinimumLevel to the
// request logger and as events on the request's active span.
type DiagnosticsTraceWriter struct {
	// MinimumLevel is the lowest level written. Set it before the
	// configuration is initialized.
	MinimumLevel TraceLevel

	logger *logger.Logger
}

// NewDiagnosticsTraceWriter returns a writer with MinimumLevel Info.
func NewDiagnosticsTraceWriter(l *logger.Logger) *DiagnosticsTraceWriter {
	return &DiagnosticsTraceWriter{
		MinimumLevel: TraceLevelInfo,
		logger:       l,
	}
}

// Enabled reports whether records at level are kept.
func (w *DiagnosticsTraceWriter) Enabled(level TraceLevel) bool {
	return w.MinimumLevel != TraceLevelOff && level != TraceLevelOff && level >= w.MinimumLevel
}

// Trace implements [TraceWriter].
func (w *DiagnosticsTraceWriter) Trace(r *http.Request, category string, level TraceLevel, fill func(*TraceRecord)) {
	if !w.Enabled(level) {
		return
	}

	rec := &TraceRecord{Category: category, Level: level}
	if fill != nil {
		fill(rec)
	}

	w.writeLog(r, rec)
	w.writeSpanEvent(r, rec)
}

func (w *DiagnosticsTraceWriter) writeLog(r *http.Request, rec *TraceRecord) {
	log := w.logger
	if r != nil && logger.HasContextLogger(r.Context()) {
		log = logger.FromRequest(r)
	}
	if log == nil {
		return
	}

	event := log.WithLevel(rec.Level.zerologLevel()).
		Str("category", rec.Category).
		Str("kind", rec.Kind.String())
	if r != nil {
		event = event.Str("method", r.Method).Str("uri", r.URL.RequestURI())
	}
	if rec.Operator != "" {
		event = event.Str("operator", rec.Operator)
	}
	if rec.Operation != "" {
		event = event.Str("operation", rec.Operation)
	}
	if rec.Status != 0 {
		event = event.Int("status", rec.Status)
	}
	if rec.Elapsed != 0 {
		event = event.Dur("elapsed", rec.Elapsed)
	}
	if rec.Err != nil {
		event = event.Err(rec.Err)
	}
	event.Msg(rec.Message)
}

func (w *DiagnosticsTraceWriter) writeSpanEvent(r *http.Request, rec *TraceRecord) {
	if r == nil {
		return
	}
	span := trace.SpanFromContext(r.Context())
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("webapi.level", rec.Level.String()),
		attribute.String("webapi.kind", rec.Kind.String()),
	}
	if rec.Operator != "" {
		attrs = append(attrs, attribute.String("webapi.operator", rec.Operator))
	}
	if rec.Operation != "" {
		attrs = append(attrs, attribute.String("webapi.operation", rec.Operation))
	}
	if rec.Message != "" {
		attrs = append(attrs, attribute.String("webapi.message", rec.Message))
	}
	if rec.Status != 0 {
		attrs = append(attrs, attribute.Int("http.response.status_code", rec.Status))
	}
	span.AddEvent(rec.Category, trace.WithAttributes(attrs...))
	if rec.Err != nil {
		span.RecordError(rec.Err)
	}
}

// nopTraceWriter is used while tracing is not enabled.
type nopTraceWriter struct{}

func (nopTraceWriter) Trace(*http.Request, string, TraceLevel, func(*TraceRecord)) {}

// traceBeginEnd brackets op with begin/end records in category.
func traceBeginEnd(tw TraceWriter, r *http.Request, category, operator, operation string, op func() (int, error)) (int, error) {
	tw.Trace(r, category, TraceLevelInfo, func(rec *TraceRecord) {
		rec.Kind = TraceKindBegin
		rec.Operator = operator
		rec.Operation = operation
	})

	start := time.Now()
	status, err := op()
	elapsed := time.Since(start)

	level := TraceLevelInfo
	if err != nil {
		level = TraceLevelError
		if status > 0 && status < http.StatusInternalServerError {
			level = TraceLevelWarn
		}
	}
	tw.Trace(r, category, level, func(rec *TraceRecord) {
		rec.Kind = TraceKindEnd
		rec.Operator = operator
		rec.Operation = operation
		rec.Status = status
		rec.Elapsed = elapsed
		rec.Err = err
	})

	return status, err
}
