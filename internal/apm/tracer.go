// Package apm provides OpenTelemetry tracing for the scanner.
package apm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer starts spans and recovers them from contexts.
type Tracer interface {
	StartSpanFromContext(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, Span)
	SpanFromContext(ctx context.Context) Span
}

type openTracer struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer bound to the named instrumentation scope.
func NewTracer(name string) Tracer {
	return &openTracer{
		otel.Tracer(name),
	}
}

func (t *openTracer) StartSpanFromContext(
	ctx context.Context, name string, opts ...trace.SpanStartOption,
) (context.Context, Span) {
	ctx, span := t.tracer.Start(ctx, name, opts...)
	return ctx, Span{span}
}

func (t *openTracer) SpanFromContext(ctx context.Context) Span {
	return Span{trace.SpanFromContext(ctx)}
}

// Span wraps an OTel span with the handful of operations the app uses.
type Span struct {
	span trace.Span
}

// SetAttributes sets attributes on the span.
func (s Span) SetAttributes(values ...attribute.KeyValue) {
	s.span.SetAttributes(values...)
}

// AddEvent records an event on the span.
func (s Span) AddEvent(name string, options ...trace.EventOption) {
	s.span.AddEvent(name, options...)
}

// NoticeError records err and marks the span as failed.
func (s Span) NoticeError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// End finishes the span.
func (s Span) End(options ...trace.SpanEndOption) {
	s.span.End(options...)
}

// TraceID returns the span's trace id, or "" when not recording.
func (s Span) TraceID() string {
	sc := s.span.SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

// TraceIDFromContext extracts the active trace id for log correlation.
func TraceIDFromContext(ctx context.Context) string {
	return Span{trace.SpanFromContext(ctx)}.TraceID()
}
