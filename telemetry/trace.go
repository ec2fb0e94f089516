package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func DefaultStatusMapper(err error) codes.Code {
	if err == nil {
		return codes.Ok
	}

	return codes.Error
}

type StatusMapperFunc func(error) codes.Code

// StartSpan begins an internal span named name on tracer.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, initialAttrs ...attribute.KeyValue) (context.Context, trace.Span) {
	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
	}
	if len(initialAttrs) > 0 {
		opts = append(opts, trace.WithAttributes(initialAttrs...))
	}

	return tracer.Start(ctx, name, opts...)
}

// EndSpan concludes the given span, automatically recording errors and setting status.
// It expects a pointer to an error variable to check for failures.
func EndSpan(span trace.Span, errPtr *error, statusMapper StatusMapperFunc, options ...trace.SpanEndOption) {
	defer span.End(options...)

	if errPtr == nil || *errPtr == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	err := *errPtr
	span.RecordError(err)

	mapper := statusMapper
	if mapper == nil {
		mapper = DefaultStatusMapper
	}
	statusCode := mapper(err)

	statusMsg := ""
	if statusCode == codes.Error {
		statusMsg = err.Error()
	}

	span.SetStatus(statusCode, statusMsg)
}
