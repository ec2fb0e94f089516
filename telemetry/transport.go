package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/teneburu/observer/config"
	"github.com/teneburu/observer/event"
)

// ScopeName is the instrumentation scope used for logs, spans and metrics.
const ScopeName = "github.com/teneburu/observer/telemetry"

var (
	ErrNilProvider    = errors.New("telemetry: nil logger provider")
	ErrConfigMismatch = errors.New("telemetry: payload config does not match resolved configuration")
)

// Transport delivers a payload of events. Implementations decide how and
// where; callers only rely on Send returning once the payload is handed off.
type Transport interface {
	Send(ctx context.Context, cfg *config.Config, payload event.Payload) error
}

// LogTransport hands every event of a payload to an OpenTelemetry logger, in
// order. Batching and export are left to the processors configured on the
// provider.
type LogTransport struct {
	logger log.Logger
	tracer trace.Tracer
	inst   *instruments
}

var _ Transport = (*LogTransport)(nil)

type TransportOption func(*transportOptions)

type transportOptions struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
}

// WithTracerProvider wraps each Send in a span from tp.
func WithTracerProvider(tp trace.TracerProvider) TransportOption {
	return func(o *transportOptions) {
		o.tracerProvider = tp
	}
}

// WithMeterProvider records emitted event counts on mp.
func WithMeterProvider(mp metric.MeterProvider) TransportOption {
	return func(o *transportOptions) {
		o.meterProvider = mp
	}
}

func NewLogTransport(provider log.LoggerProvider, opts ...TransportOption) (*LogTransport, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	o := transportOptions{
		tracerProvider: tracenoop.NewTracerProvider(),
		meterProvider:  metricnoop.NewMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	inst, err := newInstruments(o.meterProvider.Meter(ScopeName))
	if err != nil {
		return nil, err
	}

	return &LogTransport{
		logger: provider.Logger(ScopeName),
		tracer: o.tracerProvider.Tracer(ScopeName),
		inst:   inst,
	}, nil
}

// Send emits one log record per event. A payload without config takes it from
// cfg; a payload whose config disagrees with cfg is rejected. Nothing is
// emitted unless every event converts.
func (t *LogTransport) Send(ctx context.Context, cfg *config.Config, payload event.Payload) (err error) {
	ctx, span := StartSpan(ctx, t.tracer, "observer.Send", AttrPayloadEventsKey.Int(payload.Len()))
	defer EndSpan(span, &err, nil)

	if cfg != nil {
		want := cfg.PayloadConfig()
		switch payload.Config {
		case event.PayloadConfig{}:
			payload.Config = want
		case want:
		default:
			return fmt.Errorf("%w: got %s/%s, want %s/%s", ErrConfigMismatch,
				payload.Config.ServiceName, payload.Config.Environment,
				want.ServiceName, want.Environment)
		}
	}

	records := make([]log.Record, 0, payload.Len())
	for i, e := range payload.Events {
		r, convErr := Record(e)
		if convErr != nil {
			return fmt.Errorf("convert event %d: %w", i, convErr)
		}
		addString(&r, ServiceNameKey, payload.Config.ServiceName)
		addString(&r, DeploymentEnvironmentKey, payload.Config.Environment)
		records = append(records, r)
	}

	for i, r := range records {
		t.logger.Emit(ctx, r)
		span.AddEvent("observer.event", trace.WithAttributes(Attributes(payload.Events[i])...))
		t.inst.eventsEmitted.Add(ctx, 1,
			metric.WithAttributes(AttrEventTypeKey.String(string(payload.Events[i].Type()))))
	}
	t.inst.payloadSize.Record(ctx, int64(len(records)))

	return nil
}
