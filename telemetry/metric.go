package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

const (
	MetricEventsEmitted = "observer.events.emitted"
	MetricPayloadSize   = "observer.payload.size"
)

type instruments struct {
	eventsEmitted metric.Int64Counter
	payloadSize   metric.Int64Histogram
}

func newInstruments(meter metric.Meter) (*instruments, error) {
	eventsEmitted, err := meter.Int64Counter(
		MetricEventsEmitted,
		metric.WithDescription("Events handed to the log pipeline"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s counter: %w", MetricEventsEmitted, err)
	}

	payloadSize, err := meter.Int64Histogram(
		MetricPayloadSize,
		metric.WithDescription("Number of events per payload"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s histogram: %w", MetricPayloadSize, err)
	}

	return &instruments{
		eventsEmitted: eventsEmitted,
		payloadSize:   payloadSize,
	}, nil
}
