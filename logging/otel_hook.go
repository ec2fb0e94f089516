package logging

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/teneburu/observer/telemetry"
)

const hookScopeName = "github.com/teneburu/observer/logging"

// OtelHook implements logrus.Hook. It adds trace context to entries and
// forwards them as OpenTelemetry log records.
type OtelHook struct {
	logger log.Logger
	levels []logrus.Level
}

// NewOtelHook forwards entries at levels (all levels when empty) to a logger
// obtained from provider.
func NewOtelHook(provider log.LoggerProvider, levels ...logrus.Level) (*OtelHook, error) {
	if provider == nil {
		return nil, telemetry.ErrNilProvider
	}
	if len(levels) == 0 {
		levels = logrus.AllLevels
	}
	return &OtelHook{
		logger: provider.Logger(hookScopeName),
		levels: levels,
	}, nil
}

func (h *OtelHook) Levels() []logrus.Level {
	return h.levels
}

func (h *OtelHook) Fire(entry *logrus.Entry) error {
	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}

	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.IsValid() {
		entry.Data["trace_id"] = spanCtx.TraceID().String()
		entry.Data["span_id"] = spanCtx.SpanID().String()
	}

	var record log.Record
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(mapLogLevel(entry.Level))
	record.SetSeverityText(entry.Level.String())
	record.SetBody(log.StringValue(entry.Message))
	record.AddAttributes(telemetry.KeyValues(entry.Data)...)

	h.logger.Emit(ctx, record)
	return nil
}

// mapLogLevel converts a logrus level to an OTel severity.
func mapLogLevel(level logrus.Level) log.Severity {
	switch level {
	case logrus.TraceLevel:
		return log.SeverityTrace
	case logrus.DebugLevel:
		return log.SeverityDebug
	case logrus.InfoLevel:
		return log.SeverityInfo
	case logrus.WarnLevel:
		return log.SeverityWarn
	case logrus.ErrorLevel:
		return log.SeverityError
	case logrus.FatalLevel:
		return log.SeverityFatal
	case logrus.PanicLevel:
		// no panic severity in OTel
		return log.SeverityFatal4
	default:
		return log.SeverityInfo
	}
}
