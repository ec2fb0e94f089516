package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/teneburu/observer/telemetry"
)

type memoryExporter struct {
	mu      sync.Mutex
	records []sdklog.Record
}

func (e *memoryExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *memoryExporter) Shutdown(context.Context) error   { return nil }
func (e *memoryExporter) ForceFlush(context.Context) error { return nil }

func restoreStandardLogger(t *testing.T) {
	t.Helper()
	std := logrus.StandardLogger()
	level, formatter, out := std.GetLevel(), std.Formatter, std.Out
	t.Cleanup(func() {
		logrus.SetLevel(level)
		logrus.SetFormatter(formatter)
		logrus.SetOutput(out)
	})
}

func TestSetupJSON(t *testing.T) {
	restoreStandardLogger(t)
	var buf bytes.Buffer

	logger := Setup(Options{Level: "warn", Format: "JSON", Output: &buf})
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	logger.Info("dropped")
	logger.WithField("component", "config").Warn("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "config", line["component"])
}

func TestSetupFallsBack(t *testing.T) {
	restoreStandardLogger(t)
	var buf bytes.Buffer

	logger := Setup(Options{Level: "loud", Format: "xml", Output: &buf})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	assert.Contains(t, buf.String(), "Invalid log level 'loud'")
	assert.Contains(t, buf.String(), "Invalid log format 'xml'")
}

func TestForEnvironment(t *testing.T) {
	assert.Equal(t, Options{Level: "info", Format: FormatJSON}, ForEnvironment("Production"))
	assert.Equal(t, Options{Level: "debug", Format: FormatText}, ForEnvironment("development"))
	assert.Equal(t, Options{Level: "info", Format: FormatText}, ForEnvironment("staging"))
}

func TestContextLogger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	ctx := NewContext(context.Background(), logger.WithField("request", "r-1"))

	FromContext(ctx).Info("hello")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "r-1", entry.Data["request"])
	assert.Equal(t, ctx, entry.Context)

	assert.Same(t, logrus.StandardLogger(), FromContext(context.Background()).Logger)
	assert.Equal(t, ctx, NewContext(ctx, nil))
}

func TestNewOtelHookRequiresProvider(t *testing.T) {
	_, err := NewOtelHook(nil)
	assert.ErrorIs(t, err, telemetry.ErrNilProvider)
}

func TestOtelHookForwardsEntries(t *testing.T) {
	exporter := &memoryExporter{}
	lp := sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)))
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() {
		_ = lp.Shutdown(context.Background())
		_ = tp.Shutdown(context.Background())
	})

	hook, err := NewOtelHook(lp, logrus.ErrorLevel)
	require.NoError(t, err)
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	logger, _ := logtest.NewNullLogger()
	logger.AddHook(hook)

	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	logger.WithContext(ctx).WithField("attempt", 2).Error("send failed")
	logger.WithContext(ctx).Info("not forwarded")
	span.End()

	exporter.mu.Lock()
	defer exporter.mu.Unlock()
	require.Len(t, exporter.records, 1)
	r := exporter.records[0]
	assert.Equal(t, "send failed", r.Body().AsString())
	assert.Equal(t, log.SeverityError, r.Severity())

	attrs := map[string]log.Value{}
	r.WalkAttributes(func(kv log.KeyValue) bool {
		attrs[kv.Key] = kv.Value
		return true
	})
	assert.Equal(t, int64(2), attrs["attempt"].AsInt64())
	assert.Equal(t, span.SpanContext().TraceID().String(), attrs["trace_id"].AsString())
	assert.Equal(t, span.SpanContext().SpanID().String(), attrs["span_id"].AsString())
}

func TestMapLogLevel(t *testing.T) {
	tests := []struct {
		level logrus.Level
		want  log.Severity
	}{
		{logrus.TraceLevel, log.SeverityTrace},
		{logrus.DebugLevel, log.SeverityDebug},
		{logrus.InfoLevel, log.SeverityInfo},
		{logrus.WarnLevel, log.SeverityWarn},
		{logrus.ErrorLevel, log.SeverityError},
		{logrus.FatalLevel, log.SeverityFatal},
		{logrus.PanicLevel, log.SeverityFatal4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapLogLevel(tt.level), tt.level.String())
	}
}
