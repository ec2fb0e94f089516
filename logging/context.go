package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// NewContext returns a copy of ctx carrying logger. A nil logger leaves ctx
// unchanged.
func NewContext(ctx context.Context, logger logrus.FieldLogger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or the logrus standard logger.
// The returned entry carries ctx so hooks can read the active span.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	switch l := ctx.Value(loggerKey).(type) {
	case *logrus.Logger:
		return l.WithContext(ctx)
	case *logrus.Entry:
		return l.WithContext(ctx)
	case logrus.FieldLogger:
		return l.WithFields(nil).WithContext(ctx)
	default:
		return logrus.StandardLogger().WithContext(ctx)
	}
}
