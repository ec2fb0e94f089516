package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/teneburu/observer/utils"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Options struct {
	Level  string
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// ForEnvironment returns the logging defaults for a deployment environment:
// JSON at info level in production, text at debug level in development and
// text at info level anywhere else.
func ForEnvironment(environment string) Options {
	switch {
	case utils.IsProduction(environment):
		return Options{Level: "info", Format: FormatJSON}
	case utils.IsDevelopment(environment):
		return Options{Level: "debug", Format: FormatText}
	default:
		return Options{Level: "info", Format: FormatText}
	}
}

// Setup builds a logger from opts and installs the same settings on the
// logrus standard logger. Invalid levels and formats fall back to info and
// text with a warning.
func Setup(opts Options) *logrus.Logger {
	logger := logrus.New()
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to 'info': %v", opts.Level, err)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case FormatText:
		logger.SetFormatter(textFormatter())
	default:
		logger.Warnf("Invalid log format '%s', defaulting to 'text'", opts.Format)
		logger.SetFormatter(textFormatter())
	}

	logrus.SetLevel(logger.GetLevel())
	logrus.SetFormatter(logger.Formatter)
	logrus.SetOutput(logger.Out)

	logger.Debugf("Logrus initialized with level '%s' and format '%s'.", logger.GetLevel(), opts.Format)
	return logger
}

func textFormatter() *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	}
}
