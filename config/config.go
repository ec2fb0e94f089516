// Package config resolves the observer SDK configuration from three layers:
// schema defaults, the process environment and programmatic options, in
// increasing order of precedence. The merged result is validated as a whole
// and every violation is reported together.
package config

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/teneburu/observer/event"
)

// Minimal logger for the resolution phase, before the embedding application
// has configured its own logging.
var configLogger = logrus.New()

func init() {
	configLogger.SetOutput(os.Stderr)
	configLogger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	configLogger.SetLevel(logrus.InfoLevel)
}

var (
	diagMu     sync.RWMutex
	diagLogger = configLogger
)

// SetLogger routes resolution diagnostics to l. A nil logger restores the
// default stderr logger.
func SetLogger(l *logrus.Logger) {
	diagMu.Lock()
	defer diagMu.Unlock()
	if l == nil {
		l = configLogger
	}
	diagLogger = l
}

func diagnostics() *logrus.Logger {
	diagMu.RLock()
	defer diagMu.RUnlock()
	return diagLogger
}

// Field paths used in violations and in configuration files.
const (
	FieldServiceName         = "serviceName"
	FieldEnvironment         = "environment"
	FieldLokiURL             = "lokiUrl"
	FieldObserverAPIEndpoint = "observerApiEndpoint"
	FieldMinioEndpoint       = "minioEndpoint"
	FieldMinioBucket         = "minioBucket"
	FieldMinioAccessKey      = "minioAccessKey"
	FieldMinioSecretKey      = "minioSecretKey"
)

const redacted = "[REDACTED]"

// Config is a resolved configuration. Values produced by Resolve and Load
// satisfy every schema constraint; treat them as read-only.
type Config struct {
	// Service information
	ServiceName string `json:"serviceName"`
	Environment string `json:"environment"`

	// Downstream endpoints
	LokiURL             string `json:"lokiUrl"`
	ObserverAPIEndpoint string `json:"observerApiEndpoint"`

	// Object storage, all optional. Empty means not configured.
	MinioEndpoint  string `json:"minioEndpoint,omitempty"`
	MinioBucket    string `json:"minioBucket,omitempty"`
	MinioAccessKey string `json:"minioAccessKey,omitempty"`
	MinioSecretKey string `json:"minioSecretKey,omitempty"`
}

// Load resolves the configuration against a snapshot of the current process
// environment, with opts as the programmatic layer.
func Load(opts ...Option) (*Config, error) {
	return Resolve(Environ(), NewPartial(opts...))
}

// Resolve merges the schema defaults, the environment layer read from environ
// and the programmatic layer p, then validates the result.
//
// A *ValidationError listing every violated field is returned when the merged
// configuration breaks the schema. Any other failure is returned unchanged.
// Resolve keeps no state: equal inputs yield equal configurations.
func Resolve(environ map[string]string, p Partial) (*Config, error) {
	envLayer, err := environmentLayer(environ)
	if err != nil {
		return nil, err
	}

	cfg := Defaults().Merge(envLayer).Merge(p).config()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	v := NewValidator()

	v.RequireNonEmpty(FieldServiceName, c.ServiceName)
	v.RequireNonEmpty(FieldEnvironment, c.Environment)
	v.RequireURL(FieldLokiURL, c.LokiURL)
	v.RequireURLOrPath(FieldObserverAPIEndpoint, c.ObserverAPIEndpoint)

	err := v.Err()
	if verr, ok := AsValidationError(err); ok {
		diagnostics().WithField("violations", verr.Messages()).Error("Configuration validation failed")
	}
	return err
}

// MinioConfigured reports whether an object-storage endpoint and bucket are set.
func (c *Config) MinioConfigured() bool {
	return c.MinioEndpoint != "" && c.MinioBucket != ""
}

// PayloadConfig returns the minimal snapshot sent along with event batches.
func (c *Config) PayloadConfig() event.PayloadConfig {
	return event.PayloadConfig{
		ServiceName: c.ServiceName,
		Environment: c.Environment,
	}
}

// Redacted returns a copy with object-storage credentials masked.
func (c *Config) Redacted() Config {
	out := *c
	out.MinioAccessKey = mask(out.MinioAccessKey)
	out.MinioSecretKey = mask(out.MinioSecretKey)
	return out
}

// Log logs the configuration with credentials masked.
func (c *Config) Log(logger logrus.FieldLogger) {
	r := c.Redacted()
	logger.WithFields(logrus.Fields{
		"service_name":          r.ServiceName,
		"environment":           r.Environment,
		"loki_url":              r.LokiURL,
		"observer_api_endpoint": r.ObserverAPIEndpoint,
		"minio_endpoint":        r.MinioEndpoint,
		"minio_bucket":          r.MinioBucket,
		"minio_access_key":      r.MinioAccessKey,
		"minio_secret_key":      r.MinioSecretKey,
	}).Info("Configuration loaded")
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return redacted
}
