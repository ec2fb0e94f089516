package config

import "github.com/samber/lo"

// Partial is a single configuration layer. A nil field is "not provided" and
// never overrides a lower layer; a non-nil field replaces it entirely, even
// when it points at an empty string.
type Partial struct {
	ServiceName         *string `env:"OBSERVER_SERVICE_NAME" mapstructure:"serviceName"`
	Environment         *string `env:"OBSERVER_ENVIRONMENT" mapstructure:"environment"`
	LokiURL             *string `env:"OBSERVER_LOKI_URL" mapstructure:"lokiUrl"`
	ObserverAPIEndpoint *string `env:"OBSERVER_API_ENDPOINT" mapstructure:"observerApiEndpoint"`
	MinioEndpoint       *string `env:"OBSERVER_MINIO_ENDPOINT" mapstructure:"minioEndpoint"`
	MinioBucket         *string `env:"OBSERVER_MINIO_BUCKET" mapstructure:"minioBucket"`
	MinioAccessKey      *string `env:"OBSERVER_MINIO_ACCESS_KEY" mapstructure:"minioAccessKey"`
	MinioSecretKey      *string `env:"OBSERVER_MINIO_SECRET_KEY" mapstructure:"minioSecretKey"`
}

// Option sets fields of the programmatic layer.
type Option func(*Partial)

// NewPartial builds a layer from opts, applied in order.
func NewPartial(opts ...Option) Partial {
	var p Partial
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Merge returns p overridden by every field provided in other.
func (p Partial) Merge(other Partial) Partial {
	p.ServiceName, _ = lo.Coalesce(other.ServiceName, p.ServiceName)
	p.Environment, _ = lo.Coalesce(other.Environment, p.Environment)
	p.LokiURL, _ = lo.Coalesce(other.LokiURL, p.LokiURL)
	p.ObserverAPIEndpoint, _ = lo.Coalesce(other.ObserverAPIEndpoint, p.ObserverAPIEndpoint)
	p.MinioEndpoint, _ = lo.Coalesce(other.MinioEndpoint, p.MinioEndpoint)
	p.MinioBucket, _ = lo.Coalesce(other.MinioBucket, p.MinioBucket)
	p.MinioAccessKey, _ = lo.Coalesce(other.MinioAccessKey, p.MinioAccessKey)
	p.MinioSecretKey, _ = lo.Coalesce(other.MinioSecretKey, p.MinioSecretKey)
	return p
}

func (p Partial) config() *Config {
	return &Config{
		ServiceName:         lo.FromPtr(p.ServiceName),
		Environment:         lo.FromPtr(p.Environment),
		LokiURL:             lo.FromPtr(p.LokiURL),
		ObserverAPIEndpoint: lo.FromPtr(p.ObserverAPIEndpoint),
		MinioEndpoint:       lo.FromPtr(p.MinioEndpoint),
		MinioBucket:         lo.FromPtr(p.MinioBucket),
		MinioAccessKey:      lo.FromPtr(p.MinioAccessKey),
		MinioSecretKey:      lo.FromPtr(p.MinioSecretKey),
	}
}

// WithServiceName sets the service name
func WithServiceName(name string) Option {
	return func(p *Partial) {
		p.ServiceName = &name
	}
}

// WithEnvironment sets the deployment environment label
func WithEnvironment(environment string) Option {
	return func(p *Partial) {
		p.Environment = &environment
	}
}

// WithLokiURL sets the Loki base URL
func WithLokiURL(url string) Option {
	return func(p *Partial) {
		p.LokiURL = &url
	}
}

// WithObserverAPIEndpoint sets the event ingestion endpoint
func WithObserverAPIEndpoint(endpoint string) Option {
	return func(p *Partial) {
		p.ObserverAPIEndpoint = &endpoint
	}
}

// WithMinioEndpoint sets the object storage endpoint
func WithMinioEndpoint(endpoint string) Option {
	return func(p *Partial) {
		p.MinioEndpoint = &endpoint
	}
}

// WithMinioBucket sets the object storage bucket
func WithMinioBucket(bucket string) Option {
	return func(p *Partial) {
		p.MinioBucket = &bucket
	}
}

// WithMinioCredentials sets the object storage access and secret keys
func WithMinioCredentials(accessKey, secretKey string) Option {
	return func(p *Partial) {
		p.MinioAccessKey = &accessKey
		p.MinioSecretKey = &secretKey
	}
}

// WithPartial merges every field provided in other, e.g. a layer read with
// ReadFile.
func WithPartial(other Partial) Option {
	return func(p *Partial) {
		*p = p.Merge(other)
	}
}
