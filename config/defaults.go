package config

const (
	DefaultLokiURL             = "http://localhost:3100"
	DefaultObserverAPIEndpoint = "/api/observer"
)

// Defaults returns the schema default layer. Required fields have no default.
func Defaults() Partial {
	return NewPartial(
		WithLokiURL(DefaultLokiURL),
		WithObserverAPIEndpoint(DefaultObserverAPIEndpoint),
	)
}
