package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEnvironmentLayerMapsEveryVariable(t *testing.T) {
	layer, err := environmentLayer(map[string]string{
		"OBSERVER_SERVICE_NAME":     "svc",
		"OBSERVER_ENVIRONMENT":      "production",
		"OBSERVER_LOKI_URL":         "http://loki:3100",
		"OBSERVER_API_ENDPOINT":     "/ingest",
		"OBSERVER_MINIO_ENDPOINT":   "minio:9000",
		"OBSERVER_MINIO_BUCKET":     "bucket",
		"OBSERVER_MINIO_ACCESS_KEY": "ak",
		"OBSERVER_MINIO_SECRET_KEY": "sk",
	})
	require.NoError(t, err)

	assert.Equal(t, &Config{
		ServiceName:         "svc",
		Environment:         "production",
		LokiURL:             "http://loki:3100",
		ObserverAPIEndpoint: "/ingest",
		MinioEndpoint:       "minio:9000",
		MinioBucket:         "bucket",
		MinioAccessKey:      "ak",
		MinioSecretKey:      "sk",
	}, layer.config())
}

func TestEnvironmentLayerLeavesUnsetFieldsNil(t *testing.T) {
	layer, err := environmentLayer(map[string]string{"OBSERVER_ENVIRONMENT": "production"})
	require.NoError(t, err)

	require.NotNil(t, layer.Environment)
	assert.Nil(t, layer.ServiceName)
	assert.Nil(t, layer.LokiURL)
	assert.Nil(t, layer.MinioSecretKey)
}

func TestEnvironmentLayerNilSnapshotIsEmpty(t *testing.T) {
	t.Setenv("OBSERVER_SERVICE_NAME", "from-process")

	layer, err := environmentLayer(nil)
	require.NoError(t, err)
	assert.Nil(t, layer.ServiceName)
}

func TestEnvironWithDotEnv(t *testing.T) {
	path := writeFile(t, ".env", strings.Join([]string{
		"OBSERVER_SERVICE_NAME=from-dotenv",
		"OBSERVER_ENVIRONMENT=from-dotenv",
	}, "\n"))
	t.Setenv("OBSERVER_ENVIRONMENT", "from-process")

	environ, err := EnvironWithDotEnv(path)
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", environ["OBSERVER_SERVICE_NAME"])
	assert.Equal(t, "from-process", environ["OBSERVER_ENVIRONMENT"])

	t.Setenv("OBSERVER_SERVICE_NAME", "")
	environ, err = EnvironWithDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", environ["OBSERVER_SERVICE_NAME"], "an empty process variable does not mask the file")
}

func TestEnvironWithDotEnvMissingFile(t *testing.T) {
	_, err := EnvironWithDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dotenv files:")
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "observer.yaml", `
serviceName: from-file
lokiUrl: https://loki.example.com
minioBucket: replays
unknownKey: ignored
`)

	p, err := ReadFile(path)
	require.NoError(t, err)
	require.NotNil(t, p.ServiceName)
	assert.Equal(t, "from-file", *p.ServiceName)
	require.NotNil(t, p.LokiURL)
	assert.Equal(t, "https://loki.example.com", *p.LokiURL)
	assert.Nil(t, p.Environment)
	assert.Nil(t, p.ObserverAPIEndpoint)

	cfg, err := Resolve(map[string]string{"OBSERVER_SERVICE_NAME": "from-env"}, NewPartial(
		WithPartial(p),
		WithEnvironment("staging"),
	))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.ServiceName)
	assert.Equal(t, "replays", cfg.MinioBucket)
	assert.Equal(t, DefaultObserverAPIEndpoint, cfg.ObserverAPIEndpoint)
}

func TestReadFileJSON(t *testing.T) {
	path := writeFile(t, "observer.json", `{"environment": "production", "observerApiEndpoint": "https://observer.example.com"}`)

	p, err := ReadFile(path)
	require.NoError(t, err)
	require.NotNil(t, p.Environment)
	assert.Equal(t, "production", *p.Environment)
	require.NotNil(t, p.ObserverAPIEndpoint)
	assert.Equal(t, "https://observer.example.com", *p.ObserverAPIEndpoint)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestPartialMerge(t *testing.T) {
	base := NewPartial(WithServiceName("base"), WithEnvironment("base"))
	over := NewPartial(WithEnvironment(""))

	merged := base.Merge(over)
	require.NotNil(t, merged.ServiceName)
	assert.Equal(t, "base", *merged.ServiceName)
	require.NotNil(t, merged.Environment)
	assert.Equal(t, "", *merged.Environment, "an explicit empty value still overrides")

	// Merge returns a copy.
	assert.Equal(t, "base", *base.Environment)
}
