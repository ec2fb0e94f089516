// Package globals holds the process-wide observer configuration for callers
// that cannot thread a *config.Config through their code.
package globals

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/teneburu/observer/config"
)

var ErrNotInitialized = errors.New("observer configuration not initialized: call globals.Initialize first")

var (
	mu     sync.RWMutex
	cfg    *config.Config
	logger logrus.FieldLogger = logrus.StandardLogger()
)

// SetLogger replaces the logger used to report re-initialization.
func SetLogger(l logrus.FieldLogger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = logrus.StandardLogger()
	}
	logger = l
}

// Initialize resolves the configuration from the process environment and opts
// and installs it. Calling it again replaces the previous configuration and
// logs a warning. On error the installed configuration is left untouched.
func Initialize(opts ...config.Option) (*config.Config, error) {
	resolved, err := config.Load(opts...)
	if err != nil {
		return nil, err
	}
	Set(resolved)
	return resolved, nil
}

// Set installs an already resolved configuration. A nil c is ignored.
func Set(c *config.Config) {
	if c == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if cfg != nil {
		logger.WithFields(logrus.Fields{
			"previous_service": cfg.ServiceName,
			"service":          c.ServiceName,
		}).Warn("Observer configuration re-initialized, replacing previous configuration")
	}
	cfg = c
}

// Config returns the installed configuration or ErrNotInitialized.
func Config() (*config.Config, error) {
	mu.RLock()
	defer mu.RUnlock()
	if cfg == nil {
		return nil, ErrNotInitialized
	}
	return cfg, nil
}

// MustConfig is like Config but panics when nothing is installed.
func MustConfig() *config.Config {
	c, err := Config()
	if err != nil {
		panic(err)
	}
	return c
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	cfg = nil
	logger = logrus.StandardLogger()
}
