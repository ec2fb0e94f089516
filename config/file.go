package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ReadFile reads a configuration file (YAML, JSON or TOML, chosen by
// extension) into a layer suitable for WithPartial. Keys are the field paths
// (serviceName, lokiUrl, ...); unknown keys are ignored.
func ReadFile(path string) (Partial, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Partial{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var p Partial
	if err := v.Unmarshal(&p); err != nil {
		return Partial{}, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return p, nil
}
