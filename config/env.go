package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// Environ returns a snapshot of the process environment.
func Environ() map[string]string {
	return env.ToMap(os.Environ())
}

// EnvironWithDotEnv returns the process environment with the variables from
// the given dotenv files underneath it: a variable set to a non-empty value in
// the process wins over the file.
func EnvironWithDotEnv(files ...string) (map[string]string, error) {
	if len(files) == 0 {
		return Environ(), nil
	}
	fromFiles, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("read dotenv files: %w", err)
	}
	fromProcess := lo.PickBy(Environ(), func(_ string, value string) bool {
		return value != ""
	})
	return lo.Assign(fromFiles, fromProcess), nil
}

// environmentLayer decodes the OBSERVER_* variables of environ. Unset and
// empty variables are left nil so they never override a lower layer.
func environmentLayer(environ map[string]string) (Partial, error) {
	if environ == nil {
		// A nil map would make the decoder fall back to os.Environ.
		environ = map[string]string{}
	}
	var layer Partial
	if err := env.ParseWithOptions(&layer, env.Options{Environment: environ}); err != nil {
		return Partial{}, err
	}
	return layer, nil
}
