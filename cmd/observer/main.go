// Command observer resolves the observer configuration the way an embedding
// application would and prints the result with credentials masked.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/teneburu/observer/config"
	"github.com/teneburu/observer/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("observer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFiles := fs.String("env-file", "", "comma separated dotenv files loaded beneath the process environment")
	configFile := fs.String("config", "", "optional YAML, JSON or TOML configuration file")
	logFormat := fs.String("log-format", logging.FormatText, "text, json")
	logLevel := fs.String("log-level", "info", "trace, debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := logging.Setup(logging.Options{Level: *logLevel, Format: *logFormat, Output: stderr})
	config.SetLogger(logger)
	defer config.SetLogger(nil)

	environ, err := config.EnvironWithDotEnv(splitList(*envFiles)...)
	if err != nil {
		logger.WithError(err).Error("Failed to read environment")
		return 1
	}

	var opts []config.Option
	if *configFile != "" {
		p, err := config.ReadFile(*configFile)
		if err != nil {
			logger.WithError(err).Error("Failed to read configuration file")
			return 1
		}
		opts = append(opts, config.WithPartial(p))
	}

	cfg, err := config.Resolve(environ, config.NewPartial(opts...))
	if err != nil {
		// Violations are already reported through the config logger.
		if _, ok := config.AsValidationError(err); !ok {
			logger.WithError(err).Error("Failed to resolve configuration")
		}
		return 1
	}
	cfg.Log(logger)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg.Redacted()); err != nil {
		fmt.Fprintf(stderr, "write configuration: %v\n", err)
		return 1
	}
	return 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
