// Package config loads fsbox settings from an optional YAML file and
// FSBOX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/deepnoodle-ai/fsbox/internal/tracing"
	"github.com/deepnoodle-ai/fsbox/log"
	"github.com/deepnoodle-ai/fsbox/sandbox"
	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "FSBOX"

// Config is the complete fsbox configuration.
type Config struct {
	AllowedDirectories []string       `yaml:"allowed_directories" split_words:"true"`
	Log                LogConfig      `yaml:"log"`
	Tracing            tracing.Config `yaml:"tracing"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used before any file or environment
// values are applied.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Tracing: tracing.Config{
			Enabled:  false,
			Exporter: tracing.ExporterNoop,
		},
	}
}

// Load reads the YAML file at path, when path is non-empty, over the
// defaults and then applies environment overrides. The result is not
// validated, so callers may add directories before calling Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg. Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	return yaml.UnmarshalWithOptions(data, cfg, yaml.Strict())
}

// AddDirectories appends non-blank directories to the allowed list.
func (c *Config) AddDirectories(dirs ...string) {
	for _, dir := range dirs {
		if strings.TrimSpace(dir) != "" {
			c.AllowedDirectories = append(c.AllowedDirectories, dir)
		}
	}
}

// Validate reports every problem with the configuration.
func (c *Config) Validate() error {
	var errs []error
	if len(c.directories()) == 0 {
		errs = append(errs, errors.New("at least one allowed directory is required"))
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	if err := c.Tracing.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel returns the configured logger level.
func (c *Config) LogLevel() log.Level {
	return log.LevelFromString(c.Log.Level)
}

// Roots canonicalizes the allowed directories.
func (c *Config) Roots() (*sandbox.AllowedRoots, error) {
	return sandbox.NewAllowedRoots(c.directories())
}

func (c *Config) directories() []string {
	var dirs []string
	for _, dir := range c.AllowedDirectories {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
