package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/reconcile-ui/reconcile/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "reconcile.toml"

	// DefaultParallel is the default number of diff workers (0 = serial).
	DefaultParallel = 0

	// DefaultHistoryCapacity is the default patch history ring size.
	DefaultHistoryCapacity = 100

	// DefaultNamespace is the default Prometheus metrics namespace.
	DefaultNamespace = "reconcile"
)

// Config represents the complete reconcile.toml configuration.
type Config struct {
	// Diff contains diff phase configuration.
	Diff DiffConfig `toml:"diff"`

	// History contains patch history configuration.
	History HistoryConfig `toml:"history"`

	// Telemetry contains metrics and tracing configuration.
	Telemetry TelemetryConfig `toml:"telemetry"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// DiffConfig contains diff phase settings.
type DiffConfig struct {
	// Parallel is the worker count for sibling subtree diffs. Zero keeps
	// the diff fully serial.
	Parallel int `toml:"parallel"`
}

// HistoryConfig contains patch history settings.
type HistoryConfig struct {
	// Capacity is the in-memory ring size in cycles.
	Capacity int `toml:"capacity"`

	// Path is the bbolt database file for persistent history. Empty
	// disables persistence.
	Path string `toml:"path"`
}

// TelemetryConfig contains metrics and tracing settings.
type TelemetryConfig struct {
	// Metrics enables the Prometheus collectors.
	Metrics bool `toml:"metrics"`

	// Namespace is the Prometheus metrics namespace.
	Namespace string `toml:"namespace"`

	// Tracing enables OpenTelemetry spans around each render cycle.
	Tracing bool `toml:"tracing"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Diff: DiffConfig{
			Parallel: DefaultParallel,
		},
		History: HistoryConfig{
			Capacity: DefaultHistoryCapacity,
		},
		Telemetry: TelemetryConfig{
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads configuration from the specified directory. It looks for
// reconcile.toml in the directory; a missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	cfg := New()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("cannot parse %s: %v", path, err).
			WithSuggestion("Check that the file is valid TOML.")
	}
	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Diff.Parallel < 0 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("diff.parallel must not be negative (got %d)", c.Diff.Parallel)
	}
	if c.History.Capacity <= 0 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("history.capacity must be positive (got %d)", c.History.Capacity)
	}
	return nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.History.Capacity == 0 {
		c.History.Capacity = DefaultHistoryCapacity
	}
	if c.Telemetry.Namespace == "" {
		c.Telemetry.Namespace = DefaultNamespace
	}
}
