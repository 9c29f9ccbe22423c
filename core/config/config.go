// Package config loads lessonmd settings from a YAML file and the
// environment. CLI flags are applied on top by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "lessonmd.yaml"

// CurrentVersion is the only supported config version.
const CurrentVersion = "1"

// ErrUnsupportedVersion is returned for config files of another version.
var ErrUnsupportedVersion = errors.New("unsupported configuration version")

// Config is the lessonmd configuration file.
type Config struct {
	Version string       `yaml:"version"`
	Log     LogConfig    `yaml:"log"`
	Store   StoreConfig  `yaml:"store"`
	Output  OutputConfig `yaml:"output"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// StoreConfig selects where lesson content comes from.
type StoreConfig struct {
	Kind    string        `yaml:"kind"`     // file | http
	Dir     string        `yaml:"dir"`      // file store root
	BaseURL string        `yaml:"base_url"` // course API root, e.g. http://localhost:3000/api
	Token   string        `yaml:"token"`    // bearer token, usually ${LESSONMD_TOKEN}
	Timeout time.Duration `yaml:"timeout"`
}

// OutputConfig controls rendered artifacts.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // html | page | json | pdf | markdown
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	applyDefaults(cfg)
	return cfg
}

// Load reads the config at path. A missing file at the default path is not
// an error; a missing explicitly named file is. Variables from .env are
// loaded first and ${VAR} references in the file are expanded.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Could not load .env file", slog.String("error", err.Error()))
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates config file contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}
	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %s (expected %s)", ErrUnsupportedVersion, cfg.Version, CurrentVersion)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	cfg.Store.Kind = strings.ToLower(strings.TrimSpace(cfg.Store.Kind))
	if cfg.Store.Kind == "" {
		cfg.Store.Kind = "file"
	}
	if cfg.Store.Dir == "" {
		cfg.Store.Dir = "."
	}
	if cfg.Store.Timeout <= 0 {
		cfg.Store.Timeout = 30 * time.Second
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if cfg.Output.Format == "" {
		cfg.Output.Format = "html"
	}
}

// Validate checks enumerated values and store requirements.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", c.Log.Format)
	}
	switch c.Store.Kind {
	case "file":
	case "http":
		if c.Store.BaseURL == "" {
			return fmt.Errorf("store.base_url is required for the http store")
		}
	default:
		return fmt.Errorf("invalid store kind %q (expected file or http)", c.Store.Kind)
	}
	if !ValidFormat(c.Output.Format) {
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	return nil
}

// Formats lists the supported output formats.
var Formats = []string{"html", "page", "json", "pdf", "markdown"}

// ValidFormat reports whether f is one of Formats.
func ValidFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", level)
	}
}
