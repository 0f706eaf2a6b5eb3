// Package config loads roadnet settings.
//
// Layers, later wins: built-in defaults, an optional YAML file, an optional
// .env file, then ROADNET_* process environment variables. Command-line flags
// are applied on top by the command itself.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvCSV        = "ROADNET_CSV"
	EnvSource     = "ROADNET_SOURCE"
	EnvTarget     = "ROADNET_TARGET"
	EnvLogLevel   = "ROADNET_LOG_LEVEL"
	EnvLogFormat  = "ROADNET_LOG_FORMAT"
	EnvMetricsOut = "ROADNET_METRICS_OUT"
	// EnvBlocked is a comma-separated list of a:b pairs.
	EnvBlocked = "ROADNET_BLOCKED"
)

// DefaultEnvFile is read when present in the working directory.
const DefaultEnvFile = ".env"

// ErrBadBlock indicates a blocked entry that is not of the form a:b.
var ErrBadBlock = errors.New("config: blocked entry must be from:to")

// Config holds every setting of the roadnet command.
type Config struct {
	CSV        string   `yaml:"csv"`
	Source     string   `yaml:"source"`
	Target     string   `yaml:"target"`
	LogLevel   string   `yaml:"log_level"`
	LogFormat  string   `yaml:"log_format"`
	MetricsOut string   `yaml:"metrics_out"`
	Blocked    []string `yaml:"blocked"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Options configures Load.
type Options struct {
	// EnvFile is the dotenv file to read. A missing file is ignored.
	EnvFile string
	// LookupEnv reads process environment variables.
	LookupEnv func(string) (string, bool)
}

// Option is a functional option for Load.
type Option func(*Options)

// WithEnvFile overrides DefaultEnvFile. An empty path disables the dotenv layer.
func WithEnvFile(path string) Option {
	return func(o *Options) { o.EnvFile = path }
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.LookupEnv = fn
		}
	}
}

// Load builds a Config. path may be empty; a non-empty path must exist.
func Load(path string, opts ...Option) (Config, error) {
	o := Options{EnvFile: DefaultEnvFile, LookupEnv: os.LookupEnv}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	dotenv := map[string]string{}
	if o.EnvFile != "" {
		values, err := godotenv.Read(o.EnvFile)
		switch {
		case err == nil:
			dotenv = values
		case errors.Is(err, os.ErrNotExist):
		default:
			return cfg, fmt.Errorf("config: failed to read %s: %w", o.EnvFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := o.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	overrideString(lookup, EnvCSV, &cfg.CSV)
	overrideString(lookup, EnvSource, &cfg.Source)
	overrideString(lookup, EnvTarget, &cfg.Target)
	overrideString(lookup, EnvLogLevel, &cfg.LogLevel)
	overrideString(lookup, EnvLogFormat, &cfg.LogFormat)
	overrideString(lookup, EnvMetricsOut, &cfg.MetricsOut)
	if v, ok := lookup(EnvBlocked); ok {
		cfg.Blocked = splitList(v)
	}

	if _, err := cfg.Blocks(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Blocks parses Blocked into (from, to) pairs.
func (c Config) Blocks() ([][2]string, error) {
	return ParseBlocks(c.Blocked)
}

// ParseBlocks parses a:b entries.
func ParseBlocks(entries []string) ([][2]string, error) {
	out := make([][2]string, 0, len(entries))
	for _, entry := range entries {
		from, to, ok := strings.Cut(entry, ":")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadBlock, entry)
		}
		out = append(out, [2]string{from, to})
	}
	return out, nil
}

func overrideString(lookup func(string) (string, bool), key string, dst *string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
