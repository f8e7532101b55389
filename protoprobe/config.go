package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the decode command.
const (
	FormatJSON    = "json"
	FormatDiag    = "diag"
	FormatCBOR    = "cbor"
	FormatMsgpack = "msgpack"
)

// Config holds the protoprobe settings. Values come from Default, then an
// optional YAML file, then PROTOPROBE_* environment variables, then flags.
type Config struct {
	MaxInputBytes int64  `yaml:"maxInputBytes" env:"PROTOPROBE_MAX_INPUT_BYTES"`
	Format        string `yaml:"format" env:"PROTOPROBE_FORMAT"`
	Pretty        bool   `yaml:"pretty" env:"PROTOPROBE_PRETTY"`
	LogLevel      string `yaml:"logLevel" env:"PROTOPROBE_LOG_LEVEL"`
	LogFormat     string `yaml:"logFormat" env:"PROTOPROBE_LOG_FORMAT"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		MaxInputBytes: 4 * 1024 * 1024, // 4MiB
		Format:        FormatJSON,
		LogLevel:      "warn",
		LogFormat:     "console",
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PROTOPROBE_MAX_INPUT_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PROTOPROBE_MAX_INPUT_BYTES: %w", err)
		}
		c.MaxInputBytes = n
	}
	if v, ok := lookup("PROTOPROBE_FORMAT"); ok {
		c.Format = v
	}
	if v, ok := lookup("PROTOPROBE_PRETTY"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PROTOPROBE_PRETTY: %w", err)
		}
		c.Pretty = b
	}
	if v, ok := lookup("PROTOPROBE_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("PROTOPROBE_LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	return nil
}

// Validate reports the first setting that protoprobe cannot honor.
func (c *Config) Validate() error {
	if c.MaxInputBytes <= 0 {
		return errors.New("maxInputBytes must be positive")
	}
	switch c.Format {
	case FormatJSON, FormatDiag, FormatCBOR, FormatMsgpack:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
