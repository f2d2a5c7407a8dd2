// Package config loads the dfa configuration.
//
// Values come from an optional YAML file, then from DFA_* environment
// variables; command-line flags are applied last by the CLI. The file is
// decoded into a generic map first and then into Config with mapstructure, so
// loosely typed values ("8080" for a port, "yes" for a bool) are accepted.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "dfa.yaml"

// Config is the complete runtime configuration.
type Config struct {
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	Workers  int          `mapstructure:"workers" yaml:"workers"`
	Color    bool         `mapstructure:"color" yaml:"color"`
	Store    StoreConfig  `mapstructure:"store" yaml:"store"`
	Server   ServerConfig `mapstructure:"server" yaml:"server"`
}

// StoreConfig selects where named automata are kept.
type StoreConfig struct {
	// Driver is one of "memory", "file" or "redis".
	Driver string      `mapstructure:"driver" yaml:"driver"`
	Dir    string      `mapstructure:"dir" yaml:"dir"`
	Redis  RedisConfig `mapstructure:"redis" yaml:"redis"`
}

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr" yaml:"addr"`
	Password string        `mapstructure:"password" yaml:"password"`
	DB       int           `mapstructure:"db" yaml:"db"`
	Prefix   string        `mapstructure:"prefix" yaml:"prefix"`
	TTL      time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" yaml:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Color:    true,
		Store: StoreConfig{
			Driver: "memory",
			Redis:  RedisConfig{Addr: "localhost:6379", Prefix: "dfa:automaton:"},
		},
		Server: ServerConfig{Port: 8080, ShutdownTimeout: 5 * time.Second},
	}
}

// Load reads path (or DefaultFile when path is empty and it exists) over the
// defaults, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := applyEnv(&cfg, os.Environ()); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode merges YAML data into cfg.
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return decodeMap(raw, cfg)
}

func decodeMap(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// envKeys maps DFA_* variables to nested config keys.
var envKeys = map[string][]string{
	"DFA_LOG_LEVEL":      {"log_level"},
	"DFA_WORKERS":        {"workers"},
	"DFA_COLOR":          {"color"},
	"DFA_STORE_DRIVER":   {"store", "driver"},
	"DFA_STORE_DIR":      {"store", "dir"},
	"DFA_REDIS_ADDR":     {"store", "redis", "addr"},
	"DFA_REDIS_PASSWORD": {"store", "redis", "password"},
	"DFA_REDIS_DB":       {"store", "redis", "db"},
	"DFA_REDIS_PREFIX":   {"store", "redis", "prefix"},
	"DFA_REDIS_TTL":      {"store", "redis", "ttl"},
	"DFA_SERVER_PORT":    {"server", "port"},
}

func applyEnv(cfg *Config, environ []string) error {
	raw := map[string]any{}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		path, known := envKeys[k]
		if !known {
			continue
		}
		m := raw
		for _, p := range path[:len(path)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[p] = next
			}
			m = next
		}
		m[path[len(path)-1]] = v
	}
	if len(raw) == 0 {
		return nil
	}
	if err := decodeMap(raw, cfg); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case "memory", "file", "redis":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}
