package server

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults
const (
	DefaultAddr          = ":8080"
	DefaultMaxBatchFiles = 100
	DefaultCacheTTL      = 3600 // seconds
)

// Config is the HTTP service configuration
type Config struct {
	Addr          string      `koanf:"addr"`
	RulesFile     string      `koanf:"rules_file"`
	MaxBatchFiles int         `koanf:"max_batch_files"`
	Cache         CacheConfig `koanf:"cache"`
}

// CacheConfig configures the optional conversion result cache. An empty
// address disables caching entirely.
type CacheConfig struct {
	Addr       string `koanf:"addr"`
	DB         int    `koanf:"db"`
	TTLSeconds int    `koanf:"ttl_seconds"`
}

// LoadConfig builds the service config from defaults, an optional YAML file
// and BRIDGEQL_-prefixed environment variables (highest priority)
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"addr":              DefaultAddr,
		"max_batch_files":   DefaultMaxBatchFiles,
		"cache.ttl_seconds": DefaultCacheTTL,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file, when present
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
			}
		}
	}

	// 3. Environment variables: BRIDGEQL_CACHE_ADDR -> cache.addr
	if err := k.Load(env.Provider("BRIDGEQL_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "BRIDGEQL_"))
		return strings.Replace(key, "cache_", "cache.", 1)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}
