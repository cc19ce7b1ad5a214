// Package config loads grapple's TOML configuration.
//
// The configuration covers the surfaces around the analysis core: the HTTP
// server address, the result cache backend and the graph store backend. A
// missing file is not an error - every field has a usable default, so the
// CLI works with no configuration at all.
//
// Example:
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "redis"   # file | redis | none
//	ttl = "24h"
//
//	[redis]
//	addr = "localhost:6379"
//
//	[store]
//	backend = "mongo"   # memory | mongo
//	uri = "mongodb://localhost:27017"
//	database = "grapple"
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/dkreuer/grapple/pkg/errors"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Redis  RedisConfig  `toml:"redis"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig configures the analysis result cache.
type CacheConfig struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"` // file backend only; empty = per-user cache dir
	TTL     duration `toml:"ttl"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig configures graph persistence.
type StoreConfig struct {
	Backend  string `toml:"backend"`
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// duration wraps time.Duration with TOML string parsing ("24h", "15m").
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Backend: CacheFile, TTL: duration{24 * time.Hour}},
		Redis:  RedisConfig{Addr: "localhost:6379"},
		Store:  StoreConfig{Backend: StoreMemory, URI: "mongodb://localhost:27017", Database: "grapple"},
	}
}

// Load reads the TOML file at path, layered over Default.
// A missing file returns the defaults; a malformed or invalid file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks backend names and required backend parameters.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case CacheFile, CacheNone:
	case CacheRedis:
		if c.Redis.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "redis cache backend requires redis.addr")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %q", c.Cache.Backend)
	}

	switch c.Store.Backend {
	case StoreMemory:
	case StoreMongo:
		if c.Store.URI == "" || c.Store.Database == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "mongo store backend requires store.uri and store.database")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend: %q", c.Store.Backend)
	}

	return nil
}

// CacheTTL returns the configured cache TTL.
func (c Config) CacheTTL() time.Duration {
	return c.Cache.TTL.Duration
}
