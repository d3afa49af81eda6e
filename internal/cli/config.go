package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tilestitch/internal/server"
	"github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/pipeline"
)

// Cache backends accepted in the config file.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Config holds persistent defaults read from config.toml. Command-line flags
// take precedence over every field.
//
//	mark    = "O"
//	formats = ["txt", "png"]
//	scale   = 8
//
//	[cache]
//	backend    = "redis"
//	redis_addr = "localhost:6379"
//	ttl        = "24h"
//
//	[server]
//	addr = "0.0.0.0:8080"
type Config struct {
	Mark      string       `toml:"mark"`
	MotifFile string       `toml:"motif_file"`
	Formats   []string     `toml:"formats"`
	Scale     int          `toml:"scale"`
	Cache     CacheConfig  `toml:"cache"`
	Server    ServerConfig `toml:"server"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	RedisAddr string        `toml:"redis_addr"`
	Prefix    string        `toml:"prefix"`
	TTL       time.Duration `toml:"ttl"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Mark:    pipeline.DefaultMark,
		Formats: []string{pipeline.FormatTXT},
		Scale:   pipeline.DefaultScale,
		Cache:   CacheConfig{Backend: backendFile},
		Server:  ServerConfig{Addr: server.DefaultAddr},
	}
}

// LoadConfig reads path over the defaults. A missing file is only an error
// when explicit is set. Unknown keys are rejected.
func LoadConfig(path string, explicit bool) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if err := errors.ValidateMark(c.Mark); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if c.Scale < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be at least 1, got %d", c.Scale)
	}
	switch c.Cache.Backend {
	case backendFile, backendNone:
	case backendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (must be file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	return nil
}
