package rates

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout = 10 * time.Second
	defaultTTL     = time.Hour
)

// Config configures a Source.
type Config struct {
	URL          string        // Provider URL, the base currency is appended as last path element
	Timeout      time.Duration // Timeout for a single provider request
	TTL          time.Duration // How long fetched tables are cached
	FallbackFile string        // TOML file overriding the built-in fallback tables
	RedisAddr    string        // If set, tables are cached in redis instead of in memory
}

// ConfigFromEnv reads the configuration from the environment.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		URL:          os.Getenv("EXCHANGE_RATE_API_URL"),
		Timeout:      defaultTimeout,
		TTL:          defaultTTL,
		FallbackFile: os.Getenv("EXCHANGE_RATE_FALLBACK_FILE"),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
	}

	var err error
	if v, ok := os.LookupEnv("EXCHANGE_RATE_TIMEOUT"); ok {
		cfg.Timeout, err = time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("EXCHANGE_RATE_TIMEOUT is not a valid duration: %w", err)
		}
	}

	if v, ok := os.LookupEnv("EXCHANGE_RATE_TTL"); ok {
		cfg.TTL, err = time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("EXCHANGE_RATE_TTL is not a valid duration: %w", err)
		}
	}

	return cfg, nil
}

// New creates a Source from cfg. The returned function releases the cache connection.
func New(cfg Config) (*Source, func(), error) {
	fallbacks, err := LoadFallbacks(cfg.FallbackFile)
	if err != nil {
		return nil, func() {}, err
	}

	fetcher := NewFetcher(cfg.URL, cfg.Timeout)

	if cfg.RedisAddr != "" {
		log.Debug().Str("addr", cfg.RedisAddr).Msg("caching exchange rates in redis")

		cache := NewRedisCache(cfg.RedisAddr)
		return NewSource(fetcher, cache, cfg.TTL, fallbacks), func() {
			if err := cache.Close(); err != nil {
				log.Error().Err(err).Msg("closing redis connection")
			}
		}, nil
	}

	return NewSource(fetcher, NewMemoryCache(), cfg.TTL, fallbacks), func() {}, nil
}
