package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const redisKeyPrefix = "tripbudget:rates:"

// RedisCache shares rate tables between several backend instances.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
		MaxRetries:  1,
	})

	return &RedisCache{
		client: rdb,
	}
}

func (r *RedisCache) Get(ctx context.Context, base string) (Table, bool) {
	val, err := r.client.Get(ctx, redisKeyPrefix+base).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("base", base).Msg("reading exchange rates from redis")
		}
		return Table{}, false
	}

	var table Table
	if err := json.Unmarshal(val, &table); err != nil {
		log.Warn().Err(err).Str("base", base).Msg("decoding exchange rates from redis")
		return Table{}, false
	}

	return table, true
}

func (r *RedisCache) Set(ctx context.Context, table Table, ttl time.Duration) error {
	val, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("encoding exchange rates: %w", err)
	}

	return r.client.Set(ctx, redisKeyPrefix+table.Base, val, ttl).Err()
}

// Close closes the connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
