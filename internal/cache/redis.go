package cache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/types"
)

// RedisStore implements types.Store backed by a Redis server.
// Construction fails when the server cannot be reached.
type RedisStore struct {
	client     *redis.Client
	config     config.RedisConfig
	defaultTTL time.Duration
	logger     types.Logger

	closed atomic.Bool

	hits    atomic.Int64
	misses  atomic.Int64
	sets    atomic.Int64
	deletes atomic.Int64
}

// NewRedisStore connects to Redis with the given configuration and
// verifies the connection with a ping.
func NewRedisStore(cfg config.RedisConfig, defaultTTL time.Duration, logger types.Logger) (*RedisStore, error) {
	opts := &redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password.Value(),
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if cfg.EnableTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, types.NewCacheError("connect", "", "redis",
			fmt.Errorf("%w: %v", types.ErrConnection, err))
	}

	rs := &RedisStore{
		client:     client,
		config:     cfg,
		defaultTTL: defaultTTL,
		logger:     logger,
	}
	if rs.logger != nil {
		rs.logger.Debug("redis connected: %s db=%d", cfg.Address, cfg.DB)
	}
	return rs, nil
}

// Name returns the backend name.
func (s *RedisStore) Name() string {
	return "redis"
}

// IsAvailable reports whether the store can serve requests.
func (s *RedisStore) IsAvailable() bool {
	return !s.closed.Load()
}

func (s *RedisStore) prefixed(key string) string {
	return s.config.KeyPrefix + key
}

// Get retrieves the raw value stored under key. A missing key returns
// types.ErrCacheMiss.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, types.ErrClosed
	}

	data, err := s.client.Get(ctx, s.prefixed(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.misses.Add(1)
			return nil, types.NewCacheError("get", key, "redis", types.ErrCacheMiss)
		}
		return nil, types.NewCacheError("get", key, "redis",
			fmt.Errorf("%w: %v", types.ErrConnection, err))
	}

	s.hits.Add(1)
	return data, nil
}

// Set stores value under key. The effective expiry comes from opts:
// zero means the store default, negative means no expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, opts *types.CacheOptions) error {
	if s.closed.Load() {
		return types.ErrClosed
	}

	ttl := s.effectiveTTL(opts)
	if err := s.client.Set(ctx, s.prefixed(key), value, ttl).Err(); err != nil {
		return types.NewCacheError("set", key, "redis",
			fmt.Errorf("%w: %v", types.ErrConnection, err))
	}

	s.sets.Add(1)
	return nil
}

func (s *RedisStore) effectiveTTL(opts *types.CacheOptions) time.Duration {
	ttl := s.defaultTTL
	if opts != nil && opts.TTL != 0 {
		ttl = opts.TTL
	}
	if ttl < 0 {
		ttl = 0 // redis: no expiry
	}
	return ttl
}

// Delete removes key. Deleting a missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if s.closed.Load() {
		return types.ErrClosed
	}

	if err := s.client.Del(ctx, s.prefixed(key)).Err(); err != nil {
		return types.NewCacheError("delete", key, "redis",
			fmt.Errorf("%w: %v", types.ErrConnection, err))
	}

	s.deletes.Add(1)
	return nil
}

// Clear removes every key this store owns. With a key prefix
// configured only the prefixed keys are scanned and removed; without
// one the whole database is flushed.
func (s *RedisStore) Clear(ctx context.Context) error {
	if s.closed.Load() {
		return types.ErrClosed
	}

	if s.config.KeyPrefix == "" {
		if err := s.client.FlushDB(ctx).Err(); err != nil {
			return types.NewCacheError("clear", "", "redis",
				fmt.Errorf("%w: %v", types.ErrConnection, err))
		}
		return nil
	}

	iter := s.client.Scan(ctx, 0, s.config.KeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return types.NewCacheError("clear", iter.Val(), "redis",
				fmt.Errorf("%w: %v", types.ErrConnection, err))
		}
	}
	if err := iter.Err(); err != nil {
		return types.NewCacheError("clear", "", "redis",
			fmt.Errorf("%w: %v", types.ErrConnection, err))
	}
	return nil
}

// Contains reports whether key is present.
func (s *RedisStore) Contains(ctx context.Context, key string) (bool, error) {
	if s.closed.Load() {
		return false, types.ErrClosed
	}

	n, err := s.client.Exists(ctx, s.prefixed(key)).Result()
	if err != nil {
		return false, types.NewCacheError("contains", key, "redis",
			fmt.Errorf("%w: %v", types.ErrConnection, err))
	}
	return n > 0, nil
}

// Ping checks connectivity to the server.
func (s *RedisStore) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return types.ErrClosed
	}

	if err := s.client.Ping(ctx).Err(); err != nil {
		return types.NewCacheError("ping", "", "redis",
			fmt.Errorf("%w: %v", types.ErrConnection, err))
	}
	return nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.client.Close()
}

// Stats returns cumulative operation counters.
func (s *RedisStore) Stats() StoreStats {
	return StoreStats{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Sets:    s.sets.Load(),
		Deletes: s.deletes.Load(),
	}
}
