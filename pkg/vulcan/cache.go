package vulcan

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/vulcanutils/vulcan/internal/cache"
	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/encode"
	"github.com/vulcanutils/vulcan/internal/logging"
	"github.com/vulcanutils/vulcan/internal/metrics"
	"github.com/vulcanutils/vulcan/internal/metrics/datadog"
	"github.com/vulcanutils/vulcan/internal/types"
)

// Cache stores JSON-encoded values in a backend selected by
// configuration: Redis or in-process memory. Construction fails when
// the Redis backend cannot be reached.
type Cache struct {
	store      types.Store
	serializer types.Serializer
	logger     types.Logger
	metrics    types.MetricsRecorder
	tracker    *metrics.Tracker
	group      singleflight.Group
	closed     atomic.Bool
}

// NewCache creates a cache from the default configuration with
// VULCAN_* environment overrides applied.
func NewCache() (*Cache, error) {
	cfg, err := config.LoadWithEnv("")
	if err != nil {
		return nil, err
	}
	return NewCacheFromConfig(cfg)
}

// NewCacheFromFile creates a cache from a JSON config file with
// environment overrides applied on top.
func NewCacheFromFile(path string) (*Cache, error) {
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, err
	}
	return NewCacheFromConfig(cfg)
}

// NewMemoryCache creates a cache backed by in-process memory only.
func NewMemoryCache() (*Cache, error) {
	cfg := config.DefaultConfig()
	cfg.Cache.Backend = config.BackendMemory
	return NewCacheFromConfig(cfg)
}

// NewCacheFromConfig creates a cache from an explicit configuration.
func NewCacheFromConfig(cfg *config.Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := loggerFromConfig(cfg.Logger)
	if err != nil {
		return nil, err
	}

	var tracker *metrics.Tracker
	var recorder types.MetricsRecorder = metrics.NoOpRecorder{}
	if cfg.Metrics.Enabled {
		publisher, err := datadog.NewPublisher(&cfg.Metrics.DataDog, logger)
		if err != nil {
			return nil, err
		}
		tracker = metrics.NewTracker(publisher)
		recorder = tracker
	}

	store, err := cache.NewStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Cache{
		store:      store,
		serializer: encode.JSONSerializer{},
		logger:     logger,
		metrics:    recorder,
		tracker:    tracker,
	}, nil
}

func loggerFromConfig(cfg config.LoggerConfig) (*logging.Logger, error) {
	opts := []logging.Option{
		logging.WithColor(cfg.Colored),
		logging.WithCaller(cfg.ShowCaller),
	}
	if cfg.Level != "" {
		level, err := logging.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logging.WithLevel(level))
	}
	if cfg.Path != "" {
		opts = append(opts, logging.WithFile(cfg.Path, cfg.Name))
	}
	name := cfg.Name
	if name == "" {
		name = "vulcan.cache"
	}
	return logging.New(name, opts...)
}

// CacheConfig returns a default configuration that can be modified
// before calling NewCacheFromConfig.
func CacheConfig() *config.Config {
	return config.DefaultConfig()
}

// TestCacheConfig returns a configuration suitable for unit tests:
// memory backend, short windows, DEBUG logging.
func TestCacheConfig() *config.Config {
	return config.ForTesting()
}

// Backend reports the active backend name ("redis" or "memory").
func (c *Cache) Backend() string {
	return c.store.Name()
}

// Set encodes value as JSON and stores it under key. Expiry comes
// from the options; WithTTL overrides the configured default and
// WithNoExpiry disables it.
func (c *Cache) Set(ctx context.Context, key string, value any, opts ...Option) error {
	if c.closed.Load() {
		return types.ErrClosed
	}

	data, err := c.serializer.Marshal(value)
	if err != nil {
		c.metrics.RecordError(c.store.Name(), "set", err)
		return err
	}

	resolved := types.ApplyOptions(opts...)
	start := time.Now()
	if err := c.store.Set(ctx, key, data, resolved); err != nil {
		c.metrics.RecordError(c.store.Name(), "set", err)
		return err
	}
	c.metrics.RecordSet(c.store.Name(), key, len(data), time.Since(start))
	c.logger.Debug("set %s (%d bytes)", key, len(data))
	return nil
}

// Get loads the value stored under key into dest, which must be a
// pointer. A missing key returns ErrCacheMiss; use IsCacheMiss to
// tell it apart from backend failures.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	if c.closed.Load() {
		return types.ErrClosed
	}

	start := time.Now()
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if types.IsCacheMiss(err) {
			c.metrics.RecordMiss(c.store.Name(), key, time.Since(start))
		} else {
			c.metrics.RecordError(c.store.Name(), "get", err)
		}
		return err
	}
	c.metrics.RecordHit(c.store.Name(), key, time.Since(start))

	return c.serializer.Unmarshal(data, dest)
}

// GetOrCreate loads key into dest, or runs create to produce, store,
// and return the value on a miss. Concurrent misses for the same key
// collapse to a single create call.
func (c *Cache) GetOrCreate(ctx context.Context, key string, dest any, create func(ctx context.Context) (any, error), opts ...Option) error {
	err := c.Get(ctx, key, dest)
	if err == nil || !types.IsCacheMiss(err) {
		return err
	}

	data, err, _ := c.group.Do(key, func() (any, error) {
		value, err := create(ctx)
		if err != nil {
			return nil, err
		}
		encoded, err := c.serializer.Marshal(value)
		if err != nil {
			return nil, err
		}
		resolved := types.ApplyOptions(opts...)
		if err := c.store.Set(ctx, key, encoded, resolved); err != nil {
			// Serve the created value even when the write-back fails.
			c.logger.Warning("write-back of %s failed: %v", key, err)
			c.metrics.RecordError(c.store.Name(), "set", err)
		} else {
			c.metrics.RecordSet(c.store.Name(), key, len(encoded), 0)
		}
		return encoded, nil
	})
	if err != nil {
		return err
	}
	return c.serializer.Unmarshal(data.([]byte), dest)
}

// Delete removes key. Deleting a missing key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c.closed.Load() {
		return types.ErrClosed
	}

	start := time.Now()
	if err := c.store.Delete(ctx, key); err != nil {
		c.metrics.RecordError(c.store.Name(), "delete", err)
		return err
	}
	c.metrics.RecordDelete(c.store.Name(), key, time.Since(start))
	return nil
}

// Clear removes every key the cache owns.
func (c *Cache) Clear(ctx context.Context) error {
	if c.closed.Load() {
		return types.ErrClosed
	}
	return c.store.Clear(ctx)
}

// Contains reports whether key is present without decoding it.
func (c *Cache) Contains(ctx context.Context, key string) (bool, error) {
	if c.closed.Load() {
		return false, types.ErrClosed
	}
	return c.store.Contains(ctx, key)
}

// Ping checks connectivity to the backend.
func (c *Cache) Ping(ctx context.Context) error {
	if c.closed.Load() {
		return types.ErrClosed
	}
	return c.store.Ping(ctx)
}

// Metrics returns a snapshot of the cache's counters. It is zero
// when metrics are disabled.
func (c *Cache) Metrics() MetricsSnapshot {
	return c.tracker.Snapshot()
}

// Close shuts the cache down. Further operations return ErrClosed.
func (c *Cache) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.store.Close()
}
