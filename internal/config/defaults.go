package config

import "time"

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:      "INFO",
			Path:       "",
			Name:       "vulcan",
			Colored:    true,
			ShowCaller: true,
		},
		Cache: CacheConfig{
			Backend:    "redis",
			DefaultTTL: 0, // no expiry unless requested
		},
		Redis: RedisConfig{
			Address:      "localhost:6379",
			Password:     SecretString{},
			DB:           0,
			KeyPrefix:    "",
			PoolSize:     100,
			MinIdleConns: 10,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			EnableTLS:    false,
		},
		Memory: MemoryConfig{
			MaxSizeMB:       256,
			Shards:          1024,
			LifeWindow:      10 * time.Minute,
			CleanupInterval: 10 * time.Second,
		},
		Retry: RetryConfig{
			Retries:  3,
			Delay:    1 * time.Second,
			Infinite: false,
		},
		RateLimit: RateLimitConfig{
			Limit:    10,
			Interval: 1 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			DataDog: DataDogConfig{
				Enabled:   false,
				AgentHost: "127.0.0.1",
				Port:      8125,
				Prefix:    "vulcan",
				Tags:      []string{},
			},
		},
	}
}

// ForTesting returns a minimal configuration suitable for unit tests.
func ForTesting() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:      "DEBUG",
			Name:       "vulcan-test",
			Colored:    false,
			ShowCaller: true,
		},
		Cache: CacheConfig{
			Backend:    "memory",
			DefaultTTL: 1 * time.Minute,
		},
		Redis: RedisConfig{
			Address:      "localhost:6379",
			KeyPrefix:    "vulcan:test:",
			PoolSize:     10,
			MinIdleConns: 1,
			DialTimeout:  1 * time.Second,
			ReadTimeout:  1 * time.Second,
			WriteTimeout: 1 * time.Second,
		},
		Memory: MemoryConfig{
			MaxSizeMB:       16,
			Shards:          64,
			LifeWindow:      1 * time.Minute,
			CleanupInterval: 1 * time.Second,
		},
		Retry: RetryConfig{
			Retries: 3,
			Delay:   1 * time.Millisecond,
		},
		RateLimit: RateLimitConfig{
			Limit:    3,
			Interval: 100 * time.Millisecond,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// ForTestingWithRedis returns a test config pointed at a Redis server.
func ForTestingWithRedis(addr string) *Config {
	cfg := ForTesting()
	cfg.Cache.Backend = "redis"
	cfg.Redis.Address = addr
	return cfg
}
