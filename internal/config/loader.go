package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Load loads configuration from a JSON file.
// If the file doesn't exist, returns default configuration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithEnv loads configuration from a JSON file and applies environment overrides.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VULCAN_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("VULCAN_LOG_PATH"); v != "" {
		cfg.Logger.Path = v
	}
	if v := os.Getenv("VULCAN_LOG_NAME"); v != "" {
		cfg.Logger.Name = v
	}
	if v := os.Getenv("VULCAN_LOG_COLOR"); v != "" {
		cfg.Logger.Colored = parseBool(v)
	}
	if v := os.Getenv("VULCAN_LOG_CALLER"); v != "" {
		cfg.Logger.ShowCaller = parseBool(v)
	}

	if v := os.Getenv("VULCAN_CACHE_BACKEND"); v != "" {
		cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("VULCAN_CACHE_DEFAULT_TTL"); v != "" {
		cfg.Cache.DefaultTTL = parseDuration(v, cfg.Cache.DefaultTTL)
	}

	if v := os.Getenv("VULCAN_REDIS_ADDRESS"); v != "" {
		cfg.Redis.Address = v
	}
	if v := os.Getenv("VULCAN_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = NewSecretString(v)
	}
	if v := os.Getenv("VULCAN_REDIS_DB"); v != "" {
		cfg.Redis.DB = parseInt(v, cfg.Redis.DB)
	}
	if v := os.Getenv("VULCAN_REDIS_KEY_PREFIX"); v != "" {
		cfg.Redis.KeyPrefix = v
	}
	if v := os.Getenv("VULCAN_REDIS_POOL_SIZE"); v != "" {
		cfg.Redis.PoolSize = parseInt(v, cfg.Redis.PoolSize)
	}
	if v := os.Getenv("VULCAN_REDIS_ENABLE_TLS"); v != "" {
		cfg.Redis.EnableTLS = parseBool(v)
	}

	if v := os.Getenv("VULCAN_RETRY_RETRIES"); v != "" {
		cfg.Retry.Retries = parseInt(v, cfg.Retry.Retries)
	}
	if v := os.Getenv("VULCAN_RETRY_DELAY"); v != "" {
		cfg.Retry.Delay = parseDuration(v, cfg.Retry.Delay)
	}

	if v := os.Getenv("VULCAN_RATE_LIMIT"); v != "" {
		cfg.RateLimit.Limit = parseInt(v, cfg.RateLimit.Limit)
	}
	if v := os.Getenv("VULCAN_RATE_INTERVAL"); v != "" {
		cfg.RateLimit.Interval = parseDuration(v, cfg.RateLimit.Interval)
	}

	if v := os.Getenv("VULCAN_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}

	if v := os.Getenv("DD_AGENT_HOST"); v != "" {
		cfg.Metrics.DataDog.AgentHost = v
		cfg.Metrics.DataDog.Enabled = true
	}
	if v := os.Getenv("DD_DOGSTATSD_PORT"); v != "" {
		cfg.Metrics.DataDog.Port = parseInt(v, cfg.Metrics.DataDog.Port)
	}
	if v := os.Getenv("DD_SERVICE"); v != "" {
		cfg.Metrics.DataDog.Prefix = v
	}
	if v := os.Getenv("DD_ENV"); v != "" {
		cfg.Metrics.DataDog.Tags = append(cfg.Metrics.DataDog.Tags, "env:"+v)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "redis":
		if c.Redis.Address == "" {
			return fmt.Errorf("redis.address is required for the redis backend")
		}
		if c.Redis.PoolSize <= 0 {
			return fmt.Errorf("redis.poolSize must be positive")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("redis.db must be non-negative")
		}
	case "memory":
		if c.Memory.MaxSizeMB <= 0 {
			return fmt.Errorf("memory.maxSizeMB must be positive")
		}
		if c.Memory.Shards <= 0 || (c.Memory.Shards&(c.Memory.Shards-1)) != 0 {
			return fmt.Errorf("memory.shards must be a positive power of 2")
		}
	case "":
		return fmt.Errorf("cache.backend is required")
	default:
		return fmt.Errorf("cache.backend must be redis or memory, got %q", c.Cache.Backend)
	}

	if c.RateLimit.Limit < 0 {
		return fmt.Errorf("rateLimit.limit must be non-negative")
	}
	if c.RateLimit.Limit > 0 && c.RateLimit.Interval <= 0 {
		return fmt.Errorf("rateLimit.interval must be positive when a limit is set")
	}

	if c.Retry.Delay < 0 {
		return fmt.Errorf("retry.delay must be non-negative")
	}

	return nil
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

func parseInt(s string, defaultVal int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultVal
	}
	return v
}

func parseDuration(s string, defaultVal time.Duration) time.Duration {
	s = strings.TrimSpace(s)

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Duration(secs) * time.Second
	}

	return defaultVal
}
