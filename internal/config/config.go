// Package config provides configuration management for vulcan.
package config

import (
	"time"

	"github.com/vulcanutils/vulcan/internal/types"
)

// SecretString is a string type that redacts its value when marshaled to JSON.
type SecretString = types.SecretString

// NewSecretString creates a new SecretString with the provided value.
func NewSecretString(value string) SecretString {
	return types.NewSecretString(value)
}

// Config contains all configuration for the vulcan library.
type Config struct {
	Logger    LoggerConfig    `json:"logger"`
	Cache     CacheConfig     `json:"cache"`
	Redis     RedisConfig     `json:"redis"`
	Memory    MemoryConfig    `json:"memory"`
	Retry     RetryConfig     `json:"retry"`
	RateLimit RateLimitConfig `json:"rateLimit"`
	Metrics   MetricsConfig   `json:"metrics"`
}

// LoggerConfig configures the leveled logger.
type LoggerConfig struct {
	// Level is the minimum severity; one of DEBUG, INFO, WARNING, ERROR,
	// CRITICAL. Empty means INFO unless VULCAN_LOG_LEVEL overrides it.
	Level string `json:"level"`
	// Path is the directory for the log file. Empty disables file output
	// unless VULCAN_LOG_PATH is set.
	Path string `json:"path"`
	// Name is the base name of the log file, without extension.
	Name string `json:"name"`
	// Colored enables ANSI colors on the console destination.
	Colored bool `json:"colored"`
	// ShowCaller annotates each record with the calling file and line.
	ShowCaller bool `json:"showCaller"`
}

// Supported cache backends.
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	// Backend is "redis" or "memory".
	Backend string `json:"backend"`
	// DefaultTTL applies to Set calls with no explicit expiry.
	DefaultTTL time.Duration `json:"defaultTTL"`
}

// RedisConfig contains configuration for the Redis cache backend.
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     SecretString  `json:"password"`
	DB           int           `json:"db"`
	KeyPrefix    string        `json:"keyPrefix"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	DialTimeout  time.Duration `json:"dialTimeout"`
	ReadTimeout  time.Duration `json:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout"`
	EnableTLS    bool          `json:"enableTLS"`
}

// MemoryConfig contains configuration for the in-memory cache backend.
type MemoryConfig struct {
	MaxSizeMB       int           `json:"maxSizeMB"`
	Shards          int           `json:"shards"`
	LifeWindow      time.Duration `json:"lifeWindow"`
	CleanupInterval time.Duration `json:"cleanupInterval"`
}

// RetryConfig contains defaults for the retry wrapper.
type RetryConfig struct {
	Retries  int           `json:"retries"`
	Delay    time.Duration `json:"delay"`
	Infinite bool          `json:"infinite"`
}

// RateLimitConfig contains defaults for the rate-limit wrapper.
type RateLimitConfig struct {
	Limit    int           `json:"limit"`
	Interval time.Duration `json:"interval"`
}

// MetricsConfig contains configuration for metrics publishing.
type MetricsConfig struct {
	Enabled bool          `json:"enabled"`
	DataDog DataDogConfig `json:"datadog"`
}

// DataDogConfig contains configuration for DataDog StatsD publishing.
type DataDogConfig struct {
	Enabled   bool     `json:"enabled"`
	AgentHost string   `json:"agentHost"`
	Port      int      `json:"port"`
	Prefix    string   `json:"prefix"`
	Tags      []string `json:"tags"`
}
