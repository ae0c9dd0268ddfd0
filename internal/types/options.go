package types

import "time"

// CacheOptions contains per-operation settings for cache writes.
type CacheOptions struct {
	// TTL is the entry lifetime. Zero means the backend default applies;
	// a negative value stores the entry without expiry.
	TTL time.Duration
}

func DefaultOptions() *CacheOptions {
	return &CacheOptions{}
}

// Option is a functional option for configuring cache operations.
type Option func(*CacheOptions)

// ApplyOptions applies functional options to create CacheOptions.
func ApplyOptions(opts ...Option) *CacheOptions {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
