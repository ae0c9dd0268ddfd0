package vulcan

import (
	"time"

	"github.com/vulcanutils/vulcan/internal/types"
)

type (
	// Option configures a single cache operation.
	Option = types.Option
	// CacheOptions is the resolved form of a set of Options.
	CacheOptions = types.CacheOptions
)

// WithTTL sets the expiry for a Set. Zero keeps the cache default.
func WithTTL(ttl time.Duration) Option {
	return func(o *CacheOptions) {
		o.TTL = ttl
	}
}

// WithNoExpiry stores the entry without an expiry.
func WithNoExpiry() Option {
	return func(o *CacheOptions) {
		o.TTL = -1
	}
}
