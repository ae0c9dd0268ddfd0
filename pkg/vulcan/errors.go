package vulcan

import "github.com/vulcanutils/vulcan/internal/types"

// Sentinel errors returned by the cache and the wrappers.
var (
	// ErrCacheMiss is returned by Get when the key is not present.
	ErrCacheMiss = types.ErrCacheMiss
	// ErrConnection is returned when the cache backend is unreachable.
	ErrConnection = types.ErrConnection
	// ErrRateLimited is returned when a rate-limited call is rejected.
	ErrRateLimited = types.ErrRateLimited
	// ErrSkipped is returned when an environment gate prevents a call.
	ErrSkipped = types.ErrSkipped
	// ErrSerialization is returned when a value cannot be encoded or
	// decoded.
	ErrSerialization = types.ErrSerialization
	// ErrClosed is returned by operations on a closed cache.
	ErrClosed = types.ErrClosed
)

// CacheError describes a failed cache operation; it unwraps to one of
// the sentinel errors.
type CacheError = types.CacheError

// IsCacheMiss reports whether err means the key was absent.
func IsCacheMiss(err error) bool { return types.IsCacheMiss(err) }

// IsRateLimited reports whether err means the call was rejected by a
// rate limiter.
func IsRateLimited(err error) bool { return types.IsRateLimited(err) }

// IsSkipped reports whether err means an environment gate skipped the
// call. A skip is not a failure.
func IsSkipped(err error) bool { return types.IsSkipped(err) }

// IsSerialization reports whether err was caused by JSON encoding or
// decoding.
func IsSerialization(err error) bool { return types.IsSerialization(err) }
