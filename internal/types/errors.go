package types

import (
	"errors"
	"fmt"
)

var (
	ErrCacheMiss     = errors.New("vulcan: key not found")
	ErrConnection    = errors.New("vulcan: cache backend unreachable")
	ErrRateLimited   = errors.New("vulcan: rate limit exceeded")
	ErrSkipped       = errors.New("vulcan: skipped by environment gate")
	ErrSerialization = errors.New("vulcan: serialization failed")
	ErrClosed        = errors.New("vulcan: cache closed")
)

// CacheError wraps a backend failure with the operation and key that caused it.
type CacheError struct {
	Op      string
	Key     string
	Backend string
	Err     error
}

func (e *CacheError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("cache %s on %s [%s]: %v", e.Op, e.Backend, e.Key, e.Err)
	}
	return fmt.Sprintf("cache %s on %s: %v", e.Op, e.Backend, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

func NewCacheError(op, key, backend string, err error) *CacheError {
	return &CacheError{
		Op:      op,
		Key:     key,
		Backend: backend,
		Err:     err,
	}
}

func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsSkipped reports whether a wrapped function was skipped by an environment
// gate. A skip is an expected outcome, not a failure.
func IsSkipped(err error) bool {
	return errors.Is(err, ErrSkipped)
}

func IsSerialization(err error) bool {
	return errors.Is(err, ErrSerialization)
}
