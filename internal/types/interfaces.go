// Package types provides shared types for the vulcan utility library.
// This package breaks import cycles between pkg/vulcan and the internal
// packages.
package types

import (
	"context"
	"time"
)

// Store is a byte-level key/value cache backend.
type Store interface {
	Name() string
	IsAvailable() bool
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, opts *CacheOptions) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Contains(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

type Serializer interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, dest any) error
}

// Logger is the leveled logging surface used throughout the library.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warning(msg string, args ...any)
	Error(msg string, args ...any)
	Critical(msg string, args ...any)
}

// MetricsRecorder receives events from the wrappers and cache stores.
type MetricsRecorder interface {
	RecordCall(name string, latency time.Duration)
	RecordCallError(name string, err error)
	RecordRetry(name string, attempt int)
	RecordRateLimited(name string)
	RecordSkip(name string, variable string)
	RecordHit(backend string, key string, latency time.Duration)
	RecordMiss(backend string, key string, latency time.Duration)
	RecordSet(backend string, key string, size int, latency time.Duration)
	RecordDelete(backend string, key string, latency time.Duration)
	RecordError(backend string, operation string, err error)
}
