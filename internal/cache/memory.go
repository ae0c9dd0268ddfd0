// Package cache provides the storage backends behind the cache
// facade: a Redis-backed store and an in-process store built on
// BigCache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/types"
)

// StoreStats holds cumulative operation counters for a store.
type StoreStats struct {
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
	Sets    int64 `json:"sets"`
	Deletes int64 `json:"deletes"`
}

// MemoryStore implements types.Store on top of BigCache. Expiry is
// governed by the configured life window for all entries; per-entry
// TTL options are not supported by this backend and are ignored.
type MemoryStore struct {
	cache  *bigcache.BigCache
	config config.MemoryConfig
	logger types.Logger

	closed atomic.Bool

	hits    atomic.Int64
	misses  atomic.Int64
	sets    atomic.Int64
	deletes atomic.Int64
}

// NewMemoryStore creates an in-process store with the given configuration.
func NewMemoryStore(cfg config.MemoryConfig, logger types.Logger) (*MemoryStore, error) {
	lifeWindow := cfg.LifeWindow
	if lifeWindow <= 0 {
		lifeWindow = 10 * time.Minute
	}
	shards := cfg.Shards
	if shards <= 0 {
		shards = 256
	}

	bcConfig := bigcache.Config{
		Shards:             shards,
		LifeWindow:         lifeWindow,
		CleanWindow:        cfg.CleanupInterval,
		MaxEntriesInWindow: 1000 * 10 * 60,
		MaxEntrySize:       500,
		HardMaxCacheSize:   cfg.MaxSizeMB,
		Verbose:            false,
	}

	bc, err := bigcache.New(context.Background(), bcConfig)
	if err != nil {
		return nil, types.NewCacheError("init", "", "memory", err)
	}

	return &MemoryStore{
		cache:  bc,
		config: cfg,
		logger: logger,
	}, nil
}

// Name returns the backend name.
func (s *MemoryStore) Name() string {
	return "memory"
}

// IsAvailable reports whether the store can serve requests.
func (s *MemoryStore) IsAvailable() bool {
	return !s.closed.Load()
}

// Get retrieves the raw value stored under key. A missing key returns
// types.ErrCacheMiss.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, types.ErrClosed
	}

	data, err := s.cache.Get(key)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			s.misses.Add(1)
			return nil, types.NewCacheError("get", key, "memory", types.ErrCacheMiss)
		}
		return nil, types.NewCacheError("get", key, "memory", err)
	}

	s.hits.Add(1)
	return data, nil
}

// Set stores value under key. Per-entry TTL options are ignored; the
// configured life window applies.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, opts *types.CacheOptions) error {
	if s.closed.Load() {
		return types.ErrClosed
	}

	if err := s.cache.Set(key, value); err != nil {
		return types.NewCacheError("set", key, "memory", err)
	}

	s.sets.Add(1)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if s.closed.Load() {
		return types.ErrClosed
	}

	if err := s.cache.Delete(key); err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return nil
		}
		return types.NewCacheError("delete", key, "memory", err)
	}

	s.deletes.Add(1)
	return nil
}

// Clear removes every entry.
func (s *MemoryStore) Clear(ctx context.Context) error {
	if s.closed.Load() {
		return types.ErrClosed
	}

	if err := s.cache.Reset(); err != nil {
		return types.NewCacheError("clear", "", "memory", err)
	}
	return nil
}

// Contains reports whether key is present.
func (s *MemoryStore) Contains(ctx context.Context, key string) (bool, error) {
	if s.closed.Load() {
		return false, types.ErrClosed
	}

	_, err := s.cache.Get(key)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return false, nil
		}
		return false, types.NewCacheError("contains", key, "memory", err)
	}
	return true, nil
}

// Ping always succeeds while the store is open.
func (s *MemoryStore) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return types.ErrClosed
	}
	return nil
}

// Close shuts the store down.
func (s *MemoryStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.cache.Close()
}

// Stats returns cumulative operation counters.
func (s *MemoryStore) Stats() StoreStats {
	return StoreStats{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Sets:    s.sets.Load(),
		Deletes: s.deletes.Load(),
	}
}

// Len reports the number of live entries.
func (s *MemoryStore) Len() int {
	if s.closed.Load() {
		return 0
	}
	return s.cache.Len()
}

var _ fmt.Stringer = StoreStats{}

// String renders the counters compactly for log lines.
func (st StoreStats) String() string {
	return fmt.Sprintf("hits=%d misses=%d sets=%d deletes=%d", st.Hits, st.Misses, st.Sets, st.Deletes)
}
