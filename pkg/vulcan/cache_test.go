package vulcan

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	c, err := NewCacheFromConfig(TestCacheConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCacheSetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	in := user{ID: 1, Name: "ada"}
	require.NoError(t, c.Set(ctx, "user:1", in))

	var out user
	require.NoError(t, c.Get(ctx, "user:1", &out))
	assert.Equal(t, in, out)
}

func TestCacheMiss(t *testing.T) {
	c := newTestCache(t)

	var out user
	err := c.Get(context.Background(), "absent", &out)
	assert.True(t, IsCacheMiss(err), "expected cache miss, got %v", err)
}

func TestCacheDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v"))
	require.NoError(t, c.Delete(ctx, "k"))

	var out string
	assert.True(t, IsCacheMiss(c.Get(ctx, "k", &out)))

	assert.NoError(t, c.Delete(ctx, "never-existed"))
}

func TestCacheClear(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b"} {
		require.NoError(t, c.Set(ctx, k, k))
	}
	require.NoError(t, c.Clear(ctx))

	var out string
	assert.True(t, IsCacheMiss(c.Get(ctx, "a", &out)))
	assert.True(t, IsCacheMiss(c.Get(ctx, "b", &out)))
}

func TestCacheContains(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "present", 1))

	ok, err := c.Contains(ctx, "present")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Contains(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheStoresJSON(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	// Values of any JSON-encodable type round-trip.
	require.NoError(t, c.Set(ctx, "n", 42))
	var n int
	require.NoError(t, c.Get(ctx, "n", &n))
	assert.Equal(t, 42, n)

	require.NoError(t, c.Set(ctx, "list", []string{"a", "b"}))
	var list []string
	require.NoError(t, c.Get(ctx, "list", &list))
	assert.Equal(t, []string{"a", "b"}, list)
}

func TestCacheGetOrCreate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	created := 0
	load := func(ctx context.Context) (any, error) {
		created++
		return user{ID: 7, Name: "lin"}, nil
	}

	var out user
	require.NoError(t, c.GetOrCreate(ctx, "user:7", &out, load))
	assert.Equal(t, 7, out.ID)
	assert.Equal(t, 1, created)

	// Second call is served from the cache.
	var again user
	require.NoError(t, c.GetOrCreate(ctx, "user:7", &again, load))
	assert.Equal(t, 1, created)
}

func TestCacheGetOrCreatePropagatesError(t *testing.T) {
	c := newTestCache(t)

	wantErr := errors.New("load failed")
	var out user
	err := c.GetOrCreate(context.Background(), "user:broken", &out, func(ctx context.Context) (any, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestCacheGetOrCreateCollapsesConcurrentMisses(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var created atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			var out user
			_ = c.GetOrCreate(ctx, "user:shared", &out, func(ctx context.Context) (any, error) {
				created.Add(1)
				return user{ID: 1, Name: "shared"}, nil
			})
		}()
	}
	close(start)
	wg.Wait()

	// Concurrent misses collapse; far fewer creates than callers.
	assert.LessOrEqual(t, created.Load(), int64(2))
}

func TestCacheClosed(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Close())

	var out string
	assert.ErrorIs(t, c.Get(ctx, "k", &out), ErrClosed)
	assert.ErrorIs(t, c.Set(ctx, "k", "v"), ErrClosed)
	assert.ErrorIs(t, c.Delete(ctx, "k"), ErrClosed)
	assert.ErrorIs(t, c.Ping(ctx), ErrClosed)

	// Double close is a no-op.
	assert.NoError(t, c.Close())
}

func TestCacheBackend(t *testing.T) {
	c := newTestCache(t)
	assert.Equal(t, "memory", c.Backend())
}

func TestCacheMetricsDisabledByDefault(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1))
	assert.Equal(t, MetricsSnapshot{}, c.Metrics())
}

func TestCacheInvalidConfig(t *testing.T) {
	cfg := TestCacheConfig()
	cfg.Cache.Backend = "tape"

	_, err := NewCacheFromConfig(cfg)
	require.Error(t, err)
}
