package cache

import (
	"context"
	"testing"
	"time"

	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/types"
)

func newTestMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()

	cfg := config.MemoryConfig{
		MaxSizeMB:       8,
		Shards:          16,
		LifeWindow:      time.Minute,
		CleanupInterval: 0,
	}
	s, err := NewMemoryStore(cfg, nil)
	if err != nil {
		t.Fatalf("NewMemoryStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMemoryStoreSetGet(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "k1", []byte(`"v1"`), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := s.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != `"v1"` {
		t.Errorf("Get = %s, want %q", data, `"v1"`)
	}
}

func TestMemoryStoreMiss(t *testing.T) {
	s := newTestMemoryStore(t)

	_, err := s.Get(context.Background(), "absent")
	if !types.IsCacheMiss(err) {
		t.Errorf("expected cache miss, got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "k1", []byte("x"), nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "k1"); !types.IsCacheMiss(err) {
		t.Errorf("expected miss after delete, got %v", err)
	}

	// Missing keys delete cleanly.
	if err := s.Delete(ctx, "never-existed"); err != nil {
		t.Errorf("Delete of absent key: %v", err)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		if err := s.Set(ctx, k, []byte(k), nil); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", s.Len())
	}
}

func TestMemoryStoreContains(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	_ = s.Set(ctx, "present", []byte("1"), nil)

	ok, err := s.Contains(ctx, "present")
	if err != nil || !ok {
		t.Errorf("Contains(present) = %v, %v; want true, nil", ok, err)
	}
	ok, err = s.Contains(ctx, "absent")
	if err != nil || ok {
		t.Errorf("Contains(absent) = %v, %v; want false, nil", ok, err)
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if s.IsAvailable() {
		t.Error("closed store should not report available")
	}
	if _, err := s.Get(ctx, "k"); err != types.ErrClosed {
		t.Errorf("Get after close = %v, want ErrClosed", err)
	}
	if err := s.Set(ctx, "k", nil, nil); err != types.ErrClosed {
		t.Errorf("Set after close = %v, want ErrClosed", err)
	}

	// Double close is a no-op.
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestMemoryStoreStats(t *testing.T) {
	s := newTestMemoryStore(t)
	ctx := context.Background()

	_ = s.Set(ctx, "k", []byte("v"), nil)
	_, _ = s.Get(ctx, "k")
	_, _ = s.Get(ctx, "missing")

	stats := s.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Sets != 1 {
		t.Errorf("unexpected stats: %s", stats)
	}
}

func TestNewStoreSelectsBackend(t *testing.T) {
	cfg := config.ForTesting()

	s, err := NewStore(cfg, nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer s.Close()

	if s.Name() != "memory" {
		t.Errorf("backend = %s, want memory", s.Name())
	}

	bad := config.ForTesting()
	bad.Cache.Backend = "tape"
	if _, err := NewStore(bad, nil); err == nil {
		t.Error("unknown backend should fail")
	}
}
