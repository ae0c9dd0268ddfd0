package types

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestCacheError(t *testing.T) {
	t.Run("formats with key", func(t *testing.T) {
		err := NewCacheError("Get", "user:1", "redis", errors.New("boom"))
		want := "cache Get on redis [user:1]: boom"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("formats without key", func(t *testing.T) {
		err := NewCacheError("Clear", "", "redis", errors.New("boom"))
		want := "cache Clear on redis: boom"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("unwraps to the underlying error", func(t *testing.T) {
		underlying := errors.New("connection reset")
		err := NewCacheError("Set", "k", "redis", underlying)
		if !errors.Is(err, underlying) {
			t.Error("errors.Is should match the wrapped error")
		}
	})

	t.Run("sentinel predicates see through wrapping", func(t *testing.T) {
		err := fmt.Errorf("operation failed: %w", ErrCacheMiss)
		if !IsCacheMiss(err) {
			t.Error("IsCacheMiss should match a wrapped ErrCacheMiss")
		}
		if IsRateLimited(err) {
			t.Error("IsRateLimited should not match ErrCacheMiss")
		}
	})
}

func TestSentinelPredicates(t *testing.T) {
	cases := []struct {
		name string
		pred func(error) bool
		err  error
	}{
		{"cache miss", IsCacheMiss, ErrCacheMiss},
		{"rate limited", IsRateLimited, ErrRateLimited},
		{"skipped", IsSkipped, ErrSkipped},
		{"serialization", IsSerialization, ErrSerialization},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.pred(tc.err) {
				t.Errorf("predicate should match its sentinel")
			}
			if tc.pred(errors.New("other")) {
				t.Errorf("predicate should not match unrelated errors")
			}
			if tc.pred(nil) {
				t.Errorf("predicate should not match nil")
			}
		})
	}
}

func TestApplyOptions(t *testing.T) {
	t.Run("defaults are zero TTL", func(t *testing.T) {
		opts := ApplyOptions()
		if opts.TTL != 0 {
			t.Errorf("TTL = %v, want 0", opts.TTL)
		}
	})

	t.Run("options are applied in order", func(t *testing.T) {
		opts := ApplyOptions(
			func(o *CacheOptions) { o.TTL = time.Minute },
			func(o *CacheOptions) { o.TTL = time.Hour },
		)
		if opts.TTL != time.Hour {
			t.Errorf("TTL = %v, want 1h", opts.TTL)
		}
	})
}

func TestSecretString(t *testing.T) {
	t.Run("redacts in string form", func(t *testing.T) {
		s := NewSecretString("hunter2")
		if s.String() != "[REDACTED]" {
			t.Errorf("String() = %q, want [REDACTED]", s.String())
		}
		if s.Value() != "hunter2" {
			t.Errorf("Value() = %q, want hunter2", s.Value())
		}
	})

	t.Run("empty secret stays empty", func(t *testing.T) {
		s := NewSecretString("")
		if s.String() != "" {
			t.Errorf("String() = %q, want empty", s.String())
		}
		if !s.IsEmpty() {
			t.Error("IsEmpty() = false, want true")
		}
	})
}
