package resilience

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/types"
)

// RateLimiter bounds how many calls may start within a trailing
// window. A call is admitted when fewer than limit calls started in
// the last interval; otherwise it is rejected immediately with
// types.ErrRateLimited. A zero or negative limit disables the limiter.
type RateLimiter struct {
	limit    int
	interval time.Duration

	mu    sync.Mutex
	calls []time.Time

	totalAllowed  atomic.Int64
	totalRejected atomic.Int64
}

// NewRateLimiter creates a new rate limiter with the given configuration.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		limit:    cfg.Limit,
		interval: cfg.Interval,
	}

	if rl.interval <= 0 {
		rl.interval = time.Second
	}

	return rl
}

// Allow reports whether a call may start now, recording it if so.
func (rl *RateLimiter) Allow() bool {
	if rl.limit <= 0 {
		rl.totalAllowed.Add(1)
		return true
	}

	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune(now)
	if len(rl.calls) >= rl.limit {
		rl.totalRejected.Add(1)
		return false
	}

	rl.calls = append(rl.calls, now)
	rl.totalAllowed.Add(1)
	return true
}

// prune drops call timestamps that have left the trailing window.
// Caller must hold mu.
func (rl *RateLimiter) prune(now time.Time) {
	cutoff := now.Add(-rl.interval)
	i := 0
	for i < len(rl.calls) && !rl.calls[i].After(cutoff) {
		i++
	}
	if i > 0 {
		rl.calls = rl.calls[i:]
	}
}

// RetryAfter reports how long until the oldest in-window call expires.
// Zero means a call would be admitted right away.
func (rl *RateLimiter) RetryAfter() time.Duration {
	if rl.limit <= 0 {
		return 0
	}

	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune(now)
	if len(rl.calls) < rl.limit {
		return 0
	}
	return rl.calls[0].Add(rl.interval).Sub(now)
}

// Execute runs an operation if the limiter admits it.
func (rl *RateLimiter) Execute(fn func() error) error {
	if !rl.Allow() {
		return types.ErrRateLimited
	}
	return fn()
}

// ExecuteCtx runs an operation with context if the limiter admits it.
func (rl *RateLimiter) ExecuteCtx(ctx context.Context, fn func(context.Context) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	if !rl.Allow() {
		return types.ErrRateLimited
	}
	return fn(ctx)
}

// ExecuteWithResult runs an operation that returns a result if the
// limiter admits it.
func (rl *RateLimiter) ExecuteWithResult(ctx context.Context, fn func(context.Context) (any, error)) (any, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if !rl.Allow() {
		return nil, types.ErrRateLimited
	}
	return fn(ctx)
}

// RateLimitStats holds cumulative admission statistics.
type RateLimitStats struct {
	TotalAllowed  int64 `json:"total_allowed"`
	TotalRejected int64 `json:"total_rejected"`
	InWindow      int   `json:"in_window"`
}

// Stats returns current admission statistics.
func (rl *RateLimiter) Stats() RateLimitStats {
	rl.mu.Lock()
	rl.prune(time.Now())
	inWindow := len(rl.calls)
	rl.mu.Unlock()

	return RateLimitStats{
		TotalAllowed:  rl.totalAllowed.Load(),
		TotalRejected: rl.totalRejected.Load(),
		InWindow:      inWindow,
	}
}
