package resilience

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/types"
)

// RetryPolicy re-runs a failing operation with a fixed delay between
// attempts. Retries bounds the TOTAL number of invocations; when
// Infinite is set the policy keeps going until the operation succeeds
// or the context is canceled.
type RetryPolicy struct {
	retries  int
	delay    time.Duration
	infinite bool
	logger   types.Logger

	totalRetries atomic.Int64
	totalSuccess atomic.Int64
	totalFailure atomic.Int64
}

// NewRetryPolicy creates a new retry policy with the given configuration.
func NewRetryPolicy(cfg config.RetryConfig) *RetryPolicy {
	rp := &RetryPolicy{
		retries:  cfg.Retries,
		delay:    cfg.Delay,
		infinite: cfg.Infinite,
	}

	if rp.retries <= 0 {
		rp.retries = 1
	}
	if rp.delay < 0 {
		rp.delay = 0
	}

	return rp
}

// WithLogger attaches a logger; attempts and exhaustion are then
// reported at WARNING and ERROR level respectively.
func (rp *RetryPolicy) WithLogger(l types.Logger) *RetryPolicy {
	rp.logger = l
	return rp
}

// Execute runs an operation with retry logic.
func (rp *RetryPolicy) Execute(fn func() error) error {
	return rp.ExecuteCtx(context.Background(), func(ctx context.Context) error {
		return fn()
	})
}

// ExecuteCtx runs an operation with retry logic and context.
func (rp *RetryPolicy) ExecuteCtx(ctx context.Context, fn func(context.Context) error) error {
	_, err := rp.ExecuteWithResult(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	})
	return err
}

// ExecuteWithResult runs an operation that returns a result with retry logic.
func (rp *RetryPolicy) ExecuteWithResult(ctx context.Context, fn func(context.Context) (any, error)) (any, error) {
	var lastErr error

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		result, err := fn(ctx)
		if err == nil {
			rp.totalSuccess.Add(1)
			return result, nil
		}

		lastErr = err
		if rp.logger != nil {
			rp.logger.Warning("attempt %d failed: %v", attempt, err)
		}

		if !rp.infinite && attempt >= rp.retries {
			break
		}

		rp.totalRetries.Add(1)

		if rp.delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(rp.delay):
			}
		}
	}

	rp.totalFailure.Add(1)
	if rp.logger != nil {
		rp.logger.Error("all %d attempts failed: %v", rp.retries, lastErr)
	}
	return nil, lastErr
}

// RetryStats holds cumulative retry statistics.
type RetryStats struct {
	TotalRetries int64 `json:"total_retries"`
	TotalSuccess int64 `json:"total_success"`
	TotalFailure int64 `json:"total_failure"`
}

// Stats returns current retry statistics.
func (rp *RetryPolicy) Stats() RetryStats {
	return RetryStats{
		TotalRetries: rp.totalRetries.Load(),
		TotalSuccess: rp.totalSuccess.Load(),
		TotalFailure: rp.totalFailure.Load(),
	}
}
