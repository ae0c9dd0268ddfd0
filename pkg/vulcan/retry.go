package vulcan

import (
	"context"
	"time"

	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/logging"
	"github.com/vulcanutils/vulcan/internal/resilience"
	"github.com/vulcanutils/vulcan/internal/types"
)

type retryConfig struct {
	infinite bool
	logger   types.Logger
	metrics  types.MetricsRecorder
}

// RetryOption configures the Retry middleware.
type RetryOption func(*retryConfig)

// RetryInfinite keeps retrying until the call succeeds or the context
// is canceled. The retries count is ignored.
func RetryInfinite() RetryOption {
	return func(c *retryConfig) { c.infinite = true }
}

// RetryLogger routes attempt warnings to a specific logger.
func RetryLogger(l types.Logger) RetryOption {
	return func(c *retryConfig) { c.logger = l }
}

// RetryMetrics records each retry attempt on rec.
func RetryMetrics(rec types.MetricsRecorder) RetryOption {
	return func(c *retryConfig) { c.metrics = rec }
}

// Retry returns middleware that re-runs a failing call with a fixed
// delay between attempts. retries bounds the total number of
// invocations; values below one mean a single attempt.
func Retry[T any](retries int, delay time.Duration, opts ...RetryOption) Middleware[T] {
	cfg := &retryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = logging.Default()
	}
	policy := resilience.NewRetryPolicy(config.RetryConfig{
		Retries:  retries,
		Delay:    delay,
		Infinite: cfg.infinite,
	}).WithLogger(logger)

	return func(next Func[T]) Func[T] {
		return func(ctx context.Context) (T, error) {
			name := "func"
			if info := CallInfoFrom(ctx); info != nil {
				name = info.Name
			}

			attempt := 0
			result, err := policy.ExecuteWithResult(ctx, func(ctx context.Context) (any, error) {
				attempt++
				if attempt > 1 && cfg.metrics != nil {
					cfg.metrics.RecordRetry(name, attempt)
				}
				return next(ctx)
			})
			if err != nil {
				var zero T
				return zero, err
			}
			// Comma-ok: result may be a nil interface value,
			// which a bare assertion panics on.
			v, _ := result.(T)
			return v, nil
		}
	}
}
