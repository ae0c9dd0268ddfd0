package vulcan

import (
	"context"
	"fmt"
	"time"

	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/resilience"
	"github.com/vulcanutils/vulcan/internal/types"
)

// RateLimit returns middleware that admits at most limit calls within
// any trailing interval. Calls beyond the limit fail immediately with
// ErrRateLimited; the wrapped function does not run. Each middleware
// value owns its own window, so separately wrapped functions do not
// share a budget.
func RateLimit[T any](limit int, interval time.Duration) Middleware[T] {
	limiter := resilience.NewRateLimiter(config.RateLimitConfig{
		Limit:    limit,
		Interval: interval,
	})

	return func(next Func[T]) Func[T] {
		return func(ctx context.Context) (T, error) {
			select {
			case <-ctx.Done():
				var zero T
				return zero, ctx.Err()
			default:
			}

			if !limiter.Allow() {
				var zero T
				name := "func"
				if info := CallInfoFrom(ctx); info != nil {
					name = info.Name
				}
				return zero, fmt.Errorf("%w: %s (%d calls per %s, retry in %s)",
					types.ErrRateLimited, name, limit, interval, limiter.RetryAfter().Round(time.Millisecond))
			}
			return next(ctx)
		}
	}
}
