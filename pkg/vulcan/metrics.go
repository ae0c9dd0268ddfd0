package vulcan

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vulcanutils/vulcan/internal/metrics"
	"github.com/vulcanutils/vulcan/internal/types"
)

// MetricsRecorder receives call and cache events.
type MetricsRecorder = types.MetricsRecorder

// Tracker counts events in memory and optionally forwards them to a
// StatsD publisher.
type Tracker = metrics.Tracker

// MetricsSnapshot is a point-in-time copy of a Tracker's counters.
type MetricsSnapshot = metrics.Snapshot

// NewTracker creates an in-memory metrics tracker.
func NewTracker() *Tracker {
	return metrics.NewTracker(nil)
}

// Metrics returns middleware that records each call's latency and
// outcome on rec. Rate-limited and skipped calls are counted
// separately from failures.
func Metrics[T any](rec types.MetricsRecorder) Middleware[T] {
	return func(next Func[T]) Func[T] {
		return func(ctx context.Context) (T, error) {
			name := "func"
			if info := CallInfoFrom(ctx); info != nil {
				name = info.Name
			}

			start := time.Now()
			result, err := next(ctx)
			rec.RecordCall(name, time.Since(start))

			switch {
			case err == nil:
			case types.IsRateLimited(err):
				rec.RecordRateLimited(name)
			case types.IsSkipped(err):
				rec.RecordSkip(name, skipVariable(err))
			default:
				rec.RecordCallError(name, err)
			}
			return result, err
		}
	}
}

// skipVariable extracts the gating variable name from a skip error.
func skipVariable(err error) string {
	if !errors.Is(err, types.ErrSkipped) {
		return ""
	}
	msg := err.Error()
	i := strings.LastIndex(msg, ": ")
	if i < 0 {
		return ""
	}
	rest := msg[i+2:]
	if j := strings.Index(rest, "="); j > 0 {
		return rest[:j]
	}
	return ""
}
