package metrics

import (
	"time"

	"github.com/vulcanutils/vulcan/internal/types"
)

// NoOpRecorder is a MetricsRecorder that does nothing.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a new no-op recorder.
func NewNoOpRecorder() *NoOpRecorder {
	return &NoOpRecorder{}
}

func (NoOpRecorder) RecordCall(name string, latency time.Duration)                   {}
func (NoOpRecorder) RecordCallError(name string, err error)                          {}
func (NoOpRecorder) RecordRetry(name string, attempt int)                            {}
func (NoOpRecorder) RecordRateLimited(name string)                                   {}
func (NoOpRecorder) RecordSkip(name string, variable string)                         {}
func (NoOpRecorder) RecordHit(backend string, key string, latency time.Duration)     {}
func (NoOpRecorder) RecordMiss(backend string, key string, latency time.Duration)    {}
func (NoOpRecorder) RecordSet(backend string, key string, size int, d time.Duration) {}
func (NoOpRecorder) RecordDelete(backend string, key string, latency time.Duration)  {}
func (NoOpRecorder) RecordError(backend string, operation string, err error)         {}

var _ types.MetricsRecorder = NoOpRecorder{}
var _ types.MetricsRecorder = (*Tracker)(nil)
