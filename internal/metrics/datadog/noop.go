package datadog

import (
	"time"

	"github.com/vulcanutils/vulcan/internal/metrics"
)

// NoOpPublisher is a Publisher that does nothing. Used when DataDog
// is disabled.
type NoOpPublisher struct{}

func (NoOpPublisher) Gauge(name string, value float64, tags ...string)        {}
func (NoOpPublisher) Incr(name string, tags ...string)                        {}
func (NoOpPublisher) Count(name string, value int64, tags ...string)          {}
func (NoOpPublisher) Timing(name string, value time.Duration, tags ...string) {}
func (NoOpPublisher) Close() error                                            { return nil }

var _ metrics.Publisher = NoOpPublisher{}
