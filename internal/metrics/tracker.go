// Package metrics tracks wrapper and cache activity and optionally
// forwards it to a StatsD publisher.
package metrics

import (
	"sync/atomic"
	"time"
)

// Publisher sends metrics to an external sink.
type Publisher interface {
	Gauge(name string, value float64, tags ...string)
	Incr(name string, tags ...string)
	Count(name string, value int64, tags ...string)
	Timing(name string, value time.Duration, tags ...string)
	Close() error
}

// Snapshot is a point-in-time copy of the tracked counters.
type Snapshot struct {
	Calls       int64 `json:"calls"`
	CallErrors  int64 `json:"call_errors"`
	Retries     int64 `json:"retries"`
	RateLimited int64 `json:"rate_limited"`
	Skips       int64 `json:"skips"`
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	Sets        int64 `json:"sets"`
	Deletes     int64 `json:"deletes"`
	Errors      int64 `json:"errors"`
}

// Tracker counts events in memory and forwards them to a Publisher
// when one is attached. A nil *Tracker is safe to use and does nothing.
type Tracker struct {
	publisher Publisher

	calls       atomic.Int64
	callErrors  atomic.Int64
	retries     atomic.Int64
	rateLimited atomic.Int64
	skips       atomic.Int64
	hits        atomic.Int64
	misses      atomic.Int64
	sets        atomic.Int64
	deletes     atomic.Int64
	errors      atomic.Int64
}

// NewTracker creates a tracker. publisher may be nil for in-memory
// counting only.
func NewTracker(publisher Publisher) *Tracker {
	return &Tracker{publisher: publisher}
}

// RecordCall records a completed wrapped call.
func (t *Tracker) RecordCall(name string, latency time.Duration) {
	if t == nil {
		return
	}
	t.calls.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("wrapper.calls", Tag("function", name))
		t.publisher.Timing("wrapper.latency", latency, Tag("function", name))
	}
}

// RecordCallError records a wrapped call that returned an error.
func (t *Tracker) RecordCallError(name string, err error) {
	if t == nil {
		return
	}
	t.callErrors.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("wrapper.errors", Tag("function", name))
	}
}

// RecordRetry records one retry attempt.
func (t *Tracker) RecordRetry(name string, attempt int) {
	if t == nil {
		return
	}
	t.retries.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("wrapper.retries", Tag("function", name))
	}
}

// RecordRateLimited records a rejected call.
func (t *Tracker) RecordRateLimited(name string) {
	if t == nil {
		return
	}
	t.rateLimited.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("wrapper.rate_limited", Tag("function", name))
	}
}

// RecordSkip records a call skipped by an environment gate.
func (t *Tracker) RecordSkip(name string, variable string) {
	if t == nil {
		return
	}
	t.skips.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("wrapper.skips", Tag("function", name), Tag("variable", variable))
	}
}

// RecordHit records a cache hit.
func (t *Tracker) RecordHit(backend string, key string, latency time.Duration) {
	if t == nil {
		return
	}
	t.hits.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("cache.hits", BackendTag(backend))
		t.publisher.Timing("cache.get_latency", latency, BackendTag(backend), StatusTag("hit"))
	}
}

// RecordMiss records a cache miss.
func (t *Tracker) RecordMiss(backend string, key string, latency time.Duration) {
	if t == nil {
		return
	}
	t.misses.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("cache.misses", BackendTag(backend))
		t.publisher.Timing("cache.get_latency", latency, BackendTag(backend), StatusTag("miss"))
	}
}

// RecordSet records a cache write.
func (t *Tracker) RecordSet(backend string, key string, size int, latency time.Duration) {
	if t == nil {
		return
	}
	t.sets.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("cache.sets", BackendTag(backend))
		t.publisher.Count("cache.set_bytes", int64(size), BackendTag(backend))
	}
}

// RecordDelete records a cache delete.
func (t *Tracker) RecordDelete(backend string, key string, latency time.Duration) {
	if t == nil {
		return
	}
	t.deletes.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("cache.deletes", BackendTag(backend))
	}
}

// RecordError records a cache operation failure.
func (t *Tracker) RecordError(backend string, operation string, err error) {
	if t == nil {
		return
	}
	t.errors.Add(1)
	if t.publisher != nil {
		t.publisher.Incr("cache.errors", BackendTag(backend), OperationTag(operation))
	}
}

// Snapshot returns a point-in-time copy of the counters.
func (t *Tracker) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:       t.calls.Load(),
		CallErrors:  t.callErrors.Load(),
		Retries:     t.retries.Load(),
		RateLimited: t.rateLimited.Load(),
		Skips:       t.skips.Load(),
		Hits:        t.hits.Load(),
		Misses:      t.misses.Load(),
		Sets:        t.sets.Load(),
		Deletes:     t.deletes.Load(),
		Errors:      t.errors.Load(),
	}
}

// Reset zeroes all counters.
func (t *Tracker) Reset() {
	if t == nil {
		return
	}
	t.calls.Store(0)
	t.callErrors.Store(0)
	t.retries.Store(0)
	t.rateLimited.Store(0)
	t.skips.Store(0)
	t.hits.Store(0)
	t.misses.Store(0)
	t.sets.Store(0)
	t.deletes.Store(0)
	t.errors.Store(0)
}
