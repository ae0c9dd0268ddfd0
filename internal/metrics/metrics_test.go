package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type recordedMetric struct {
	kind string
	name string
	tags []string
}

type capturePublisher struct {
	mu      sync.Mutex
	metrics []recordedMetric
}

func (p *capturePublisher) record(kind, name string, tags []string) {
	p.mu.Lock()
	p.metrics = append(p.metrics, recordedMetric{kind: kind, name: name, tags: tags})
	p.mu.Unlock()
}

func (p *capturePublisher) Gauge(name string, value float64, tags ...string) {
	p.record("gauge", name, tags)
}
func (p *capturePublisher) Incr(name string, tags ...string) { p.record("incr", name, tags) }
func (p *capturePublisher) Count(name string, value int64, tags ...string) {
	p.record("count", name, tags)
}
func (p *capturePublisher) Timing(name string, value time.Duration, tags ...string) {
	p.record("timing", name, tags)
}
func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.metrics))
	for i, m := range p.metrics {
		out[i] = m.name
	}
	return out
}

func TestTrackerCounts(t *testing.T) {
	tr := NewTracker(nil)

	tr.RecordCall("fn", time.Millisecond)
	tr.RecordCall("fn", time.Millisecond)
	tr.RecordCallError("fn", errors.New("boom"))
	tr.RecordRetry("fn", 1)
	tr.RecordRateLimited("fn")
	tr.RecordSkip("fn", "ENV")
	tr.RecordHit("memory", "k", time.Microsecond)
	tr.RecordMiss("memory", "k", time.Microsecond)
	tr.RecordSet("memory", "k", 10, time.Microsecond)
	tr.RecordDelete("memory", "k", time.Microsecond)
	tr.RecordError("memory", "get", errors.New("boom"))

	snap := tr.Snapshot()
	if snap.Calls != 2 || snap.CallErrors != 1 || snap.Retries != 1 ||
		snap.RateLimited != 1 || snap.Skips != 1 ||
		snap.Hits != 1 || snap.Misses != 1 || snap.Sets != 1 ||
		snap.Deletes != 1 || snap.Errors != 1 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	tr.Reset()
	if tr.Snapshot() != (Snapshot{}) {
		t.Error("Reset should zero all counters")
	}
}

func TestTrackerForwardsToPublisher(t *testing.T) {
	pub := &capturePublisher{}
	tr := NewTracker(pub)

	tr.RecordCall("fn", time.Millisecond)
	tr.RecordHit("redis", "k", time.Microsecond)

	names := pub.names()
	want := map[string]bool{}
	for _, n := range names {
		want[n] = true
	}
	for _, expected := range []string{"wrapper.calls", "wrapper.latency", "cache.hits", "cache.get_latency"} {
		if !want[expected] {
			t.Errorf("publisher did not receive %s; got %v", expected, names)
		}
	}
}

func TestNilTrackerIsSafe(t *testing.T) {
	var tr *Tracker

	tr.RecordCall("fn", 0)
	tr.RecordHit("memory", "k", 0)
	tr.Reset()

	if tr.Snapshot() != (Snapshot{}) {
		t.Error("nil tracker snapshot should be zero")
	}
}

func TestTags(t *testing.T) {
	if Tag("a", "b") != "a:b" {
		t.Errorf("Tag = %s", Tag("a", "b"))
	}
	if BackendTag("redis") != "backend:redis" {
		t.Errorf("BackendTag = %s", BackendTag("redis"))
	}
	if OperationTag("get") != "operation:get" {
		t.Errorf("OperationTag = %s", OperationTag("get"))
	}
	if StatusTag("hit") != "status:hit" {
		t.Errorf("StatusTag = %s", StatusTag("hit"))
	}
}
