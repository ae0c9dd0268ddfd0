// Package datadog provides a DataDog StatsD metrics publisher.
package datadog

import (
	"fmt"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/vulcanutils/vulcan/internal/config"
	"github.com/vulcanutils/vulcan/internal/metrics"
	"github.com/vulcanutils/vulcan/internal/types"
)

// Publisher implements metrics.Publisher using the DataDog StatsD client.
type Publisher struct {
	client   *statsd.Client
	logger   types.Logger
	baseTags []string
}

// NewPublisher creates a new DataDog publisher from config. When
// DataDog is disabled it returns a no-op publisher instead.
func NewPublisher(cfg *config.DataDogConfig, logger types.Logger) (metrics.Publisher, error) {
	if !cfg.Enabled {
		return NoOpPublisher{}, nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.AgentHost, cfg.Port)

	client, err := statsd.New(addr,
		statsd.WithNamespace(cfg.Prefix+"."),
		statsd.WithTags(cfg.Tags),
	)
	if err != nil {
		return nil, fmt.Errorf("create statsd client: %w", err)
	}

	if logger != nil {
		logger.Info("statsd publisher initialized: %s prefix=%s", addr, cfg.Prefix)
	}

	return &Publisher{
		client:   client,
		logger:   logger,
		baseTags: cfg.Tags,
	}, nil
}

// Gauge records a gauge metric.
func (p *Publisher) Gauge(name string, value float64, tags ...string) {
	if err := p.client.Gauge(name, value, p.mergeTags(tags), 1); err != nil {
		p.debugf("gauge %s: %v", name, err)
	}
}

// Incr increments a counter by 1.
func (p *Publisher) Incr(name string, tags ...string) {
	if err := p.client.Incr(name, p.mergeTags(tags), 1); err != nil {
		p.debugf("incr %s: %v", name, err)
	}
}

// Count increments a counter by a specified amount.
func (p *Publisher) Count(name string, value int64, tags ...string) {
	if err := p.client.Count(name, value, p.mergeTags(tags), 1); err != nil {
		p.debugf("count %s: %v", name, err)
	}
}

// Timing records a timing metric.
func (p *Publisher) Timing(name string, value time.Duration, tags ...string) {
	if err := p.client.Timing(name, value, p.mergeTags(tags), 1); err != nil {
		p.debugf("timing %s: %v", name, err)
	}
}

// Close flushes and shuts down the client.
func (p *Publisher) Close() error {
	return p.client.Close()
}

func (p *Publisher) mergeTags(tags []string) []string {
	if len(p.baseTags) == 0 {
		return tags
	}
	merged := make([]string, 0, len(p.baseTags)+len(tags))
	merged = append(merged, p.baseTags...)
	merged = append(merged, tags...)
	return merged
}

func (p *Publisher) debugf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(format, args...)
	}
}
