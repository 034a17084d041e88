package indexgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting registry metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordLookup is called after each cache lookup. hit reports whether
	// the cache was found.
	RecordLookup(hit bool)

	// RecordRegister is called after each successful cache registration.
	RecordRegister()

	// RecordReset is called after each registry reset. duration is the
	// total time taken, err is nil if successful.
	RecordReset(duration time.Duration, err error)
}

// NoopMetricsCollector is a MetricsCollector that discards all metrics.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLookup(bool)                {}
func (NoopMetricsCollector) RecordRegister()                  {}
func (NoopMetricsCollector) RecordReset(time.Duration, error) {}

// MetricsStats is a snapshot of the counters collected by
// BasicMetricsCollector.
type MetricsStats struct {
	LookupCount   int64
	LookupHits    int64
	RegisterCount int64
	ResetCount    int64
	ResetErrors   int64
}

// BasicMetricsCollector is a simple atomic-counter implementation of
// MetricsCollector, suitable for tests and lightweight monitoring.
type BasicMetricsCollector struct {
	lookupCount   atomic.Int64
	lookupHits    atomic.Int64
	registerCount atomic.Int64
	resetCount    atomic.Int64
	resetErrors   atomic.Int64
}

func (m *BasicMetricsCollector) RecordLookup(hit bool) {
	m.lookupCount.Add(1)
	if hit {
		m.lookupHits.Add(1)
	}
}

func (m *BasicMetricsCollector) RecordRegister() {
	m.registerCount.Add(1)
}

func (m *BasicMetricsCollector) RecordReset(_ time.Duration, err error) {
	m.resetCount.Add(1)
	if err != nil {
		m.resetErrors.Add(1)
	}
}

// GetStats returns a snapshot of the collected counters.
func (m *BasicMetricsCollector) GetStats() MetricsStats {
	return MetricsStats{
		LookupCount:   m.lookupCount.Load(),
		LookupHits:    m.lookupHits.Load(),
		RegisterCount: m.registerCount.Load(),
		ResetCount:    m.resetCount.Load(),
		ResetErrors:   m.resetErrors.Load(),
	}
}
