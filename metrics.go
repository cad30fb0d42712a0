package bibgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each record-set load or replace.
	// count is the number of records loaded, err is nil if successful.
	RecordLoad(count int, duration time.Duration, err error)

	// RecordFilter is called after each filter pipeline invocation.
	// results is the number of records that passed all stages.
	RecordFilter(results int, duration time.Duration)

	// RecordAggregate is called after each aggregation run.
	RecordAggregate(duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFilter(int, time.Duration)      {}
func (NoopMetricsCollector) RecordAggregate(time.Duration)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount           atomic.Int64
	LoadErrors          atomic.Int64
	LoadedRecords       atomic.Int64
	FilterCount         atomic.Int64
	FilterResults       atomic.Int64
	FilterTotalNanos    atomic.Int64
	AggregateCount      atomic.Int64
	AggregateTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(count int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadedRecords.Add(int64(count))
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(results int, duration time.Duration) {
	b.FilterCount.Add(1)
	b.FilterResults.Add(int64(results))
	b.FilterTotalNanos.Add(duration.Nanoseconds())
}

// RecordAggregate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAggregate(duration time.Duration) {
	b.AggregateCount.Add(1)
	b.AggregateTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:         b.LoadCount.Load(),
		LoadErrors:        b.LoadErrors.Load(),
		LoadedRecords:     b.LoadedRecords.Load(),
		FilterCount:       b.FilterCount.Load(),
		FilterResults:     b.FilterResults.Load(),
		FilterAvgNanos:    b.filterAvgNanos(),
		AggregateCount:    b.AggregateCount.Load(),
		AggregateAvgNanos: b.aggregateAvgNanos(),
	}
}

func (b *BasicMetricsCollector) filterAvgNanos() int64 {
	count := b.FilterCount.Load()
	if count == 0 {
		return 0
	}
	return b.FilterTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) aggregateAvgNanos() int64 {
	count := b.AggregateCount.Load()
	if count == 0 {
		return 0
	}
	return b.AggregateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount         int64
	LoadErrors        int64
	LoadedRecords     int64
	FilterCount       int64
	FilterResults     int64
	FilterAvgNanos    int64
	AggregateCount    int64
	AggregateAvgNanos int64
}
