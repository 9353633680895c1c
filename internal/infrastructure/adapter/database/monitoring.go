package database

import (
	"context"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
)

// QueryMetrics describes one measured database operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Slow         bool
	Failed       bool
	ErrorMessage string
}

// QueryStats are the running totals of a MetricsCollector
type QueryStats struct {
	Total  int64 `json:"total"`
	Slow   int64 `json:"slow"`
	Failed int64 `json:"failed"`
}

// MetricsCollector times commits and other unit-of-work operations and warns
// when one exceeds the configured slow query threshold
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration

	total  atomic.Int64
	slow   atomic.Int64
	failed atomic.Int64
}

// NewMetricsCollector creates a collector. A zero slowThreshold disables slow warnings.
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// SlowThreshold returns the configured threshold
func (c *MetricsCollector) SlowThreshold() time.Duration {
	return c.slowThreshold
}

// MeasureQuery runs fn and records its duration and outcome
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func() (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()
	rowsAffected, err := fn()

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Since(start).Std(),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}
	metrics.Slow = c.slowThreshold > 0 && metrics.Duration > c.slowThreshold

	c.total.Add(1)
	if metrics.Failed {
		metrics.ErrorMessage = err.Error()
		c.failed.Add(1)
	}

	if metrics.Slow {
		c.slow.Add(1)
		c.logger.Warn("Slow database operation", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"threshold_ms":  c.slowThreshold.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        metrics.Failed,
			"trace_id":      coreport.TraceID(ctx),
		})
	}

	return metrics, err
}

// Stats returns a snapshot of the running totals
func (c *MetricsCollector) Stats() QueryStats {
	return QueryStats{
		Total:  c.total.Load(),
		Slow:   c.slow.Load(),
		Failed: c.failed.Load(),
	}
}
