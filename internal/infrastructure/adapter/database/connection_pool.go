package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
	"gorm.io/gorm"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int
	IdleConnections    int
	MaxOpenConnections int
	InUse              int
	WaitCount          int64
	WaitDuration       time.Duration
	MaxIdleClosed      int64
	MaxLifetimeClosed  int64
}

// ConnectionPoolMonitor monitors the database connection pool
type ConnectionPoolMonitor struct {
	db           *Manager
	logger       coreport.Logger
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *Manager, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins monitoring the connection pool
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	ticker := time.NewTicker(interval)

	// Collect metrics initially
	if err := m.collectMetrics(); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := m.collectMetrics(); err != nil {
					m.logger.Error("Failed to collect connection pool metrics", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				ticker.Stop()
				return
			}
		}
	}()

	return nil
}

// Stop stops the monitoring
func (m *ConnectionPoolMonitor) Stop() {
	close(m.stopChan)
}

// GetMetrics returns the current connection pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}

	return *m.metricsCache
}

// collectMetrics collects current connection pool metrics
func (m *ConnectionPoolMonitor) collectMetrics() error {
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	stats := sqlDB.Stats()

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.metricsCache = &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}

	// Log metrics if too many connections are in use
	threshold := float64(stats.MaxOpenConnections) * 0.8
	if float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}

	return nil
}

// HealthStatus is the result of one database health check
type HealthStatus struct {
	Healthy         bool       `json:"healthy"`
	Driver          string     `json:"driver"`
	LatencyMs       int64      `json:"latencyMs"`
	OpenConnections int        `json:"openConnections"`
	InUse           int        `json:"inUse"`
	Idle            int        `json:"idle"`
	Queries         QueryStats `json:"queries"`
	Error           string     `json:"error,omitempty"`
}

// HealthChecker checks database connection health on demand
type HealthChecker struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	timeout      time.Duration
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *HealthChecker {
	return &HealthChecker{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		timeout:      5 * time.Second,
	}
}

// Check pings the database and snapshots pool stats
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{Driver: h.db.Dialector.Name()}

	sqlDB, err := h.db.DB()
	if err != nil {
		h.logger.Error("Failed to get SQL DB instance during health check", map[string]any{
			"error": err.Error(),
		})
		status.Error = err.Error()
		return status
	}

	ctx, cancel := h.timeProvider.WithTimeout(ctx, coreport.Duration(h.timeout))
	defer cancel()

	start := h.timeProvider.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		h.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
		status.Error = err.Error()
		return status
	}
	status.LatencyMs = h.timeProvider.Since(start).Std().Milliseconds()

	stats := sqlDB.Stats()
	status.Healthy = true
	status.OpenConnections = stats.OpenConnections
	status.InUse = stats.InUse
	status.Idle = stats.Idle

	h.logger.Debug("Database connection pool stats", map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	})
	return status
}
