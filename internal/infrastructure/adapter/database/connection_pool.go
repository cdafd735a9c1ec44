package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
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

// statsSource is satisfied by *sql.DB
type statsSource interface {
	Stats() sql.DBStats
}

// ConnectionPoolMonitor periodically samples the pool, exports it and warns near exhaustion
type ConnectionPoolMonitor struct {
	source   statsSource
	logger   coreport.Logger
	observer MetricsObserver

	mutex        sync.RWMutex
	metricsCache *ConnectionPoolMetrics
	stopOnce     sync.Once
	stopChan     chan struct{}
	done         chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(source statsSource, logger coreport.Logger, observer MetricsObserver) *ConnectionPoolMonitor {
	if observer == nil {
		observer = nopObserver{}
	}
	return &ConnectionPoolMonitor{
		source:   source,
		logger:   logger,
		observer: observer,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start samples once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.collectMetrics()

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.collectMetrics()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring and waits for the sampler to exit
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
		<-m.done
	})
}

// GetMetrics returns the last sampled connection pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metricsCache
}

func (m *ConnectionPoolMonitor) collectMetrics() {
	stats := m.source.Stats()
	m.observer.ObservePool(stats)

	m.mutex.Lock()
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
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
