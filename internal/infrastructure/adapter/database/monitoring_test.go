package database

import (
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
)

type recordingObserver struct {
	mu      sync.Mutex
	queries []QueryMetrics
	pools   []sql.DBStats
}

func (r *recordingObserver) ObserveQuery(m QueryMetrics) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, m)
}

func (r *recordingObserver) ObservePool(stats sql.DBStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pools = append(r.pools, stats)
}

type fixedStats sql.DBStats

func (f fixedStats) Stats() sql.DBStats { return sql.DBStats(f) }

func TestNewQueryMetrics(t *testing.T) {
	tests := []struct {
		sql   string
		op    string
		table string
	}{
		{`SELECT * FROM "accounts" WHERE user_id = $1`, "SELECT", "accounts"},
		{`INSERT INTO "transactions" ("id") VALUES ($1)`, "INSERT", "transactions"},
		{`UPDATE "outbox_events" SET "status"=$1`, "UPDATE", "outbox_events"},
		{`DELETE FROM account_locks WHERE user_id = ?`, "DELETE", "account_locks"},
		{`SET TRANSACTION ISOLATION LEVEL READ COMMITTED`, "SET", ""},
	}

	for _, tt := range tests {
		m := newQueryMetrics(tt.sql, 1, 10*time.Millisecond, 0, nil)
		assert.Equal(t, tt.op, m.Operation, tt.sql)
		assert.Equal(t, tt.table, m.Table, tt.sql)
		assert.False(t, m.Slow)
	}

	slow := newQueryMetrics("SELECT 1", 0, time.Second, 200*time.Millisecond, errors.New("boom"))
	assert.True(t, slow.Slow)
	assert.True(t, slow.Failed)
}

func TestConnectionPoolMonitor_ExportsStats(t *testing.T) {
	observer := &recordingObserver{}
	source := fixedStats{MaxOpenConnections: 10, InUse: 9, Idle: 1, OpenConnections: 10}

	monitor := NewConnectionPoolMonitor(source, logger.NewNoopLogger(), observer)
	monitor.Start(time.Hour)
	monitor.Stop()
	monitor.Stop()

	metrics := monitor.GetMetrics()
	assert.Equal(t, 9, metrics.InUse)
	assert.Equal(t, 10, metrics.MaxOpenConnections)

	observer.mu.Lock()
	defer observer.mu.Unlock()
	assert.Len(t, observer.pools, 1)
}
