package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/database"
)

func TestCollector_LedgerMetrics(t *testing.T) {
	c := NewCollector()

	c.ObserveOperation("debit", coreport.OutcomeSuccess, 3*time.Millisecond)
	c.ObserveOperation("debit", coreport.OutcomeSuccess, 4*time.Millisecond)
	c.ObserveOperation("debit", "insufficient_balance", time.Millisecond)
	c.ObserveBlockTransition(true, "debt")
	c.ObserveOutboxPublish("sent", 5)
	c.ObserveOutboxPublish("retry", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.operationsTotal.WithLabelValues("debit", coreport.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operationsTotal.WithLabelValues("debit", "insufficient_balance")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.blockTransitions.WithLabelValues("true", "debt")))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.outboxPublished.WithLabelValues("sent")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.outboxPublished))
}

func TestCollector_DatabaseMetrics(t *testing.T) {
	c := NewCollector()

	c.ObserveQuery(database.QueryMetrics{Operation: "SELECT", Table: "accounts", Duration: time.Millisecond})
	c.ObserveQuery(database.QueryMetrics{Operation: "UPDATE", Table: "accounts", Duration: time.Second, Slow: true})
	c.ObservePool(sql.DBStats{OpenConnections: 4, InUse: 3, Idle: 1, WaitCount: 9})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.dbSlowQueries))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.dbPoolInUse))
	assert.Equal(t, 9.0, testutil.ToFloat64(c.dbPoolWaitCount))
	assert.Equal(t, 2, testutil.CollectAndCount(c.dbQueryDuration))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.ObserveHTTP(http.MethodGet, "/api/v1/me/balance", http.StatusOK, 2*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ledger_http_requests_total{method="GET",route="/api/v1/me/balance",status="200"} 1`)
}
