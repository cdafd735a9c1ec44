package database

import (
	"database/sql"
	"strings"
	"time"
)

// QueryMetrics holds metrics about a database query
type QueryMetrics struct {
	Operation    string
	Table        string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	Slow         bool
}

// MetricsObserver receives database measurements. The prometheus adapter implements it.
type MetricsObserver interface {
	ObserveQuery(m QueryMetrics)
	ObservePool(stats sql.DBStats)
}

type nopObserver struct{}

func (nopObserver) ObserveQuery(QueryMetrics) {}

func (nopObserver) ObservePool(sql.DBStats) {}

// newQueryMetrics derives the operation and table labels from a traced statement
func newQueryMetrics(sqlText string, rows int64, elapsed, slowThreshold time.Duration, err error) QueryMetrics {
	return QueryMetrics{
		Operation:    extractQueryType(sqlText),
		Table:        extractTableName(sqlText),
		Duration:     elapsed,
		RowsAffected: rows,
		Failed:       err != nil,
		Slow:         slowThreshold > 0 && elapsed > slowThreshold,
	}
}

// extractQueryType determines the type of SQL statement
func extractQueryType(sqlText string) string {
	upper := strings.ToUpper(strings.TrimSpace(sqlText))
	for _, kind := range []string{"SELECT", "INSERT", "UPDATE", "DELETE", "BEGIN", "COMMIT", "ROLLBACK", "SET"} {
		if strings.HasPrefix(upper, kind) {
			return kind
		}
	}
	return "OTHER"
}

// extractTableName picks the first table after FROM, INTO or UPDATE.
// Good enough for labels, not a parser.
func extractTableName(sqlText string) string {
	upper := strings.ToUpper(strings.TrimSpace(sqlText))

	var start int
	switch {
	case strings.HasPrefix(upper, "UPDATE "):
		start = len("UPDATE ")
	case strings.Contains(upper, " INTO "):
		start = strings.Index(upper, " INTO ") + len(" INTO ")
	case strings.Contains(upper, " FROM "):
		start = strings.Index(upper, " FROM ") + len(" FROM ")
	default:
		return ""
	}

	rest := strings.TrimSpace(sqlText[start:])
	if end := strings.IndexAny(rest, " (\n\t"); end >= 0 {
		rest = rest[:end]
	}
	return strings.ToLower(strings.Trim(rest, `"`+"`"))
}
