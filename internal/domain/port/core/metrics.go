package core

import "time"

// Operation outcomes reported to LedgerMetrics
const (
	OutcomeSuccess  = "success"
	OutcomeReplayed = "replayed"
)

// LedgerMetrics receives ledger-level measurements.
// The outcome label is either OutcomeSuccess, OutcomeReplayed or an error kind.
type LedgerMetrics interface {
	ObserveOperation(operation, outcome string, duration time.Duration)
	ObserveBlockTransition(blocked bool, reason string)
	ObserveOutboxPublish(outcome string, count int)
}
