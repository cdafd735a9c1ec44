package entity

import "time"

// SystemActor is recorded when the ledger itself changes the blocked flag
const SystemActor = "system"

// BlockEvent is the audit record of a blocked-flag change or an admin override
type BlockEvent struct {
	ID              string
	UserID          string
	Blocked         bool
	PreviousBlocked bool
	Reason          BlockReason
	Actor           string
	Note            string
	BalanceAt       int64
	CreatedAt       time.Time
}

// Changed reports whether the event flipped the flag
func (e *BlockEvent) Changed() bool {
	return e.Blocked != e.PreviousBlocked
}
