package persistence

import (
	"context"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
)

// BlockEventRepository stores the audit trail of blocked-flag changes
type BlockEventRepository interface {
	Create(ctx context.Context, event *entity.BlockEvent) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.BlockEvent, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
