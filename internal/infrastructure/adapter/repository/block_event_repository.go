package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/model"
)

// BlockEventRepository implements persistence.BlockEventRepository using GORM
type BlockEventRepository struct {
	db              *gorm.DB
	errorClassifier *ErrorClassifier
}

// NewBlockEventRepository creates a new BlockEventRepository instance
func NewBlockEventRepository(db *gorm.DB) *BlockEventRepository {
	return &BlockEventRepository{db: db, errorClassifier: NewErrorClassifier()}
}

// Create appends an audit record
func (r *BlockEventRepository) Create(ctx context.Context, event *entity.BlockEvent) error {
	row := model.BlockEvent{
		EventID:         event.ID,
		UserID:          event.UserID,
		Blocked:         event.Blocked,
		PreviousBlocked: event.PreviousBlocked,
		Reason:          string(event.Reason),
		Actor:           event.Actor,
		Note:            event.Note,
		BalanceAt:       event.BalanceAt,
		CreatedAt:       event.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.errorClassifier.Translate("create block event", err)
	}
	return nil
}

// ListByUser returns the audit trail newest first
func (r *BlockEventRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.BlockEvent, error) {
	var rows []model.BlockEvent
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("seq DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Translate("list block events", err)
	}

	events := make([]*entity.BlockEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, &entity.BlockEvent{
			ID:              row.EventID,
			UserID:          row.UserID,
			Blocked:         row.Blocked,
			PreviousBlocked: row.PreviousBlocked,
			Reason:          entity.BlockReason(row.Reason),
			Actor:           row.Actor,
			Note:            row.Note,
			BalanceAt:       row.BalanceAt,
			CreatedAt:       row.CreatedAt,
		})
	}
	return events, nil
}

// CountByUser returns the number of audit records of the user
func (r *BlockEventRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.BlockEvent{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, r.errorClassifier.Translate("count block events", err)
	}
	return count, nil
}
