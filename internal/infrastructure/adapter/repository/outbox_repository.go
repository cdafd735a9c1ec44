package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/model"
)

// OutboxRepository implements persistence.OutboxRepository using GORM
type OutboxRepository struct {
	db              *gorm.DB
	errorClassifier *ErrorClassifier
}

// NewOutboxRepository creates a new OutboxRepository instance
func NewOutboxRepository(db *gorm.DB) *OutboxRepository {
	return &OutboxRepository{db: db, errorClassifier: NewErrorClassifier()}
}

// Create stores a pending event
func (r *OutboxRepository) Create(ctx context.Context, event *entity.OutboxEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return errs.NewPersistenceError("encode outbox payload", err)
	}

	status := event.Status
	if status == "" {
		status = entity.OutboxPending
	}
	row := model.OutboxEvent{
		EventID:     event.ID,
		EventType:   string(event.EventType),
		AggregateID: event.AggregateID,
		Payload:     datatypes.JSON(payload),
		Status:      string(status),
		Attempts:    event.Attempts,
		CreatedAt:   event.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.errorClassifier.Translate("create outbox event", err)
	}
	return nil
}

// FetchPending returns the oldest pending events. On Postgres the rows stay locked
// until the surrounding transaction ends and other relays skip them.
func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]*entity.OutboxEvent, error) {
	var rows []model.OutboxEvent
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", string(entity.OutboxPending)).
		Order("seq ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Translate("fetch pending outbox events", err)
	}

	events := make([]*entity.OutboxEvent, 0, len(rows))
	for i := range rows {
		event := &entity.OutboxEvent{
			ID:          rows[i].EventID,
			EventType:   entity.EventType(rows[i].EventType),
			AggregateID: rows[i].AggregateID,
			Status:      entity.OutboxStatus(rows[i].Status),
			Attempts:    rows[i].Attempts,
			LastError:   rows[i].LastError,
			CreatedAt:   rows[i].CreatedAt,
			SentAt:      rows[i].SentAt,
		}
		if err := json.Unmarshal(rows[i].Payload, &event.Payload); err != nil {
			return nil, errs.NewPersistenceError("decode outbox payload", err)
		}
		events = append(events, event)
	}
	return events, nil
}

// MarkSent records a successful delivery
func (r *OutboxRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	return r.update(ctx, "mark outbox event sent", id, map[string]any{
		"status":   string(entity.OutboxSent),
		"attempts": gorm.Expr("attempts + 1"),
		"sent_at":  sentAt,
	})
}

// MarkAttemptFailed records a failed delivery; terminal events are not picked up again
func (r *OutboxRepository) MarkAttemptFailed(ctx context.Context, id string, lastError string, terminal bool) error {
	status := entity.OutboxPending
	if terminal {
		status = entity.OutboxFailed
	}
	return r.update(ctx, "mark outbox event failed", id, map[string]any{
		"status":     string(status),
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": lastError,
	})
}

func (r *OutboxRepository) update(ctx context.Context, op, id string, values map[string]any) error {
	result := r.db.WithContext(ctx).Model(&model.OutboxEvent{}).Where("event_id = ?", id).Updates(values)
	if result.Error != nil {
		return r.errorClassifier.Translate(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewPersistenceError(op, gorm.ErrRecordNotFound)
	}
	return nil
}
