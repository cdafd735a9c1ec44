package repository

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using GORM.
// Entries are only ever inserted.
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create appends a ledger entry
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	row, err := toTransactionModel(txn)
	if err != nil {
		return errs.NewPersistenceError("encode transaction metadata", err)
	}

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		r.logger.Error("Failed to insert transaction", map[string]any{
			"transaction_id": txn.ID,
			"user_id":        txn.UserID,
			"sequence":       txn.Sequence,
			"error":          err.Error(),
		})
		return r.errorClassifier.Translate("create transaction", err)
	}
	return nil
}

// GetByIdempotencyKey finds the entry written earlier for (userID, key)
func (r *TransactionRepository) GetByIdempotencyKey(ctx context.Context, userID, key string) (*entity.Transaction, error) {
	var row model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, r.errorClassifier.Translate("get transaction by idempotency key", err)
	}
	return toTransactionEntity(&row)
}

// ListByUser returns entries newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sequence DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Translate("list transactions", err)
	}

	items := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		txn, err := toTransactionEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, txn)
	}
	return items, nil
}

// CountByUser returns the number of entries of the user
func (r *TransactionRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, r.errorClassifier.Translate("count transactions", err)
	}
	return count, nil
}

// SumByUser folds every signed amount of the user
func (r *TransactionRepository) SumByUser(ctx context.Context, userID string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	if err != nil {
		return 0, r.errorClassifier.Translate("sum transactions", err)
	}
	return sum, nil
}

func toTransactionModel(txn *entity.Transaction) (*model.Transaction, error) {
	row := &model.Transaction{
		ID:           txn.ID,
		UserID:       txn.UserID,
		Sequence:     txn.Sequence,
		Kind:         string(txn.Kind),
		Amount:       txn.Amount,
		Category:     txn.Category,
		Description:  txn.Description,
		BalanceAfter: txn.BalanceAfter,
		CreatedAt:    txn.CreatedAt,
	}
	if txn.IdempotencyKey != "" {
		key := txn.IdempotencyKey
		row.IdempotencyKey = &key
	}
	if len(txn.Metadata) > 0 {
		raw, err := json.Marshal(txn.Metadata)
		if err != nil {
			return nil, err
		}
		row.Metadata = datatypes.JSON(raw)
	}
	return row, nil
}

func toTransactionEntity(row *model.Transaction) (*entity.Transaction, error) {
	txn := &entity.Transaction{
		ID:           row.ID,
		UserID:       row.UserID,
		Sequence:     row.Sequence,
		Kind:         entity.TransactionKind(row.Kind),
		Amount:       row.Amount,
		Category:     row.Category,
		Description:  row.Description,
		BalanceAfter: row.BalanceAfter,
		CreatedAt:    row.CreatedAt,
	}
	if row.IdempotencyKey != nil {
		txn.IdempotencyKey = *row.IdempotencyKey
	}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &txn.Metadata); err != nil {
			return nil, errs.NewPersistenceError("decode transaction metadata", err)
		}
	}
	return txn, nil
}
