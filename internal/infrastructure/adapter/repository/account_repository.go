package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/model"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByUserID retrieves an account without locking it
func (r *AccountRepository) GetByUserID(ctx context.Context, userID string) (*entity.Account, error) {
	var row model.Account
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, r.errorClassifier.Translate("get account", err)
	}
	return r.toEntity(&row), nil
}

// LockOrCreate inserts the account when missing and then locks its row with SELECT ... FOR UPDATE.
// SQLite has no row locks; there the write lock taken by the insert serializes writers instead.
func (r *AccountRepository) LockOrCreate(ctx context.Context, userID string, defaultLowBalanceThreshold int64) (*entity.Account, error) {
	now := r.timeProvider.Now()
	seed := model.Account{
		UserID:              userID,
		LowBalanceThreshold: defaultLowBalanceThreshold,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&seed).Error; err != nil {
		return nil, r.errorClassifier.Translate("create account", err)
	}

	var row model.Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAccountNotFound
		}
		return nil, r.errorClassifier.Translate("lock account", err)
	}

	return r.toEntity(&row), nil
}

// Save persists the mutable columns of the account
func (r *AccountRepository) Save(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("user_id = ?", account.UserID).
		Updates(map[string]any{
			"balance":               account.Balance(),
			"total_loaded":          account.TotalLoaded(),
			"total_consumed":        account.TotalConsumed(),
			"is_blocked":            account.IsBlocked,
			"low_balance_threshold": account.LowBalanceThreshold,
			"transaction_count":     account.TransactionCount,
			"updated_at":            account.UpdatedAt,
		})
	if result.Error != nil {
		return r.errorClassifier.Translate("save account", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) toEntity(row *model.Account) *entity.Account {
	if row.Balance != row.TotalLoaded-row.TotalConsumed {
		r.logger.Error("Stored balance disagrees with account totals", map[string]any{
			"user_id":        row.UserID,
			"balance":        row.Balance,
			"total_loaded":   row.TotalLoaded,
			"total_consumed": row.TotalConsumed,
		})
	}
	return entity.RestoreAccount(
		row.UserID,
		row.TotalLoaded,
		row.TotalConsumed,
		row.IsBlocked,
		row.LowBalanceThreshold,
		row.TransactionCount,
		row.CreatedAt,
		row.UpdatedAt,
	)
}
