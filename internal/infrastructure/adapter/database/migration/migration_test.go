package migration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/usecase"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/database"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/logger"
	"github.com/arcanumspy/credit-ledger/internal/infrastructure/adapter/model"
	mockusecase "github.com/arcanumspy/credit-ledger/mocks/port/usecase"
)

func TestMigrateAll_FreshDatabase(t *testing.T) {
	mgr := database.NewTestDBManager(t, logger.NewNoopLogger(), nil)
	db := mgr.Setup(t)

	migrator := db.Migrator()
	for _, table := range []any{&model.Account{}, &model.Transaction{}, &model.BlockEvent{}, &model.AccountLock{}, &model.OutboxEvent{}} {
		assert.True(t, migrator.HasTable(table))
	}
	assert.True(t, migrator.HasIndex(&model.Transaction{}, "idx_transactions_user_idempotency"))

	version, err := mgr.Manager.MigrationManager().GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)
}

func TestMigrateAll_IsIdempotent(t *testing.T) {
	mgr := database.NewTestDBManager(t, logger.NewNoopLogger(), nil)
	db := mgr.Setup(t)

	require.NoError(t, mgr.Manager.MigrationManager().MigrateAll(context.Background()))

	var versions int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&versions).Error)
	assert.Equal(t, int64(1), versions)
}

func TestMigrateAll_UpgradesFrom1_0_0(t *testing.T) {
	mgr := database.NewTestDBManager(t, logger.NewNoopLogger(), nil)
	db := mgr.Setup(t)
	ctx := context.Background()

	// pretend the previous release left the schema at 1.0.0
	require.NoError(t, db.Create(&model.MigrationVersion{Version: "1.0.0", Dialect: "sqlite", AppliedAt: mgr.TimeProvider.Now()}).Error)

	require.NoError(t, mgr.Manager.MigrationManager().MigrateAll(ctx))

	version, err := mgr.Manager.MigrationManager().GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)
}

func TestSeedDemoAccounts_CreditsThroughLedger(t *testing.T) {
	ledger := mockusecase.NewMockLedgerUseCase(t)
	ledger.EXPECT().
		Credit(mock.Anything, mock.MatchedBy(func(req usecase.CreditRequest) bool {
			return req.Actor == migration.SeedActor && req.IdempotencyKey == "seed:"+req.UserID && req.Amount > 0
		})).
		Return(&entity.Result{Success: true}, nil).
		Times(3)

	require.NoError(t, migration.SeedDemoAccounts(context.Background(), ledger, logger.NewNoopLogger()))
}
