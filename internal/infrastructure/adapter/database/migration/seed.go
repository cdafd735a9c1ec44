package migration

import (
	"context"
	"fmt"

	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/usecase"
)

// SeedActor is recorded as the actor of seeded credits
const SeedActor = "system:seed"

// demoAccounts are the opening grants loaded into development databases
var demoAccounts = map[string]int64{
	"demo-user-1": 1000,
	"demo-user-2": 250,
	"demo-user-3": 50,
}

// SeedDemoAccounts credits the demo accounts through the ledger itself, so seeded balances
// have transactions behind them. Each grant carries a fixed idempotency key and re-running
// the seed changes nothing.
func SeedDemoAccounts(ctx context.Context, ledger usecase.LedgerUseCase, logger coreport.Logger) error {
	for userID, amount := range demoAccounts {
		result, err := ledger.Credit(ctx, usecase.CreditRequest{
			UserID:         userID,
			Amount:         amount,
			Category:       "promo.seed",
			Description:    "opening balance for local development",
			IdempotencyKey: "seed:" + userID,
			Actor:          SeedActor,
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", userID, err)
		}

		logger.Info("Seeded demo account", map[string]any{
			"user_id":  userID,
			"balance":  result.BalanceAfter,
			"replayed": result.Replayed,
		})
	}
	return nil
}
