package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	mockpersistence "github.com/arcanumspy/credit-ledger/mocks/port/persistence"
)

func TestIdempotencyHandler_CheckIdempotency(t *testing.T) {
	earlier := &entity.Transaction{
		ID:             "tx-1",
		UserID:         "user-1",
		Kind:           entity.KindDebit,
		Amount:         -25,
		Category:       "tool.search",
		BalanceAfter:   75,
		IdempotencyKey: "key-1",
	}

	testCases := []struct {
		name       string
		key        string
		kind       entity.TransactionKind
		amount     int64
		category   string
		mockSetup  func(repo *mockpersistence.MockTransactionRepository)
		wantFound  bool
		wantErr    error
		wantErrMsg string
	}{
		{
			name:      "no key skips lookup",
			key:       "",
			kind:      entity.KindDebit,
			amount:    25,
			category:  "tool.search",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {},
		},
		{
			name:     "unknown key",
			key:      "key-2",
			kind:     entity.KindDebit,
			amount:   25,
			category: "tool.search",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().GetByIdempotencyKey(context.Background(), "user-1", "key-2").Return(nil, errs.ErrTransactionNotFound)
			},
		},
		{
			name:     "matching replay",
			key:      "key-1",
			kind:     entity.KindDebit,
			amount:   25,
			category: "tool.search",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().GetByIdempotencyKey(context.Background(), "user-1", "key-1").Return(earlier, nil)
			},
			wantFound: true,
		},
		{
			name:     "different amount",
			key:      "key-1",
			kind:     entity.KindDebit,
			amount:   30,
			category: "tool.search",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().GetByIdempotencyKey(context.Background(), "user-1", "key-1").Return(earlier, nil)
			},
			wantErr: errs.ErrIdempotencyConflict,
		},
		{
			name:     "different kind",
			key:      "key-1",
			kind:     entity.KindCredit,
			amount:   25,
			category: "tool.search",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().GetByIdempotencyKey(context.Background(), "user-1", "key-1").Return(earlier, nil)
			},
			wantErr: errs.ErrIdempotencyConflict,
		},
		{
			name:     "lookup failure",
			key:      "key-1",
			kind:     entity.KindDebit,
			amount:   25,
			category: "tool.search",
			mockSetup: func(repo *mockpersistence.MockTransactionRepository) {
				repo.EXPECT().GetByIdempotencyKey(context.Background(), "user-1", "key-1").Return(nil, errors.New("connection reset"))
			},
			wantErrMsg: "failed to look up idempotency key: connection reset",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mockpersistence.NewMockTransactionRepository(t)
			tc.mockSetup(repo)

			existing, found, err := NewIdempotencyHandler().CheckIdempotency(
				context.Background(), repo, "user-1", tc.key, tc.kind, tc.amount, tc.category)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, found)
			case tc.wantErrMsg != "":
				assert.EqualError(t, err, tc.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantFound, found)
				if tc.wantFound {
					assert.Equal(t, earlier, existing)
				} else {
					assert.Nil(t, existing)
				}
			}
		})
	}
}
