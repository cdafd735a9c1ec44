package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/usecase"
)

func TestRequestValidator_ValidateDebit(t *testing.T) {
	v := NewRequestValidator(50, 200)

	valid := usecase.DebitRequest{UserID: "user-1", Amount: 10, Category: "tool.search"}

	testCases := []struct {
		name   string
		mutate func(r *usecase.DebitRequest)
		want   error
	}{
		{name: "valid request", mutate: func(r *usecase.DebitRequest) {}},
		{name: "zero amount", mutate: func(r *usecase.DebitRequest) { r.Amount = 0 }, want: errs.ErrInvalidAmount},
		{name: "negative amount", mutate: func(r *usecase.DebitRequest) { r.Amount = -3 }, want: errs.ErrInvalidAmount},
		{name: "empty user", mutate: func(r *usecase.DebitRequest) { r.UserID = "" }, want: errs.ErrInvalidUserID},
		{name: "missing category", mutate: func(r *usecase.DebitRequest) { r.Category = "" }, want: errs.ErrInvalidCategory},
		{
			name:   "description too long",
			mutate: func(r *usecase.DebitRequest) { r.Description = strings.Repeat("d", 1025) },
			want:   errs.ErrInvalidRequest,
		},
		{
			name:   "idempotency key with spaces",
			mutate: func(r *usecase.DebitRequest) { r.IdempotencyKey = " key " },
			want:   errs.ErrInvalidRequest,
		},
		{
			name:   "idempotency key too long",
			mutate: func(r *usecase.DebitRequest) { r.IdempotencyKey = strings.Repeat("k", 129) },
			want:   errs.ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)

			err := v.ValidateDebit(req)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, errs.KindValidation, errs.Kind(err))
		})
	}
}

func TestRequestValidator_ValidateCredit(t *testing.T) {
	v := NewRequestValidator(50, 200)

	assert.NoError(t, v.ValidateCredit(usecase.CreditRequest{UserID: "user-1", Amount: 1, Category: "purchase"}))
	assert.ErrorIs(t, v.ValidateCredit(usecase.CreditRequest{UserID: "user-1", Amount: 0, Category: "purchase"}), errs.ErrInvalidAmount)
}

func TestRequestValidator_NormalizePage(t *testing.T) {
	v := NewRequestValidator(50, 200)

	testCases := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{name: "default limit", limit: 0, offset: 0, wantLimit: 50},
		{name: "explicit window", limit: 10, offset: 30, wantLimit: 10, wantOffset: 30},
		{name: "max limit", limit: 200, wantLimit: 200},
		{name: "limit over max", limit: 201, wantErr: true},
		{name: "negative limit", limit: -1, wantErr: true},
		{name: "negative offset", limit: 10, offset: -1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset, err := v.NormalizePage(tc.limit, tc.offset)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidPagination)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestNewRequestValidator_Defaults(t *testing.T) {
	v := NewRequestValidator(0, 0)

	limit, _, err := v.NormalizePage(0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 50, limit)

	_, _, err = v.NormalizePage(51, 0)
	assert.Error(t, err)
}
