package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if !errors.Is(ErrInvalidAmount, ErrValidation) {
		t.Errorf("ErrInvalidAmount should wrap ErrValidation")
	}
	if !errors.Is(ErrInvalidCategory, ErrValidation) {
		t.Errorf("ErrInvalidCategory should wrap ErrValidation")
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"IdempotencyConflict", ErrIdempotencyConflict, 4004},
		{"InvalidCategory", ErrInvalidCategory, 4007},
		{"GenericValidation", ErrInvalidPagination, 4008},
		{"AccountBlocked", ErrAccountBlocked, 4031},
		{"AccountBusy", ErrAccountBusy, 4230},
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
		{"TypedBlocked", NewAccountBlockedError("u1", -50), 4031},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestKind(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"Nil", nil, KindNone},
		{"Validation", NewValidationError("amount", "must be positive", ErrInvalidAmount), KindValidation},
		{"Insufficient", NewInsufficientBalanceError("u1", 100, 10), KindInsufficientBalance},
		{"Blocked", ErrAccountBlocked, KindAccountBlocked},
		{"Conflict", NewIdempotencyConflictError("u1", "k", "tx"), KindIdempotencyConflict},
		{"Busy", ErrAccountBusy, KindAccountBusy},
		{"Unknown", errors.New("connection reset by peer"), KindPersistence},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Kind(tc.err); got != tc.expected {
				t.Errorf("Kind(%v) = %q, want %q", tc.err, got, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("category", "must not be blank", ErrInvalidCategory)

	if err.Error() != "invalid category: must not be blank" {
		t.Errorf("ValidationError.Error() = %s", err.Error())
	}
	if !errors.Is(err, ErrInvalidCategory) || !errors.Is(err, ErrValidation) {
		t.Errorf("ValidationError should unwrap to ErrInvalidCategory and ErrValidation")
	}

	bare := &ValidationError{Field: "limit", Reason: "too large"}
	if !errors.Is(bare, ErrValidation) {
		t.Errorf("ValidationError without base should unwrap to ErrValidation")
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("user-7", 150, 100)

	expected := "insufficient balance for user user-7: required 150, available 100"
	if err.Error() != expected {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expected)
	}
	if !IsInsufficientBalanceError(err) {
		t.Errorf("IsInsufficientBalanceError should be true")
	}

	var typed *InsufficientBalanceError
	if !errors.As(err, &typed) {
		t.Fatalf("errors.As should find InsufficientBalanceError")
	}
	fields := typed.LogFields()
	if fields["amount"] != int64(150) || fields["error_code"] != CodeInsufficientBalance {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewPersistenceError("debit", cause)

	if !errors.Is(err, ErrPersistence) {
		t.Errorf("PersistenceError should match ErrPersistence")
	}
	if !errors.Is(err, cause) {
		t.Errorf("PersistenceError should unwrap to its cause")
	}
	if Kind(err) != KindPersistence {
		t.Errorf("Kind(PersistenceError) = %q", Kind(err))
	}

	if NewPersistenceError("debit", nil) != nil {
		t.Errorf("NewPersistenceError(nil) should be nil")
	}

	domain := NewAccountBlockedError("u1", 0)
	if NewPersistenceError("debit", domain) != domain {
		t.Errorf("domain errors must pass through unchanged")
	}

	again := NewPersistenceError("credit", err)
	if again != err {
		t.Errorf("persistence errors must not be double wrapped")
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(ErrAccountBusy) {
		t.Errorf("account busy should be retryable")
	}
	if !IsRetryable(NewPersistenceError("op", errors.New("timeout"))) {
		t.Errorf("persistence failures should be retryable")
	}
	if IsRetryable(ErrInsufficientBalance) {
		t.Errorf("insufficient balance should not be retryable")
	}
	if IsRetryable(ErrInvalidAmount) {
		t.Errorf("validation errors should not be retryable")
	}
}
