package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeIdempotencyConflict = 4004
	CodeAmountOverflow      = 4006
	CodeInvalidCategory     = 4007
	CodeInvalidRequest      = 4008
	CodeUnauthenticated     = 4010
	CodeForbidden           = 4030
	CodeAccountBlocked      = 4031
	CodeAccountBusy         = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// ErrorKind is the machine-readable discriminator carried by every failed ledger result.
type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindValidation          ErrorKind = "validation"
	KindInsufficientBalance ErrorKind = "insufficient_balance"
	KindAccountBlocked      ErrorKind = "account_blocked"
	KindIdempotencyConflict ErrorKind = "idempotency_conflict"
	KindAccountBusy         ErrorKind = "account_busy"
	KindUnauthenticated     ErrorKind = "unauthenticated"
	KindForbidden           ErrorKind = "forbidden"
	KindPersistence         ErrorKind = "persistence"
)

// Base error types
var (
	// ErrValidation is the parent of every malformed-input error
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when an amount is zero or negative
	ErrInvalidAmount = fmt.Errorf("%w: amount must be a positive integer", ErrValidation)

	// ErrInvalidUserID is returned when the user id is blank or too long
	ErrInvalidUserID = fmt.Errorf("%w: user id must be a non-empty string of at most 128 characters", ErrValidation)

	// ErrInvalidCategory is returned when the category label is missing or malformed
	ErrInvalidCategory = fmt.Errorf("%w: category is required", ErrValidation)

	// ErrInvalidPagination is returned for negative limit or offset values
	ErrInvalidPagination = fmt.Errorf("%w: limit and offset must be non-negative", ErrValidation)

	// ErrInvalidThreshold is returned when a low-balance threshold is negative
	ErrInvalidThreshold = fmt.Errorf("%w: low balance threshold must be non-negative", ErrValidation)

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = fmt.Errorf("%w: invalid request", ErrValidation)

	// ErrAmountOverflow is returned when applying the amount would overflow the ledger counters
	ErrAmountOverflow = fmt.Errorf("%w: amount is too large and would cause overflow", ErrValidation)

	// ErrInsufficientBalance is returned when a debit would take the balance below zero without permission
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountBlocked is returned when a paid debit is attempted on a blocked account
	ErrAccountBlocked = errors.New("account is blocked")

	// ErrIdempotencyConflict is returned when an idempotency key is reused with different parameters
	ErrIdempotencyConflict = errors.New("idempotency key reused with different parameters")

	// ErrAccountBusy is returned when the account lock could not be acquired in time
	ErrAccountBusy = errors.New("account is locked by another operation")

	// ErrUnauthenticated is returned when no valid caller identity could be resolved
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned when the caller lacks the required role
	ErrForbidden = errors.New("forbidden")

	// ErrPersistence is returned when the underlying storage failed
	ErrPersistence = errors.New("ledger persistence failure")

	// ErrAccountNotFound is returned by repositories when no account row exists
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned by repositories when no transaction matches
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateKey is returned by repositories on unique constraint violations
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrTransientConflict marks a rolled-back attempt that is safe to run again
	ErrTransientConflict = errors.New("transaction rolled back by concurrency control")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrValidation):
		return CodeInvalidRequest
	case errors.Is(err, ErrAccountBlocked):
		return CodeAccountBlocked
	case errors.Is(err, ErrIdempotencyConflict):
		return CodeIdempotencyConflict
	case errors.Is(err, ErrAccountBusy):
		return CodeAccountBusy
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	default:
		return CodeInternalServer
	}
}

// Kind classifies an error into the ledger error taxonomy.
// Anything unrecognised is treated as a persistence failure so callers fail closed.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInsufficientBalance):
		return KindInsufficientBalance
	case errors.Is(err, ErrAccountBlocked):
		return KindAccountBlocked
	case errors.Is(err, ErrIdempotencyConflict):
		return KindIdempotencyConflict
	case errors.Is(err, ErrAccountBusy):
		return KindAccountBusy
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindPersistence
	}
}

// ValidationError describes which input field was rejected
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	if e.Err == nil {
		return ErrValidation
	}
	return e.Err
}

// NewValidationError creates a field-level validation error wrapping base
func NewValidationError(field, reason string, base error) error {
	return &ValidationError{Field: field, Reason: reason, Err: base}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID         string
	Amount         int64
	CurrentBalance int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %d, available %d",
		e.UserID, e.Amount, e.CurrentBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrentBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID string, amount, currentBalance int64) error {
	return &InsufficientBalanceError{
		UserID:         userID,
		Amount:         amount,
		CurrentBalance: currentBalance,
	}
}

// AccountBlockedError is returned when consumption is attempted on a blocked account
type AccountBlockedError struct {
	UserID         string
	CurrentBalance int64
}

// Error implements the error interface
func (e *AccountBlockedError) Error() string {
	return fmt.Sprintf("account %s is blocked (balance %d)", e.UserID, e.CurrentBalance)
}

// Is checks if the target error is an ErrAccountBlocked
func (e *AccountBlockedError) Is(target error) bool {
	return target == ErrAccountBlocked
}

// LogFields returns a map of fields for structured logging
func (e *AccountBlockedError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "account_blocked",
		"user_id":         e.UserID,
		"current_balance": e.CurrentBalance,
		"error_code":      CodeAccountBlocked,
	}
}

// NewAccountBlockedError creates a new account blocked error
func NewAccountBlockedError(userID string, currentBalance int64) error {
	return &AccountBlockedError{UserID: userID, CurrentBalance: currentBalance}
}

// IdempotencyConflictError reports a key replayed with different parameters
type IdempotencyConflictError struct {
	UserID         string
	IdempotencyKey string
	TransactionID  string
}

// Error implements the error interface
func (e *IdempotencyConflictError) Error() string {
	return fmt.Sprintf("idempotency key %q for user %s already used by transaction %s with different parameters",
		e.IdempotencyKey, e.UserID, e.TransactionID)
}

// Is checks if the target error is an ErrIdempotencyConflict
func (e *IdempotencyConflictError) Is(target error) bool {
	return target == ErrIdempotencyConflict
}

// NewIdempotencyConflictError creates a new idempotency conflict error
func NewIdempotencyConflictError(userID, key, transactionID string) error {
	return &IdempotencyConflictError{UserID: userID, IdempotencyKey: key, TransactionID: transactionID}
}

// PersistenceError wraps a storage failure for a named ledger operation
type PersistenceError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, ErrPersistence.Error())
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrPersistence.Error(), e.Err)
}

// Is checks if the target error is an ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PersistenceError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "persistence",
		"operation":  e.Op,
		"error_code": CodeInternalServer,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewPersistenceError wraps err as a persistence failure unless it already belongs to the taxonomy
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	if Kind(err) != KindPersistence || errors.Is(err, ErrPersistence) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsAccountBlockedError checks if the error is an account blocked error
func IsAccountBlockedError(err error) bool {
	return errors.Is(err, ErrAccountBlocked)
}

// IsValidationError checks if the error is any validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrTransactionNotFound)
}

// IsRetryable reports whether a caller may safely retry the whole operation
func IsRetryable(err error) bool {
	switch Kind(err) {
	case KindAccountBusy, KindPersistence:
		return true
	default:
		return false
	}
}
