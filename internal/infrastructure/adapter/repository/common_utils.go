package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
)

// Postgres SQLSTATE codes the ledger reacts to
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ConflictError     ErrorType = "conflict"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier maps Postgres and SQLite driver errors onto the ledger taxonomy
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsRetryableConflict(err):
		return ConflictError
	case c.IsLockError(err):
		return LockError
	case c.IsConstraintError(err):
		return ConstraintError
	case c.IsConnectionError(err):
		return ConnectionError
	default:
		return ""
	}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := pgCode(err); ok {
		return code == pgUniqueViolation
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, errs.ErrDuplicateKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key")
}

// IsRetryableConflict reports errors after which the database has rolled back the attempt,
// so running the whole unit of work again cannot double-apply anything
func (c *ErrorClassifier) IsRetryableConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errs.ErrTransientConflict) {
		return true
	}
	if code, ok := pgCode(err); ok {
		return code == pgSerializationFailure || code == pgDeadlockDetected
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") ||
		strings.Contains(msg, "database is locked")
}

// IsLockError checks if a lock could not be obtained in time
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := pgCode(err); ok {
		return code == pgLockNotAvailable
	}
	return strings.Contains(err.Error(), "lock timeout")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "dial")
}

// IsConstraintError checks if the error is a check or foreign key violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := pgCode(err); ok {
		// class 23 is integrity constraint violation
		return strings.HasPrefix(code, "23")
	}
	msg := err.Error()
	return strings.Contains(msg, "CHECK constraint failed") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}

// Translate converts a driver error from op into a domain error.
// Context cancellation passes through untouched so callers can tell it apart.
func (c *ErrorClassifier) Translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	switch c.Classify(err) {
	case DuplicateKeyError:
		return fmt.Errorf("%s: %w: %v", op, errs.ErrDuplicateKey, err)
	case ConflictError:
		return fmt.Errorf("%s: %w: %v", op, errs.ErrTransientConflict, err)
	case LockError:
		return fmt.Errorf("%s: %w: %v", op, errs.ErrAccountBusy, err)
	default:
		return errs.NewPersistenceError(op, err)
	}
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}
