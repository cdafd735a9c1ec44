package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
	errs "github.com/arcanumspy/credit-ledger/internal/domain/error"
	coreport "github.com/arcanumspy/credit-ledger/internal/domain/port/core"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/persistence"
	"github.com/arcanumspy/credit-ledger/internal/domain/port/usecase"
)

// Operation names used for logging and metrics
const (
	OpDebit                  = "debit"
	OpCredit                 = "credit"
	OpGetBalance             = "get_balance"
	OpGetStats               = "get_stats"
	OpListTransactions       = "list_transactions"
	OpSetBlocked             = "set_blocked"
	OpListBlockEvents        = "list_block_events"
	OpSetLowBalanceThreshold = "set_low_balance_threshold"
	OpReconcile              = "reconcile"
)

// Config holds the ledger rules that come from configuration
type Config struct {
	DefaultLowBalanceThreshold int64
	DefaultListLimit           int
	MaxListLimit               int
	EventsEnabled              bool
}

// DefaultConfig returns the ledger defaults
func DefaultConfig() Config {
	return Config{
		DefaultLowBalanceThreshold: 100,
		DefaultListLimit:           50,
		MaxListLimit:               200,
	}
}

// Option customizes a Service
type Option func(*Service)

// WithAccountGuard serializes mutations across processes
func WithAccountGuard(guard *AccountGuard) Option {
	return func(s *Service) { s.guard = guard }
}

// WithMutationQueue serializes mutations of one user inside this process
func WithMutationQueue(queue *MutationQueue) Option {
	return func(s *Service) { s.queue = queue }
}

// WithMetrics reports operation outcomes
func WithMetrics(metrics coreport.LedgerMetrics) Option {
	return func(s *Service) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// WithIDGenerator replaces the UUID generator, used by tests that need stable ids
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// Service is the credit ledger. Every mutation locks the account row inside one
// unit of work, so the balance, the appended entry, the blocked flag, the audit
// record and the outbox rows commit or roll back together.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config

	validator   *RequestValidator
	idempotency *IdempotencyHandler
	queue       *MutationQueue
	guard       *AccountGuard
	metrics     coreport.LedgerMetrics
	newID       func() string
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewLedgerService creates the ledger service
func NewLedgerService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
	opts ...Option,
) *Service {
	s := &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
		validator:    NewRequestValidator(cfg.DefaultListLimit, cfg.MaxListLimit),
		idempotency:  NewIdempotencyHandler(),
		metrics:      nopMetrics{},
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Debit consumes credits for metered tool usage or an admin adjustment
func (s *Service) Debit(ctx context.Context, req usecase.DebitRequest) (*entity.Result, error) {
	start := s.timeProvider.Now()

	result, err := s.debit(ctx, req)
	return s.finishMutation(OpDebit, req.UserID, req.Amount, start, result, err)
}

func (s *Service) debit(ctx context.Context, req usecase.DebitRequest) (*entity.Result, error) {
	if err := s.validator.ValidateDebit(req); err != nil {
		return nil, err
	}

	var result *entity.Result
	var blockEvent *entity.BlockEvent

	err := s.serialize(ctx, req.UserID, func(txCtx context.Context) error {
		accountRepo := s.uow.GetAccountRepository(txCtx)
		transactionRepo := s.uow.GetTransactionRepository(txCtx)

		account, err := accountRepo.LockOrCreate(txCtx, req.UserID, s.cfg.DefaultLowBalanceThreshold)
		if err != nil {
			return err
		}

		existing, found, err := s.idempotency.CheckIdempotency(txCtx, transactionRepo, req.UserID, req.IdempotencyKey, entity.KindDebit, req.Amount, req.Category)
		if err != nil {
			return err
		}
		if found {
			result = replayedResult(existing, account)
			return nil
		}

		wasLow := account.IsLowBalance()
		transition, err := account.ApplyDebit(req.Amount, req.AllowNegative, s.timeProvider)
		if err != nil {
			return err
		}

		txn := entity.NewTransaction(s.newID(), account, entity.KindDebit, req.Amount, req.Category, req.Description, req.Metadata, req.IdempotencyKey)
		blockEvent = s.transitionEvent(account, transition, !transition.Blocked, entity.SystemActor)

		if err := s.persistMutation(txCtx, account, txn, blockEvent, !wasLow && account.IsLowBalance(), req.Actor); err != nil {
			return err
		}

		result = &entity.Result{
			Success:       true,
			TransactionID: txn.ID,
			BalanceAfter:  txn.BalanceAfter,
			IsBlocked:     account.IsBlocked,
		}
		return nil
	})
	if err != nil {
		return nil, errs.NewPersistenceError(OpDebit, err)
	}

	s.reportTransition(req.UserID, blockEvent)
	return result, nil
}

// Credit loads credits after a purchase or a manual top-up
func (s *Service) Credit(ctx context.Context, req usecase.CreditRequest) (*entity.Result, error) {
	start := s.timeProvider.Now()

	result, err := s.credit(ctx, req)
	return s.finishMutation(OpCredit, req.UserID, req.Amount, start, result, err)
}

func (s *Service) credit(ctx context.Context, req usecase.CreditRequest) (*entity.Result, error) {
	if err := s.validator.ValidateCredit(req); err != nil {
		return nil, err
	}

	var result *entity.Result
	var blockEvent *entity.BlockEvent

	err := s.serialize(ctx, req.UserID, func(txCtx context.Context) error {
		accountRepo := s.uow.GetAccountRepository(txCtx)
		transactionRepo := s.uow.GetTransactionRepository(txCtx)

		account, err := accountRepo.LockOrCreate(txCtx, req.UserID, s.cfg.DefaultLowBalanceThreshold)
		if err != nil {
			return err
		}

		existing, found, err := s.idempotency.CheckIdempotency(txCtx, transactionRepo, req.UserID, req.IdempotencyKey, entity.KindCredit, req.Amount, req.Category)
		if err != nil {
			return err
		}
		if found {
			result = replayedResult(existing, account)
			return nil
		}

		transition, err := account.ApplyCredit(req.Amount, s.timeProvider)
		if err != nil {
			return err
		}

		txn := entity.NewTransaction(s.newID(), account, entity.KindCredit, req.Amount, req.Category, req.Description, req.Metadata, req.IdempotencyKey)
		blockEvent = s.transitionEvent(account, transition, true, entity.SystemActor)

		if err := s.persistMutation(txCtx, account, txn, blockEvent, false, req.Actor); err != nil {
			return err
		}

		result = &entity.Result{
			Success:       true,
			TransactionID: txn.ID,
			BalanceAfter:  txn.BalanceAfter,
			IsBlocked:     account.IsBlocked,
		}
		return nil
	})
	if err != nil {
		return nil, errs.NewPersistenceError(OpCredit, err)
	}

	s.reportTransition(req.UserID, blockEvent)
	return result, nil
}

// GetBalance returns the account, or an unsaved empty account when the user has no history
func (s *Service) GetBalance(ctx context.Context, userID string) (*entity.Account, error) {
	start := s.timeProvider.Now()

	account, err := s.loadAccount(ctx, userID)
	s.observe(OpGetBalance, start, err)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetStats returns the aggregate counters of the account
func (s *Service) GetStats(ctx context.Context, userID string) (*entity.AccountStats, error) {
	start := s.timeProvider.Now()

	account, err := s.loadAccount(ctx, userID)
	s.observe(OpGetStats, start, err)
	if err != nil {
		return nil, err
	}
	stats := account.Stats()
	return &stats, nil
}

// ListTransactions returns one window of the user's entries, newest first
func (s *Service) ListTransactions(ctx context.Context, userID string, limit, offset int) (*entity.TransactionPage, error) {
	start := s.timeProvider.Now()

	page, err := s.listTransactions(ctx, userID, limit, offset)
	s.observe(OpListTransactions, start, err)
	return page, err
}

func (s *Service) listTransactions(ctx context.Context, userID string, limit, offset int) (*entity.TransactionPage, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}
	limit, offset, err := s.validator.NormalizePage(limit, offset)
	if err != nil {
		return nil, err
	}

	repo := s.uow.GetTransactionRepository(ctx)
	items, err := repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errs.NewPersistenceError(OpListTransactions, err)
	}
	total, err := repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errs.NewPersistenceError(OpListTransactions, err)
	}
	if items == nil {
		items = []*entity.Transaction{}
	}

	return &entity.TransactionPage{Items: items, Limit: limit, Offset: offset, Total: total}, nil
}

// SetBlocked is the administrative override of the blocked flag.
// It is always permitted and always leaves an audit record, even when nothing changes.
func (s *Service) SetBlocked(ctx context.Context, req usecase.SetBlockedRequest) (*entity.BlockResult, error) {
	start := s.timeProvider.Now()

	result, err := s.setBlocked(ctx, req)
	s.observe(OpSetBlocked, start, err)
	if err != nil {
		s.logger.Error("Block override failed", map[string]any{
			"user_id": req.UserID,
			"blocked": req.Blocked,
			"actor":   req.Actor,
			"error":   err.Error(),
		})
		return &entity.BlockResult{Success: false, ErrorKind: errs.Kind(err), Message: err.Error()}, err
	}
	return result, nil
}

func (s *Service) setBlocked(ctx context.Context, req usecase.SetBlockedRequest) (*entity.BlockResult, error) {
	if err := s.validator.ValidateUserID(req.UserID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Actor) == "" {
		return nil, errs.NewValidationError("actor", "is required for an administrative override", errs.ErrInvalidRequest)
	}

	var result *entity.BlockResult
	var event *entity.BlockEvent

	err := s.serialize(ctx, req.UserID, func(txCtx context.Context) error {
		accountRepo := s.uow.GetAccountRepository(txCtx)

		account, err := accountRepo.LockOrCreate(txCtx, req.UserID, s.cfg.DefaultLowBalanceThreshold)
		if err != nil {
			return err
		}

		previous := account.IsBlocked
		changed := account.SetBlocked(req.Blocked, s.timeProvider)
		if changed {
			if err := accountRepo.Save(txCtx, account); err != nil {
				return err
			}
		}

		event = &entity.BlockEvent{
			ID:              s.newID(),
			UserID:          account.UserID,
			Blocked:         req.Blocked,
			PreviousBlocked: previous,
			Reason:          entity.BlockReasonAdmin,
			Actor:           req.Actor,
			Note:            req.Note,
			BalanceAt:       account.Balance(),
			CreatedAt:       s.timeProvider.Now(),
		}
		if err := s.uow.GetBlockEventRepository(txCtx).Create(txCtx, event); err != nil {
			return err
		}

		if changed && s.cfg.EventsEnabled {
			outbox := s.newEvent(blockEventType(event.Blocked), account.UserID, blockChangedPayload(event))
			if err := s.uow.GetOutboxRepository(txCtx).Create(txCtx, outbox); err != nil {
				return err
			}
		}

		result = &entity.BlockResult{
			Success:   true,
			Changed:   changed,
			IsBlocked: account.IsBlocked,
			Balance:   account.Balance(),
		}
		return nil
	})
	if err != nil {
		return nil, errs.NewPersistenceError(OpSetBlocked, err)
	}

	s.logger.Info("Block override applied", map[string]any{
		"user_id": req.UserID,
		"blocked": req.Blocked,
		"changed": result.Changed,
		"actor":   req.Actor,
	})
	s.reportTransition(req.UserID, event)
	return result, nil
}

// ListBlockEvents returns one window of the user's block audit trail, newest first
func (s *Service) ListBlockEvents(ctx context.Context, userID string, limit, offset int) (*entity.BlockEventPage, error) {
	start := s.timeProvider.Now()

	page, err := s.listBlockEvents(ctx, userID, limit, offset)
	s.observe(OpListBlockEvents, start, err)
	return page, err
}

func (s *Service) listBlockEvents(ctx context.Context, userID string, limit, offset int) (*entity.BlockEventPage, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}
	limit, offset, err := s.validator.NormalizePage(limit, offset)
	if err != nil {
		return nil, err
	}

	repo := s.uow.GetBlockEventRepository(ctx)
	items, err := repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errs.NewPersistenceError(OpListBlockEvents, err)
	}
	total, err := repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, errs.NewPersistenceError(OpListBlockEvents, err)
	}
	if items == nil {
		items = []*entity.BlockEvent{}
	}

	return &entity.BlockEventPage{Items: items, Limit: limit, Offset: offset, Total: total}, nil
}

// SetLowBalanceThreshold changes the cutoff under which the account counts as low
func (s *Service) SetLowBalanceThreshold(ctx context.Context, userID string, threshold int64) (*entity.AccountStats, error) {
	start := s.timeProvider.Now()

	stats, err := s.setLowBalanceThreshold(ctx, userID, threshold)
	s.observe(OpSetLowBalanceThreshold, start, err)
	return stats, err
}

func (s *Service) setLowBalanceThreshold(ctx context.Context, userID string, threshold int64) (*entity.AccountStats, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if threshold < 0 {
		return nil, errs.ErrInvalidThreshold
	}

	var stats entity.AccountStats
	err := s.serialize(ctx, userID, func(txCtx context.Context) error {
		accountRepo := s.uow.GetAccountRepository(txCtx)

		account, err := accountRepo.LockOrCreate(txCtx, userID, s.cfg.DefaultLowBalanceThreshold)
		if err != nil {
			return err
		}
		if err := account.SetLowBalanceThreshold(threshold, s.timeProvider); err != nil {
			return err
		}
		if err := accountRepo.Save(txCtx, account); err != nil {
			return err
		}
		stats = account.Stats()
		return nil
	})
	if err != nil {
		return nil, errs.NewPersistenceError(OpSetLowBalanceThreshold, err)
	}
	return &stats, nil
}

// Reconcile checks the account row against the transaction log without changing anything
func (s *Service) Reconcile(ctx context.Context, userID string) (*usecase.ReconcileReport, error) {
	start := s.timeProvider.Now()

	report, err := s.reconcile(ctx, userID)
	s.observe(OpReconcile, start, err)
	return report, err
}

func (s *Service) reconcile(ctx context.Context, userID string) (*usecase.ReconcileReport, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}

	var report *usecase.ReconcileReport
	err := s.uow.Do(ctx, func(txCtx context.Context) error {
		account, err := s.accountOrDefault(txCtx, userID)
		if err != nil {
			return err
		}
		transactionRepo := s.uow.GetTransactionRepository(txCtx)
		sum, err := transactionRepo.SumByUser(txCtx, userID)
		if err != nil {
			return err
		}
		rows, err := transactionRepo.CountByUser(txCtx, userID)
		if err != nil {
			return err
		}

		report = &usecase.ReconcileReport{
			UserID:           userID,
			AccountBalance:   account.Balance(),
			LedgerSum:        sum,
			TransactionCount: account.TransactionCount,
			TransactionRows:  rows,
			Consistent:       account.Balance() == sum && account.TransactionCount == rows,
		}
		return nil
	})
	if err != nil {
		return nil, errs.NewPersistenceError(OpReconcile, err)
	}

	if !report.Consistent {
		s.logger.Error("Ledger drift detected", map[string]any{
			"user_id":           userID,
			"account_balance":   report.AccountBalance,
			"ledger_sum":        report.LedgerSum,
			"transaction_count": report.TransactionCount,
			"transaction_rows":  report.TransactionRows,
		})
	}
	return report, nil
}

// Shutdown drains the in-process mutation queue
func (s *Service) Shutdown() {
	if s.queue != nil {
		s.queue.Shutdown()
	}
}

// serialize runs fn in a unit of work, behind the per-user queue and the account lock when configured
func (s *Service) serialize(ctx context.Context, userID string, fn func(txCtx context.Context) error) error {
	inTx := func(ctx context.Context) error {
		return s.uow.Do(ctx, fn)
	}

	locked := inTx
	if s.guard != nil {
		locked = func(ctx context.Context) error {
			return s.guard.Run(ctx, userID, inTx)
		}
	}

	if s.queue != nil {
		return s.queue.Submit(ctx, userID, locked)
	}
	return locked(ctx)
}

func (s *Service) persistMutation(
	txCtx context.Context,
	account *entity.Account,
	txn *entity.Transaction,
	blockEvent *entity.BlockEvent,
	crossedLow bool,
	actor string,
) error {
	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, txn); err != nil {
		return err
	}
	if err := s.uow.GetAccountRepository(txCtx).Save(txCtx, account); err != nil {
		return err
	}
	if blockEvent != nil {
		if err := s.uow.GetBlockEventRepository(txCtx).Create(txCtx, blockEvent); err != nil {
			return err
		}
	}

	if !s.cfg.EventsEnabled {
		return nil
	}
	outbox := s.uow.GetOutboxRepository(txCtx)
	for _, event := range s.mutationEvents(account, txn, blockEvent, crossedLow, actor) {
		if err := outbox.Create(txCtx, event); err != nil {
			return err
		}
	}
	return nil
}

// transitionEvent builds the audit record for a flag change caused by a balance mutation
func (s *Service) transitionEvent(account *entity.Account, transition entity.BlockTransition, previous bool, actor string) *entity.BlockEvent {
	if !transition.Changed {
		return nil
	}
	return &entity.BlockEvent{
		ID:              s.newID(),
		UserID:          account.UserID,
		Blocked:         transition.Blocked,
		PreviousBlocked: previous,
		Reason:          transition.Reason,
		Actor:           actor,
		BalanceAt:       account.Balance(),
		CreatedAt:       account.UpdatedAt,
	}
}

func (s *Service) reportTransition(userID string, event *entity.BlockEvent) {
	if event == nil || !event.Changed() {
		return
	}
	s.metrics.ObserveBlockTransition(event.Blocked, string(event.Reason))
	s.logger.Info("Account block state changed", map[string]any{
		"user_id": userID,
		"blocked": event.Blocked,
		"reason":  string(event.Reason),
		"actor":   event.Actor,
		"balance": event.BalanceAt,
	})
}

func (s *Service) loadAccount(ctx context.Context, userID string) (*entity.Account, error) {
	if err := s.validator.ValidateUserID(userID); err != nil {
		return nil, err
	}
	account, err := s.accountOrDefault(ctx, userID)
	if err != nil {
		return nil, errs.NewPersistenceError(OpGetBalance, err)
	}
	return account, nil
}

func (s *Service) accountOrDefault(ctx context.Context, userID string) (*entity.Account, error) {
	account, err := s.uow.GetAccountRepository(ctx).GetByUserID(ctx, userID)
	if errors.Is(err, errs.ErrAccountNotFound) {
		return entity.NewAccount(userID, s.cfg.DefaultLowBalanceThreshold, s.timeProvider)
	}
	return account, err
}

func (s *Service) finishMutation(op, userID string, amount int64, start time.Time, result *entity.Result, err error) (*entity.Result, error) {
	if err != nil {
		s.observe(op, start, err)
		fields := map[string]any{
			"operation": op,
			"user_id":   userID,
			"amount":    amount,
			"error":     err.Error(),
		}
		if errs.Kind(err) == errs.KindPersistence {
			s.logger.Error("Ledger mutation failed", fields)
		} else {
			s.logger.Debug("Ledger mutation rejected", fields)
		}
		return entity.NewFailedResult(err), err
	}

	outcome := coreport.OutcomeSuccess
	if result.Replayed {
		outcome = coreport.OutcomeReplayed
	}
	s.metrics.ObserveOperation(op, outcome, s.timeProvider.Since(start))
	s.logger.Debug("Ledger mutation applied", map[string]any{
		"operation":      op,
		"user_id":        userID,
		"amount":         amount,
		"transaction_id": result.TransactionID,
		"balance_after":  result.BalanceAfter,
		"replayed":       result.Replayed,
	})
	return result, nil
}

func (s *Service) observe(op string, start time.Time, err error) {
	outcome := coreport.OutcomeSuccess
	if err != nil {
		outcome = string(errs.Kind(err))
	}
	s.metrics.ObserveOperation(op, outcome, s.timeProvider.Since(start))
}

func replayedResult(existing *entity.Transaction, account *entity.Account) *entity.Result {
	return &entity.Result{
		Success:       true,
		TransactionID: existing.ID,
		BalanceAfter:  existing.BalanceAfter,
		IsBlocked:     account.IsBlocked,
		Replayed:      true,
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveOperation(string, string, time.Duration) {}
func (nopMetrics) ObserveBlockTransition(bool, string) {}
func (nopMetrics) ObserveOutboxPublish(string, int) {}
