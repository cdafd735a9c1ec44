package ledger

import (
	"github.com/arcanumspy/credit-ledger/internal/domain/entity"
)

func (s *Service) newEvent(eventType entity.EventType, userID string, payload map[string]any) *entity.OutboxEvent {
	return &entity.OutboxEvent{
		ID:          s.newID(),
		EventType:   eventType,
		AggregateID: userID,
		Payload:     payload,
		Status:      entity.OutboxPending,
		CreatedAt:   s.timeProvider.Now(),
	}
}

func transactionRecordedPayload(txn *entity.Transaction, actor string) map[string]any {
	return map[string]any{
		"transactionId": txn.ID,
		"userId":        txn.UserID,
		"sequence":      txn.Sequence,
		"kind":          string(txn.Kind),
		"amount":        txn.Amount,
		"category":      txn.Category,
		"balanceAfter":  txn.BalanceAfter,
		"actor":         actor,
		"createdAt":     txn.CreatedAt,
	}
}

func blockChangedPayload(event *entity.BlockEvent) map[string]any {
	return map[string]any{
		"userId":    event.UserID,
		"blocked":   event.Blocked,
		"reason":    string(event.Reason),
		"actor":     event.Actor,
		"balanceAt": event.BalanceAt,
		"createdAt": event.CreatedAt,
	}
}

func lowBalancePayload(account *entity.Account) map[string]any {
	return map[string]any{
		"userId":              account.UserID,
		"balance":             account.Balance(),
		"lowBalanceThreshold": account.LowBalanceThreshold,
		"isBlocked":           account.IsBlocked,
	}
}

// mutationEvents lists the outbox events produced by one debit or credit
func (s *Service) mutationEvents(account *entity.Account, txn *entity.Transaction, blockEvent *entity.BlockEvent, crossedLow bool, actor string) []*entity.OutboxEvent {
	events := []*entity.OutboxEvent{
		s.newEvent(entity.EventTransactionRecorded, account.UserID, transactionRecordedPayload(txn, actor)),
	}
	if blockEvent != nil && blockEvent.Changed() {
		events = append(events, s.newEvent(blockEventType(blockEvent.Blocked), account.UserID, blockChangedPayload(blockEvent)))
	}
	if crossedLow {
		events = append(events, s.newEvent(entity.EventBalanceLow, account.UserID, lowBalancePayload(account)))
	}
	return events
}

func blockEventType(blocked bool) entity.EventType {
	if blocked {
		return entity.EventAccountBlocked
	}
	return entity.EventAccountUnblocked
}
