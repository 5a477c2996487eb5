package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ledger event types published after a settlement commits. Conflict events
// flag provider reports the ledger could not apply.
const (
	EventExchangeCompleted = "exchange.completed"
	EventDepositCompleted  = "deposit.completed"
	EventCardCreated       = "card.created"
	EventCardFunded        = "card.funded"
	EventUnknownOutcome    = "settlement.unknown_outcome"
	EventCardIssueConflict = "card.issue_conflict"
)

var ledgerEventNamespace = uuid.MustParse("0c1f6e0a-5b8e-4f55-9d1b-7a3c2f8e9d40")

// LedgerEvent is the envelope published to the event stream.
type LedgerEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Reference  string    `json:"reference"`
	UserID     uuid.UUID `json:"user_id"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewLedgerEvent derives the event ID from (type, reference) so a redelivered
// settlement publishes the same ID and consumers can deduplicate.
func NewLedgerEvent(eventType, reference string, userID uuid.UUID, payload any, now time.Time) LedgerEvent {
	return LedgerEvent{
		ID:         uuid.NewSHA1(ledgerEventNamespace, []byte(eventType+":"+reference)),
		Type:       eventType,
		Reference:  reference,
		UserID:     userID,
		Payload:    payload,
		OccurredAt: now,
	}
}
