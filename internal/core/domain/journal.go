package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// JournalStatus tracks an FX settlement across the provider call and the
// local ledger apply.
//
//	INITIATED -> EXECUTED -> APPLIED
//	INITIATED -> REJECTED
//	INITIATED -> UNKNOWN -> EXECUTED | REJECTED   (operator resolution)
type JournalStatus string

const (
	JournalStatusInitiated JournalStatus = "INITIATED"
	JournalStatusExecuted  JournalStatus = "EXECUTED"
	JournalStatusApplied   JournalStatus = "APPLIED"
	JournalStatusRejected  JournalStatus = "REJECTED"
	JournalStatusUnknown   JournalStatus = "UNKNOWN"
)

// JournalEntry is the durable record of a quote redemption. It carries
// everything needed to apply the exchange without the (already deleted) quote.
type JournalEntry struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Reference      string          `json:"reference"`
	SourceWalletID uuid.UUID       `json:"source_wallet_id"`
	TargetWalletID uuid.UUID       `json:"target_wallet_id"`
	SourceCurrency Currency        `json:"source_currency"`
	TargetCurrency Currency        `json:"target_currency"`
	SourceAmount   decimal.Decimal `json:"source_amount"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate"`
	Status         JournalStatus   `json:"status"`
	LastError      string          `json:"last_error,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewJournalEntry snapshots a quote and the wallets it settles against.
func NewJournalEntry(q *Quote, source, target *Wallet, now time.Time) *JournalEntry {
	return &JournalEntry{
		ID:             uuid.New(),
		UserID:         q.UserID,
		Reference:      q.Reference,
		SourceWalletID: source.ID,
		TargetWalletID: target.ID,
		SourceCurrency: q.SourceCurrency,
		TargetCurrency: q.TargetCurrency,
		SourceAmount:   q.SourceAmount,
		TargetAmount:   q.TargetAmount,
		ExchangeRate:   q.ExchangeRate,
		Status:         JournalStatusInitiated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Exchange builds the ExchangeTransaction this entry settles into.
func (j *JournalEntry) Exchange(now time.Time) *ExchangeTransaction {
	return &ExchangeTransaction{
		ID:             uuid.New(),
		UserID:         j.UserID,
		SourceCurrency: j.SourceCurrency,
		SourceAmount:   j.SourceAmount,
		TargetCurrency: j.TargetCurrency,
		TargetAmount:   j.TargetAmount,
		ExchangeRate:   j.ExchangeRate,
		Status:         ExchangeStatusCompleted,
		Reference:      j.Reference,
		CreatedAt:      now,
	}
}
