package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExchangeStatus string

// Exchanges are only recorded once they have settled.
const ExchangeStatusCompleted ExchangeStatus = "COMPLETED"

// ExchangeTransaction is the immutable record of a redeemed quote.
type ExchangeTransaction struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	SourceCurrency Currency        `json:"source_currency"`
	SourceAmount   decimal.Decimal `json:"source_amount"`
	TargetCurrency Currency        `json:"target_currency"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	ExchangeRate   decimal.Decimal `json:"exchange_rate"`
	Status         ExchangeStatus  `json:"status"`
	Reference      string          `json:"reference"` // quote reference, unique
	CreatedAt      time.Time       `json:"created_at"`
}
