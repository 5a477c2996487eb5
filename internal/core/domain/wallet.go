package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is a user's balance in a single currency. One per (user, currency).
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Currency  Currency        `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HasSufficient reports whether the balance covers amount.
func (w *Wallet) HasSufficient(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}
