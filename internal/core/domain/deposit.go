package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "PENDING"
	DepositStatusCompleted DepositStatus = "COMPLETED"
)

// Deposit tracks a hosted collection from initialization until the provider
// confirms it. SubTotal is what the wallet receives; Total is what was charged.
type Deposit struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	WalletID  uuid.UUID       `json:"wallet_id"`
	Currency  Currency        `json:"currency"`
	SubTotal  decimal.Decimal `json:"sub_total"`
	Fee       decimal.Decimal `json:"fee"`
	Total     decimal.Decimal `json:"total"`
	Reference string          `json:"reference"`
	Status    DepositStatus   `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsCompleted reports whether the deposit has been credited.
func (d *Deposit) IsCompleted() bool {
	return d.Status == DepositStatusCompleted
}
