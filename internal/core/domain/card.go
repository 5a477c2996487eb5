package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardHolder links a user to their account at the card issuer.
type CardHolder struct {
	UserID     uuid.UUID `json:"user_id"`
	CustomerID string    `json:"customer_id"`
	Tier       int       `json:"tier"`
	CreatedAt  time.Time `json:"created_at"`
}

type CardRequestStatus string

const (
	CardRequestStatusPending CardRequestStatus = "PENDING"
	CardRequestStatusSuccess CardRequestStatus = "SUCCESS"
	CardRequestStatusFailed  CardRequestStatus = "FAILED"
)

// CardRequest records an issuance in flight. The creation fee is debited
// when the request is created and refunded if issuance fails.
type CardRequest struct {
	ID            uuid.UUID         `json:"id"`
	UserID        uuid.UUID         `json:"user_id"`
	CardReference string            `json:"card_reference"`
	Currency      Currency          `json:"currency"`
	Brand         string            `json:"brand"`
	FeeAmount     decimal.Decimal   `json:"fee_amount"`
	FeeWalletID   uuid.UUID         `json:"-"`
	Status        CardRequestStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type CardStatus string

const (
	CardStatusActive   CardStatus = "ACTIVE"
	CardStatusDisabled CardStatus = "DISABLED"
)

// VirtualCard is an issued card. The full PAN and CVV are only ever held
// encrypted.
type VirtualCard struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	CardReference string          `json:"card_reference"`
	ProviderID    string          `json:"card_id"`
	Name          string          `json:"name"`
	MaskedPAN     string          `json:"masked_pan"`
	NumberEnc     string          `json:"-"`
	CVVEnc        string          `json:"-"`
	Expiry        string          `json:"expiry"`
	Type          string          `json:"type"`
	Issuer        string          `json:"issuer"`
	Currency      Currency        `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	Status        CardStatus      `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CardTransactionStatus string

const (
	CardTransactionStatusPending   CardTransactionStatus = "PENDING"
	CardTransactionStatusCompleted CardTransactionStatus = "COMPLETED"
	CardTransactionStatusFailed    CardTransactionStatus = "FAILED"
)

// CardTopUpDescription labels wallet-to-card funding.
const CardTopUpDescription = "Top up"

// VirtualCardTransaction is a card top-up. It is created PENDING before the
// issuer is called and settles to COMPLETED or FAILED exactly once.
type VirtualCardTransaction struct {
	ID          uuid.UUID             `json:"id"`
	CardID      uuid.UUID             `json:"card_id"`
	UserID      uuid.UUID             `json:"user_id"`
	WalletID    uuid.UUID             `json:"wallet_id"`
	Amount      decimal.Decimal       `json:"amount"`
	Currency    Currency              `json:"currency"`
	Description string                `json:"description"`
	Reference   string                `json:"reference"`
	Status      CardTransactionStatus `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// IsTerminal reports whether the top-up has settled.
func (t *VirtualCardTransaction) IsTerminal() bool {
	return t.Status == CardTransactionStatusCompleted || t.Status == CardTransactionStatusFailed
}
