package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionQuote          AuditAction = "FX_QUOTE"
	AuditActionExchange       AuditAction = "FX_EXCHANGE"
	AuditActionCreateWallet   AuditAction = "CREATE_WALLET"
	AuditActionFundWallet     AuditAction = "FUND_WALLET"
	AuditActionRequestCard    AuditAction = "REQUEST_CARD"
	AuditActionFundCard       AuditAction = "FUND_CARD"
	AuditActionResolveJournal AuditAction = "RESOLVE_SETTLEMENT"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	UserID       *uuid.UUID  `json:"user_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
