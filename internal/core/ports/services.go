package ports

import (
	"context"
	"errors"
	"time"

	"fx-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gateway clients classify every failure as one of these so the engine can
// tell a definite refusal from a call whose effect is unknown.
var (
	// ErrGatewayRejected means the provider answered and did not perform the
	// operation. It is safe to mark the attempt failed.
	ErrGatewayRejected = errors.New("gateway rejected request")
	// ErrOutcomeUnknown means the provider may have performed the operation
	// (timeout, 5xx, unreadable success body). It must not be retried blindly.
	ErrOutcomeUnknown = errors.New("gateway outcome unknown")
	// ErrUnknownResource accompanies ErrGatewayRejected when the provider
	// has no record of the requested resource.
	ErrUnknownResource = errors.New("gateway has no such resource")
)

// ErrDuplicate is returned by repositories when an insert hits a unique
// constraint.
var ErrDuplicate = errors.New("duplicate record")

// RateQuote is a provider-locked exchange rate.
type RateQuote struct {
	Rate      decimal.Decimal
	Reference string
}

// RateGateway locks and executes FX conversions at the provider.
type RateGateway interface {
	QuoteRate(ctx context.Context, source, target domain.Currency, amountMinor int64) (*RateQuote, error)
	ExecuteExchange(ctx context.Context, reference string) error
}

// CollectionRequest initializes a hosted payment collection.
type CollectionRequest struct {
	Email       string
	AmountMinor int64
	Currency    domain.Currency
	Reference   string
}

// CollectionReceipt is the provider's record of a collection.
type CollectionReceipt struct {
	Paid        bool
	AmountMinor int64
	Currency    domain.Currency
}

// CollectionGateway starts and verifies hosted payment collections.
type CollectionGateway interface {
	InitializeCollection(ctx context.Context, req CollectionRequest) (paymentLink string, err error)
	// VerifyCollection returns an unpaid receipt for references the
	// provider does not know.
	VerifyCollection(ctx context.Context, reference string) (*CollectionReceipt, error)
}

// CardIssueRequest asks the issuer for a new virtual card.
type CardIssueRequest struct {
	CustomerID string
	Currency   domain.Currency
	Brand      string
	Pin        string
}

// IssuedCard is the issuer's view of a card, including sensitive fields.
type IssuedCard struct {
	ID        string
	Name      string
	MaskedPAN string
	Number    string
	Expiry    string
	CVV       string
	Type      string
	Issuer    string
	Currency  domain.Currency
	Status    string
}

// FundingState is the issuer's view of a card top-up.
type FundingState string

const (
	FundingSucceeded FundingState = "SUCCEEDED"
	FundingFailed    FundingState = "FAILED"
	// FundingPending covers top-ups the issuer has not finished.
	FundingPending FundingState = "PENDING"
)

// CardGateway issues and funds virtual cards.
type CardGateway interface {
	// CreateCard returns the issuer's card reference; the card itself arrives
	// by webhook.
	CreateCard(ctx context.Context, req CardIssueRequest) (cardReference string, err error)
	GetCard(ctx context.Context, cardReference string) (*IssuedCard, error)
	FundCard(ctx context.Context, providerCardID string, amountMinor int64, reference string) error
	VerifyCardFunding(ctx context.Context, reference string) (FundingState, error)
	FreezeCard(ctx context.Context, providerCardID string) error
	UnfreezeCard(ctx context.Context, providerCardID string) error
}

// QuoteCache holds unredeemed quotes with a per-key expiry.
type QuoteCache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error) // Returns nil, nil when absent
	Delete(ctx context.Context, key string) error
}

// ProcessedEventStore remembers webhook deliveries that were fully handled,
// letting redeliveries skip the store round-trips.
type ProcessedEventStore interface {
	IsProcessed(ctx context.Context, key string) (bool, error)
	// MarkProcessed returns false if the key was already marked.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// EventPublisher publishes committed ledger events. Failures never roll back
// a settlement.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// SignatureService verifies provider webhook signatures (HMAC-SHA512).
type SignatureService interface {
	Sign(secretKey string, payload []byte) string
	Verify(secretKey string, payload []byte, signature string) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID, email, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// RoleAdmin may resolve unknown settlement outcomes.
const RoleAdmin = "admin"

// --- Service Ports (Business Logic) ---

// QuoteRequest holds validated input for quote generation.
type QuoteRequest struct {
	UserID         uuid.UUID
	SourceCurrency domain.Currency
	TargetCurrency domain.Currency
	Amount         decimal.Decimal
}

// FundWalletRequest holds validated input for wallet funding.
type FundWalletRequest struct {
	UserID   uuid.UUID
	Email    string
	Currency domain.Currency
	Amount   decimal.Decimal
}

// FundWalletResult is returned once the hosted collection is initialized.
type FundWalletResult struct {
	PaymentLink string    `json:"payment_link"`
	DepositID   uuid.UUID `json:"deposit_id"`
	Reference   string    `json:"reference"`
}

// FundCardRequest holds validated input for a card top-up.
type FundCardRequest struct {
	UserID uuid.UUID
	CardID uuid.UUID
	Amount decimal.Decimal
}

// SettlementService is the transaction consistency engine.
type SettlementService interface {
	GenerateQuote(ctx context.Context, req QuoteRequest) (*domain.Quote, error)
	ExchangeCurrency(ctx context.Context, userID uuid.UUID, reference string) (*domain.ExchangeTransaction, error)
	FundWallet(ctx context.Context, req FundWalletRequest) (*FundWalletResult, error)
	ReconcileDeposit(ctx context.Context, reference string) error
	FundCard(ctx context.Context, req FundCardRequest) (*domain.VirtualCardTransaction, error)
	SettleCardFunding(ctx context.Context, reference string, succeeded bool) error
	ResolveUnknownOutcome(ctx context.Context, journalID uuid.UUID, executed bool) (*domain.JournalEntry, error)
	// SweepExecuted applies journal entries the provider executed but the
	// ledger never recorded. It returns how many were applied.
	SweepExecuted(ctx context.Context) (int, error)
}

// WalletService manages wallet lifecycle.
type WalletService interface {
	CreateWallet(ctx context.Context, userID uuid.UUID, currency string) (*domain.Wallet, error)
	CreateDefaultWallets(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	ListWallets(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
}

// HistoryService serves paginated transaction history.
type HistoryService interface {
	ListDeposits(ctx context.Context, userID uuid.UUID, page PageParams) ([]domain.Deposit, int64, error)
	ListExchanges(ctx context.Context, userID uuid.UUID, page PageParams) ([]domain.ExchangeTransaction, int64, error)
	ListCardTransactions(ctx context.Context, userID uuid.UUID, page PageParams) ([]domain.VirtualCardTransaction, int64, error)
}

// RequestCardInput holds validated input for card issuance.
type RequestCardInput struct {
	UserID   uuid.UUID
	Currency domain.Currency
	Brand    string
	Pin      string
}

// CardService manages virtual card issuance.
type CardService interface {
	RequestCard(ctx context.Context, req RequestCardInput) (*domain.CardRequest, error)
	ListCards(ctx context.Context, userID uuid.UUID) ([]domain.VirtualCard, error)
	FreezeCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.VirtualCard, error)
	UnfreezeCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.VirtualCard, error)
	HandleCardCreated(ctx context.Context, cardReference string) (*domain.VirtualCard, error)
	HandleCardCreationFailed(ctx context.Context, cardReference string) error
}

// WebhookService routes inbound provider events.
type WebhookService interface {
	Handle(ctx context.Context, event domain.WebhookEvent) error
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
