package ports

import (
	"context"
	"time"

	"fx-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DefaultPageSize is the history page size.
const DefaultPageSize = 10

// PageParams is 1-based pagination for history queries.
type PageParams struct {
	Page     int
	PageSize int
}

// Normalize clamps the params to a valid page.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset is the number of rows to skip.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx run inside the caller's ledger transaction.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByUserAndCurrency(ctx context.Context, userID uuid.UUID, currency domain.Currency) (*domain.Wallet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	// IncrementBalance atomically adds delta (which may be negative). It
	// returns false, without writing, when the wallet is missing or the
	// result would be negative.
	IncrementBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, delta decimal.Decimal) (bool, error)
}

// ExchangeRepository persists settled FX exchanges.
type ExchangeRepository interface {
	Create(ctx context.Context, tx pgx.Tx, exchange *domain.ExchangeTransaction) error
	GetByReference(ctx context.Context, reference string) (*domain.ExchangeTransaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page PageParams) ([]domain.ExchangeTransaction, int64, error)
}

// DepositRepository persists wallet funding attempts.
type DepositRepository interface {
	Create(ctx context.Context, deposit *domain.Deposit) error
	GetByReference(ctx context.Context, reference string) (*domain.Deposit, error)
	// MarkCompleted moves a PENDING deposit to COMPLETED. It returns false if
	// the deposit was not PENDING, so a concurrent duplicate becomes a no-op.
	MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page PageParams) ([]domain.Deposit, int64, error)
}

// CardRepository persists card holders, issuance requests and issued cards.
type CardRepository interface {
	GetHolder(ctx context.Context, userID uuid.UUID) (*domain.CardHolder, error)

	CreateRequest(ctx context.Context, tx pgx.Tx, req *domain.CardRequest) error
	GetRequestByReference(ctx context.Context, cardReference string) (*domain.CardRequest, error)
	// TransitionRequest moves a request from one status to another and reports
	// whether this call performed the move.
	TransitionRequest(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.CardRequestStatus) (bool, error)

	CreateCard(ctx context.Context, tx pgx.Tx, card *domain.VirtualCard) error
	GetCardByID(ctx context.Context, id uuid.UUID) (*domain.VirtualCard, error)
	GetCardByReference(ctx context.Context, cardReference string) (*domain.VirtualCard, error)
	ListCardsByUser(ctx context.Context, userID uuid.UUID) ([]domain.VirtualCard, error)
	IncrementCardBalance(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, delta decimal.Decimal) error
	UpdateCardStatus(ctx context.Context, cardID uuid.UUID, status domain.CardStatus) error
}

// CardTransactionRepository persists card top-ups.
type CardTransactionRepository interface {
	Create(ctx context.Context, txn *domain.VirtualCardTransaction) error
	GetByReference(ctx context.Context, reference string) (*domain.VirtualCardTransaction, error)
	// TransitionStatus moves a PENDING top-up to a terminal status and reports
	// whether this call performed the move.
	TransitionStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, to domain.CardTransactionStatus) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page PageParams) ([]domain.VirtualCardTransaction, int64, error)
}

// JournalRepository persists the FX settlement journal.
type JournalRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error)
	// Transition performs a compare-and-set on status. tx may be nil to run
	// outside a ledger transaction.
	Transition(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.JournalStatus, lastError string) (bool, error)
	// ListByStatus returns entries last updated before olderThan, oldest first.
	ListByStatus(ctx context.Context, status domain.JournalStatus, olderThan time.Time, limit int) ([]domain.JournalEntry, error)
	CountByStatus(ctx context.Context, status domain.JournalStatus) (int64, error)
}

// PricingRepository reads margins and fees from the pricing table.
// Missing rows return found=false.
type PricingRepository interface {
	GetExchangeMargin(ctx context.Context) (margin decimal.Decimal, found bool, err error)
	GetFee(ctx context.Context, name string) (fee decimal.Decimal, currency domain.Currency, found bool, err error)
}

// AuditRepository defines persistence for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
