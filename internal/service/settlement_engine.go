package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SettlementDeps are the collaborators of the settlement engine.
type SettlementDeps struct {
	Wallets      ports.WalletRepository
	Exchanges    ports.ExchangeRepository
	Deposits     ports.DepositRepository
	Cards        ports.CardRepository
	CardTxns     ports.CardTransactionRepository
	Journal      ports.JournalRepository
	Pricing      ports.PricingRepository
	Transactor   ports.DBTransactor
	Quotes       ports.QuoteCache
	Rates        ports.RateGateway
	Collections  ports.CollectionGateway
	CardGateway  ports.CardGateway
	Publisher    ports.EventPublisher
	FeeEstimator *FeeEstimator
	Metrics      *Metrics
}

// SettlementConfig tunes the engine.
type SettlementConfig struct {
	QuoteTTL      time.Duration
	DefaultMargin decimal.Decimal
	// SweepGrace is how long a journal entry may sit in a transient status
	// before the sweeper acts on it.
	SweepGrace     time.Duration
	SweepBatchSize int
}

// SettlementEngine implements ports.SettlementService. It moves value between
// the ledger and the providers so that every external effect is applied to
// the ledger exactly once, or left visibly unresolved.
type SettlementEngine struct {
	wallets     ports.WalletRepository
	exchanges   ports.ExchangeRepository
	deposits    ports.DepositRepository
	cards       ports.CardRepository
	cardTxns    ports.CardTransactionRepository
	journal     ports.JournalRepository
	pricing     ports.PricingRepository
	transactor  ports.DBTransactor
	quotes      ports.QuoteCache
	rates       ports.RateGateway
	collections ports.CollectionGateway
	cardGateway ports.CardGateway
	publisher   ports.EventPublisher
	fees        *FeeEstimator
	metrics     *Metrics
	cfg         SettlementConfig
	log         zerolog.Logger

	now          func() time.Time
	newReference func() string
}

// NewSettlementEngine creates a new SettlementEngine.
func NewSettlementEngine(deps SettlementDeps, cfg SettlementConfig, log zerolog.Logger) *SettlementEngine {
	if cfg.SweepBatchSize <= 0 {
		cfg.SweepBatchSize = 100
	}
	return &SettlementEngine{
		wallets:      deps.Wallets,
		exchanges:    deps.Exchanges,
		deposits:     deps.Deposits,
		cards:        deps.Cards,
		cardTxns:     deps.CardTxns,
		journal:      deps.Journal,
		pricing:      deps.Pricing,
		transactor:   deps.Transactor,
		quotes:       deps.Quotes,
		rates:        deps.Rates,
		collections:  deps.Collections,
		cardGateway:  deps.CardGateway,
		publisher:    deps.Publisher,
		fees:         deps.FeeEstimator,
		metrics:      deps.Metrics,
		cfg:          cfg,
		log:          log.With().Str("component", "settlement").Logger(),
		now:          func() time.Time { return time.Now().UTC() },
		newReference: func() string { return uuid.NewString() },
	}
}

var _ ports.SettlementService = (*SettlementEngine)(nil)

// errAlreadySettled aborts a ledger transaction whose status guard matched no
// row because another delivery or worker got there first.
var errAlreadySettled = errors.New("already settled")

// inTx runs fn inside one ledger transaction.
func (e *SettlementEngine) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return runInTx(ctx, e.transactor, fn)
}

// runInTx commits fn's writes together, rolling back on any error.
func runInTx(ctx context.Context, transactor ports.DBTransactor, fn func(tx pgx.Tx) error) error {
	tx, err := transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// gatewayFailure maps a classified gateway error onto the external error
// codes. Only an explicit rejection is definite.
func gatewayFailure(err error) *apperror.AppError {
	if errors.Is(err, ports.ErrGatewayRejected) {
		return apperror.ErrGatewayRejected(err)
	}
	return apperror.ErrUnknownOutcome(err)
}

// walletFor resolves the user's wallet in currency, NotFound naming the
// currency when it is missing.
func (e *SettlementEngine) walletFor(ctx context.Context, userID uuid.UUID, currency domain.Currency) (*domain.Wallet, error) {
	wallet, err := e.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get %s wallet: %w", currency, err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound(fmt.Sprintf("%s wallet", currency))
	}
	return wallet, nil
}

// publish emits a ledger event for a committed change.
func (e *SettlementEngine) publish(ctx context.Context, eventType, reference string, userID uuid.UUID, payload any) {
	publishLedgerEvent(ctx, e.publisher, e.log, domain.NewLedgerEvent(eventType, reference, userID, payload, e.now()))
}

// publishLedgerEvent never fails the caller: the change is already committed.
func publishLedgerEvent(ctx context.Context, publisher ports.EventPublisher, log zerolog.Logger, event domain.LedgerEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		log.Warn().Err(err).
			Str("event_type", event.Type).
			Str("reference", event.Reference).
			Msg("failed to publish ledger event")
	}
}

func (e *SettlementEngine) observe(kind, outcome string, start time.Time) {
	e.metrics.ObserveSettlement(kind, outcome, time.Since(start))
}

// outcomeLabel reduces an engine error to a metrics label.
func outcomeLabel(err error) string {
	var appErr *apperror.AppError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &appErr):
		return appErr.Code
	default:
		return "error"
	}
}
