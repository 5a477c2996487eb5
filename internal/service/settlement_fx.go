package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const kindFX = "fx"

// errDebitRefused means the provider executed an exchange but the source
// wallet can no longer cover it locally.
var errDebitRefused = errors.New("source wallet cannot cover executed exchange")

// GenerateQuote locks a provider rate, applies the ledger margin and caches
// the result for redemption.
func (e *SettlementEngine) GenerateQuote(ctx context.Context, req ports.QuoteRequest) (*domain.Quote, error) {
	if !req.SourceCurrency.IsSupported() || !req.TargetCurrency.IsSupported() {
		return nil, apperror.ErrUnsupportedCurrency()
	}
	if req.SourceCurrency == req.TargetCurrency {
		return nil, apperror.Validation("Source and target currencies must differ")
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.Validation("Amount must be greater than zero")
	}
	amountMinor, err := domain.ToMinorUnits(req.Amount)
	if err != nil {
		return nil, apperror.Validation("Amount must have at most 2 decimal places")
	}

	locked, err := e.rates.QuoteRate(ctx, req.SourceCurrency, req.TargetCurrency, amountMinor)
	if err != nil {
		// Nothing has moved yet, so a failed quote is never ambiguous.
		return nil, apperror.ErrGatewayRejected(err)
	}

	margin, err := e.exchangeMargin(ctx)
	if err != nil {
		return nil, err
	}

	rate := domain.EffectiveRate(locked.Rate, margin)
	targetAmount := domain.RoundMoney(req.Amount.Mul(rate))
	if !targetAmount.IsPositive() {
		return nil, apperror.Validation("Amount is too small to exchange")
	}

	quote := &domain.Quote{
		Reference:      locked.Reference,
		UserID:         req.UserID,
		SourceCurrency: req.SourceCurrency,
		TargetCurrency: req.TargetCurrency,
		SourceAmount:   req.Amount,
		TargetAmount:   targetAmount,
		ExchangeRate:   rate,
	}

	raw, err := json.Marshal(quote)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal quote: %w", err))
	}
	if err := e.quotes.Set(ctx, domain.QuoteCacheKey(quote.Reference), raw, e.cfg.QuoteTTL); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("cache quote: %w", err))
	}

	e.metrics.IncQuote(string(req.SourceCurrency), string(req.TargetCurrency))
	e.log.Info().
		Str("reference", quote.Reference).
		Str("user_id", req.UserID.String()).
		Str("pair", fmt.Sprintf("%s/%s", req.SourceCurrency, req.TargetCurrency)).
		Msg("fx quote issued")
	return quote, nil
}

func (e *SettlementEngine) exchangeMargin(ctx context.Context) (decimal.Decimal, error) {
	margin, found, err := e.pricing.GetExchangeMargin(ctx)
	if err != nil {
		return decimal.Zero, apperror.InternalError(fmt.Errorf("get exchange margin: %w", err))
	}
	if !found {
		return e.cfg.DefaultMargin, nil
	}
	return margin, nil
}

// ExchangeCurrency redeems a quote. The quote is burned whatever the result,
// so a quote is executed at the provider at most once.
func (e *SettlementEngine) ExchangeCurrency(ctx context.Context, userID uuid.UUID, reference string) (ex *domain.ExchangeTransaction, err error) {
	start := time.Now()
	defer func() { e.observe(kindFX, outcomeLabel(err), start) }()

	key := domain.QuoteCacheKey(reference)
	raw, err := e.quotes.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get quote: %w", err))
	}
	if raw == nil {
		return nil, apperror.ErrNotFound("FX Quote")
	}
	defer e.burnQuote(ctx, key)

	var quote domain.Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("decode quote: %w", err))
	}
	if quote.UserID != userID {
		return nil, apperror.ErrNotFound("FX Quote")
	}

	source, err := e.walletFor(ctx, userID, quote.SourceCurrency)
	if err != nil {
		return nil, err
	}
	target, err := e.walletFor(ctx, userID, quote.TargetCurrency)
	if err != nil {
		return nil, err
	}
	if !source.HasSufficient(quote.SourceAmount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	entry := domain.NewJournalEntry(&quote, source, target, e.now())
	if err := e.journal.Create(ctx, entry); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			// A concurrent redemption of the same quote owns the journal entry.
			return nil, apperror.ErrNotFound("FX Quote")
		}
		return nil, apperror.InternalError(fmt.Errorf("create journal entry: %w", err))
	}

	log := e.log.With().Str("reference", reference).Str("journal_id", entry.ID.String()).Logger()

	if gwErr := e.rates.ExecuteExchange(ctx, reference); gwErr != nil {
		failure := gatewayFailure(gwErr)
		to := domain.JournalStatusUnknown
		if failure.Code == "EXT_001" {
			to = domain.JournalStatusRejected
		}
		if _, err := e.journal.Transition(context.WithoutCancel(ctx), nil, entry.ID, domain.JournalStatusInitiated, to, gwErr.Error()); err != nil {
			log.Error().Err(err).Str("status", string(to)).Msg("failed to record exchange outcome")
		}
		if to == domain.JournalStatusUnknown {
			log.Error().Err(gwErr).Msg("fx execution outcome unknown, manual reconciliation required")
			entry.Status = to
			entry.LastError = gwErr.Error()
			e.publish(ctx, domain.EventUnknownOutcome, reference, userID, entry)
		} else {
			log.Warn().Err(gwErr).Msg("fx execution rejected by provider")
		}
		return nil, failure
	}

	// From here on the provider has converted the funds. Every failure leaves
	// the entry EXECUTED for the sweeper.
	moved, err := e.journal.Transition(context.WithoutCancel(ctx), nil, entry.ID, domain.JournalStatusInitiated, domain.JournalStatusExecuted, "")
	if err != nil || !moved {
		log.Error().Err(err).Bool("moved", moved).Msg("executed exchange not recorded in journal")
		return nil, apperror.ErrSettlementPending(fmt.Errorf("mark journal executed: %w", errors.Join(err, errAlreadySettled)))
	}
	entry.Status = domain.JournalStatusExecuted

	return e.applyExchange(context.WithoutCancel(ctx), entry)
}

// burnQuote invalidates a quote once redemption has been attempted.
func (e *SettlementEngine) burnQuote(ctx context.Context, key string) {
	if err := e.quotes.Delete(context.WithoutCancel(ctx), key); err != nil {
		e.log.Error().Err(err).Str("key", key).Msg("failed to delete redeemed quote")
	}
}

// applyExchange books an EXECUTED entry: debit, credit, the exchange record
// and the APPLIED transition commit together or not at all.
func (e *SettlementEngine) applyExchange(ctx context.Context, entry *domain.JournalEntry) (*domain.ExchangeTransaction, error) {
	var exchange *domain.ExchangeTransaction
	err := e.inTx(ctx, func(tx pgx.Tx) error {
		moved, err := e.journal.Transition(ctx, tx, entry.ID, domain.JournalStatusExecuted, domain.JournalStatusApplied, "")
		if err != nil {
			return fmt.Errorf("mark journal applied: %w", err)
		}
		if !moved {
			return errAlreadySettled
		}

		ok, err := e.wallets.IncrementBalance(ctx, tx, entry.SourceWalletID, entry.SourceAmount.Neg())
		if err != nil {
			return fmt.Errorf("debit source wallet: %w", err)
		}
		if !ok {
			return errDebitRefused
		}
		ok, err = e.wallets.IncrementBalance(ctx, tx, entry.TargetWalletID, entry.TargetAmount)
		if err != nil {
			return fmt.Errorf("credit target wallet: %w", err)
		}
		if !ok {
			return fmt.Errorf("credit target wallet %s: wallet missing", entry.TargetWalletID)
		}

		exchange = entry.Exchange(e.now())
		if err := e.exchanges.Create(ctx, tx, exchange); err != nil {
			return fmt.Errorf("record exchange: %w", err)
		}
		return nil
	})

	log := e.log.With().Str("reference", entry.Reference).Str("journal_id", entry.ID.String()).Logger()
	switch {
	case err == nil:
		entry.Status = domain.JournalStatusApplied
		log.Info().
			Str("source", entry.SourceAmount.String()+" "+string(entry.SourceCurrency)).
			Str("target", entry.TargetAmount.String()+" "+string(entry.TargetCurrency)).
			Msg("fx exchange settled")
		e.publish(ctx, domain.EventExchangeCompleted, entry.Reference, entry.UserID, exchange)
		return exchange, nil

	case errors.Is(err, errAlreadySettled):
		existing, getErr := e.exchanges.GetByReference(ctx, entry.Reference)
		if getErr != nil || existing == nil {
			return nil, apperror.ErrSettlementPending(errors.Join(err, getErr))
		}
		return existing, nil

	default:
		if errors.Is(err, errDebitRefused) {
			log.Error().Msg("provider executed exchange but source wallet no longer covers it")
		} else {
			log.Error().Err(err).Msg("failed to apply executed exchange")
		}
		// Same-status transition only records the failure for operators.
		if _, noteErr := e.journal.Transition(ctx, nil, entry.ID, domain.JournalStatusExecuted, domain.JournalStatusExecuted, err.Error()); noteErr != nil {
			log.Warn().Err(noteErr).Msg("failed to record apply failure")
		}
		return nil, apperror.ErrSettlementPending(err)
	}
}

// ResolveUnknownOutcome records an operator's finding for an UNKNOWN entry.
// An executed exchange is applied immediately; the sweeper retries it if that
// fails.
func (e *SettlementEngine) ResolveUnknownOutcome(ctx context.Context, journalID uuid.UUID, executed bool) (*domain.JournalEntry, error) {
	entry, err := e.journal.GetByID(ctx, journalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get journal entry: %w", err))
	}
	if entry == nil {
		return nil, apperror.ErrNotFound("Settlement")
	}
	if entry.Status != domain.JournalStatusUnknown {
		return nil, apperror.Validation(fmt.Sprintf("Settlement is %s, not UNKNOWN", entry.Status))
	}

	to := domain.JournalStatusRejected
	if executed {
		to = domain.JournalStatusExecuted
	}
	moved, err := e.journal.Transition(ctx, nil, entry.ID, domain.JournalStatusUnknown, to, "resolved by operator")
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve journal entry: %w", err))
	}
	if !moved {
		return nil, apperror.Validation("Settlement was resolved concurrently")
	}
	entry.Status = to
	entry.LastError = "resolved by operator"

	e.log.Info().
		Str("journal_id", entry.ID.String()).
		Str("reference", entry.Reference).
		Bool("executed", executed).
		Msg("unknown settlement outcome resolved")

	if executed {
		if _, err := e.applyExchange(ctx, entry); err != nil {
			return entry, err
		}
	}
	return entry, nil
}
