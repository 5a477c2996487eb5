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
)

const kindCardFunding = "card_funding"

// FundCard moves value from the user's wallet onto a virtual card. The
// PENDING card transaction is the journal for the provider call.
func (e *SettlementEngine) FundCard(ctx context.Context, req ports.FundCardRequest) (txn *domain.VirtualCardTransaction, err error) {
	start := time.Now()
	defer func() { e.observe(kindCardFunding, outcomeLabel(err), start) }()

	if !req.Amount.IsPositive() {
		return nil, apperror.Validation("Amount must be greater than zero")
	}
	amountMinor, err := domain.ToMinorUnits(req.Amount)
	if err != nil {
		return nil, apperror.Validation("Amount must have at most 2 decimal places")
	}

	card, err := e.cards.GetCardByID(ctx, req.CardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card: %w", err))
	}
	if card == nil || card.UserID != req.UserID {
		return nil, apperror.ErrNotFound("Card")
	}
	if card.Status == domain.CardStatusDisabled {
		return nil, apperror.Validation("Card is frozen")
	}

	wallet, err := e.walletFor(ctx, req.UserID, card.Currency)
	if err != nil {
		return nil, err
	}
	if !wallet.HasSufficient(req.Amount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	now := e.now()
	txn = &domain.VirtualCardTransaction{
		ID:          uuid.New(),
		CardID:      card.ID,
		UserID:      req.UserID,
		WalletID:    wallet.ID,
		Amount:      req.Amount,
		Currency:    card.Currency,
		Description: domain.CardTopUpDescription,
		Reference:   e.newReference(),
		Status:      domain.CardTransactionStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := e.cardTxns.Create(ctx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create card transaction: %w", err))
	}

	log := e.log.With().Str("reference", txn.Reference).Str("card_id", card.ID.String()).Logger()

	if gwErr := e.cardGateway.FundCard(ctx, card.ProviderID, amountMinor, txn.Reference); gwErr != nil {
		failure := gatewayFailure(gwErr)
		if failure.Code == "EXT_001" {
			if _, err := e.cardTxns.TransitionStatus(context.WithoutCancel(ctx), nil, txn.ID, domain.CardTransactionStatusFailed); err != nil {
				log.Error().Err(err).Msg("failed to mark rejected card funding")
			}
			log.Warn().Err(gwErr).Msg("card funding rejected by provider")
			return nil, failure
		}
		// Left PENDING: the funding webhook settles it either way.
		log.Error().Err(gwErr).Msg("card funding outcome unknown, awaiting provider webhook")
		e.publish(ctx, domain.EventUnknownOutcome, txn.Reference, txn.UserID, txn)
		return nil, failure
	}

	if err := e.applyCardFunding(context.WithoutCancel(ctx), txn); err != nil {
		if errors.Is(err, errAlreadySettled) {
			return e.settledCardTxn(ctx, txn.Reference)
		}
		return nil, err
	}
	return txn, nil
}

// SettleCardFunding settles a PENDING top-up once the issuer reports it
// final. The webhook's claim only triggers the check: the issuer's own record
// decides whether the top-up completes or fails, and an unfinished top-up
// stays PENDING. Redeliveries are no-ops.
func (e *SettlementEngine) SettleCardFunding(ctx context.Context, reference string, succeeded bool) (err error) {
	start := time.Now()
	defer func() { e.observe(kindCardFunding, outcomeLabel(err), start) }()

	txn, err := e.cardTxns.GetByReference(ctx, reference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get card transaction: %w", err))
	}
	if txn == nil {
		return apperror.ErrNotFound("Card transaction")
	}
	if txn.IsTerminal() {
		return nil
	}

	state, err := e.cardGateway.VerifyCardFunding(ctx, reference)
	if err != nil {
		e.log.Warn().Err(err).Str("reference", reference).Msg("card funding verification failed")
		return apperror.ErrPaymentUnverified()
	}
	if (state == ports.FundingSucceeded) != succeeded && state != ports.FundingPending {
		e.log.Warn().
			Str("reference", reference).
			Bool("claimed_success", succeeded).
			Str("issuer_state", string(state)).
			Msg("card funding webhook disagrees with issuer")
	}

	switch state {
	case ports.FundingSucceeded:
		err = e.applyCardFunding(ctx, txn)
		if errors.Is(err, errAlreadySettled) {
			return nil
		}
		return err
	case ports.FundingFailed:
		moved, err := e.cardTxns.TransitionStatus(ctx, nil, txn.ID, domain.CardTransactionStatusFailed)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("fail card transaction: %w", err))
		}
		if moved {
			e.log.Info().Str("reference", reference).Msg("card funding failed at provider")
		}
		return nil
	default:
		return apperror.ErrPaymentUnverified()
	}
}

// applyCardFunding debits the wallet, credits the card and completes the
// top-up in one transaction.
func (e *SettlementEngine) applyCardFunding(ctx context.Context, txn *domain.VirtualCardTransaction) error {
	err := e.inTx(ctx, func(tx pgx.Tx) error {
		moved, err := e.cardTxns.TransitionStatus(ctx, tx, txn.ID, domain.CardTransactionStatusCompleted)
		if err != nil {
			return fmt.Errorf("complete card transaction: %w", err)
		}
		if !moved {
			return errAlreadySettled
		}
		ok, err := e.wallets.IncrementBalance(ctx, tx, txn.WalletID, txn.Amount.Neg())
		if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}
		if !ok {
			return errDebitRefused
		}
		if err := e.cards.IncrementCardBalance(ctx, tx, txn.CardID, txn.Amount); err != nil {
			return fmt.Errorf("credit card: %w", err)
		}
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, errAlreadySettled):
		return err
	default:
		e.log.Error().Err(err).Str("reference", txn.Reference).Msg("failed to apply funded card top-up")
		return apperror.ErrSettlementPending(err)
	}

	txn.Status = domain.CardTransactionStatusCompleted
	e.log.Info().Str("reference", txn.Reference).Str("card_id", txn.CardID.String()).Msg("card funded")
	e.publish(ctx, domain.EventCardFunded, txn.Reference, txn.UserID, txn)
	return nil
}

func (e *SettlementEngine) settledCardTxn(ctx context.Context, reference string) (*domain.VirtualCardTransaction, error) {
	txn, err := e.cardTxns.GetByReference(ctx, reference)
	if err != nil || txn == nil {
		return nil, apperror.ErrSettlementPending(errors.Join(errAlreadySettled, err))
	}
	return txn, nil
}
