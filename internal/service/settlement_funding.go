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

const kindDeposit = "deposit"

// FundWallet starts a hosted collection for req.Amount net of provider fees.
// The wallet is only credited when the collection is reconciled.
func (e *SettlementEngine) FundWallet(ctx context.Context, req ports.FundWalletRequest) (*ports.FundWalletResult, error) {
	if !req.Currency.IsSupported() {
		return nil, apperror.ErrUnsupportedCurrency()
	}
	if !req.Amount.IsPositive() {
		return nil, apperror.Validation("Amount must be greater than zero")
	}
	if _, err := domain.ToMinorUnits(req.Amount); err != nil {
		return nil, apperror.Validation("Amount must have at most 2 decimal places")
	}

	wallet, err := e.walletFor(ctx, req.UserID, req.Currency)
	if err != nil {
		return nil, err
	}

	reference := e.newReference()
	gross, err := e.fees.PayableAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	grossMinor, err := domain.ToMinorUnits(gross)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("payable amount: %w", err))
	}

	link, err := e.collections.InitializeCollection(ctx, ports.CollectionRequest{
		Email:       req.Email,
		AmountMinor: grossMinor,
		Currency:    req.Currency,
		Reference:   reference,
	})
	if err != nil {
		// An orphaned hosted page without a deposit can never credit anything.
		return nil, apperror.ErrGatewayRejected(err)
	}

	now := e.now()
	deposit := &domain.Deposit{
		ID:        uuid.New(),
		UserID:    req.UserID,
		WalletID:  wallet.ID,
		Currency:  req.Currency,
		SubTotal:  req.Amount,
		Fee:       gross.Sub(req.Amount),
		Total:     gross,
		Reference: reference,
		Status:    domain.DepositStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := e.deposits.Create(ctx, deposit); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create deposit: %w", err))
	}

	e.log.Info().
		Str("reference", reference).
		Str("deposit_id", deposit.ID.String()).
		Str("currency", string(req.Currency)).
		Msg("wallet funding initialized")

	return &ports.FundWalletResult{
		PaymentLink: link,
		DepositID:   deposit.ID,
		Reference:   reference,
	}, nil
}

// ReconcileDeposit credits a collected deposit's net amount exactly once,
// after verifying the collection with the provider.
func (e *SettlementEngine) ReconcileDeposit(ctx context.Context, reference string) (err error) {
	start := time.Now()
	defer func() { e.observe(kindDeposit, outcomeLabel(err), start) }()

	deposit, err := e.deposits.GetByReference(ctx, reference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get deposit: %w", err))
	}
	if deposit == nil {
		return apperror.ErrNotFound("Deposit")
	}
	if deposit.IsCompleted() {
		return nil
	}

	receipt, err := e.collections.VerifyCollection(ctx, reference)
	if err != nil {
		e.log.Warn().Err(err).Str("reference", reference).Msg("deposit verification failed")
		return apperror.ErrPaymentUnverified()
	}
	if receipt == nil || !receipt.Paid {
		return apperror.ErrPaymentUnverified()
	}
	if err := matchesDeposit(receipt, deposit); err != nil {
		e.log.Error().Err(err).Str("reference", reference).Msg("collected payment does not match deposit")
		return apperror.ErrPaymentUnverified()
	}

	err = e.inTx(ctx, func(tx pgx.Tx) error {
		moved, err := e.deposits.MarkCompleted(ctx, tx, deposit.ID)
		if err != nil {
			return fmt.Errorf("complete deposit: %w", err)
		}
		if !moved {
			return errAlreadySettled
		}
		ok, err := e.wallets.IncrementBalance(ctx, tx, deposit.WalletID, deposit.SubTotal)
		if err != nil {
			return fmt.Errorf("credit wallet: %w", err)
		}
		if !ok {
			return fmt.Errorf("credit wallet %s: wallet missing", deposit.WalletID)
		}
		return nil
	})
	if errors.Is(err, errAlreadySettled) {
		return nil
	}
	if err != nil {
		return apperror.InternalError(err)
	}

	deposit.Status = domain.DepositStatusCompleted
	e.log.Info().
		Str("reference", reference).
		Str("wallet_id", deposit.WalletID.String()).
		Msg("deposit reconciled")
	e.publish(ctx, domain.EventDepositCompleted, reference, deposit.UserID, deposit)
	return nil
}

// matchesDeposit checks that the provider collected exactly the deposit's
// gross total in its currency.
func matchesDeposit(receipt *ports.CollectionReceipt, deposit *domain.Deposit) error {
	if receipt.Currency != deposit.Currency {
		return fmt.Errorf("collected %s, deposit is %s", receipt.Currency, deposit.Currency)
	}
	want, err := domain.ToMinorUnits(deposit.Total)
	if err != nil {
		return fmt.Errorf("deposit total: %w", err)
	}
	if receipt.AmountMinor != want {
		return fmt.Errorf("collected %d minor units, deposit total is %d", receipt.AmountMinor, want)
	}
	return nil
}
