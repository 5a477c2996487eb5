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
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// walletService implements ports.WalletService.
type walletService struct {
	wallets ports.WalletRepository
	log     zerolog.Logger
}

// NewWalletService creates a new wallet service.
func NewWalletService(wallets ports.WalletRepository, log zerolog.Logger) ports.WalletService {
	return &walletService{wallets: wallets, log: log}
}

// CreateWallet opens an empty wallet in currency. A user holds at most one
// wallet per currency.
func (s *walletService) CreateWallet(ctx context.Context, userID uuid.UUID, currency string) (*domain.Wallet, error) {
	cur, ok := domain.ParseCurrency(currency)
	if !ok {
		return nil, apperror.ErrUnsupportedCurrency()
	}

	existing, err := s.wallets.GetByUserAndCurrency(ctx, userID, cur)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrWalletExists()
	}

	now := time.Now().UTC()
	wallet := &domain.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Currency:  cur,
		Balance:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.wallets.Create(ctx, wallet); err != nil {
		// Lost a race with a concurrent create.
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrWalletExists()
		}
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().Str("user_id", userID.String()).Str("currency", string(cur)).Msg("wallet created")
	return wallet, nil
}

// CreateDefaultWallets provisions the default currencies, keeping any the
// user already has.
func (s *walletService) CreateDefaultWallets(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	wallets := make([]domain.Wallet, 0, len(domain.DefaultCurrencies))
	for _, cur := range domain.DefaultCurrencies {
		w, err := s.CreateWallet(ctx, userID, string(cur))
		if apperror.HasCode(err, "LED_005") {
			w, err = s.wallets.GetByUserAndCurrency(ctx, userID, cur)
			if err != nil {
				return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
			}
		} else if err != nil {
			return nil, err
		}
		if w != nil {
			wallets = append(wallets, *w)
		}
	}
	return wallets, nil
}

// ListWallets returns the user's wallets.
func (s *walletService) ListWallets(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	wallets, err := s.wallets.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}
	return wallets, nil
}
