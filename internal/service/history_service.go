package service

import (
	"context"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
)

// historyService implements ports.HistoryService.
type historyService struct {
	deposits  ports.DepositRepository
	exchanges ports.ExchangeRepository
	cardTxns  ports.CardTransactionRepository
}

// NewHistoryService creates a new history service.
func NewHistoryService(
	deposits ports.DepositRepository,
	exchanges ports.ExchangeRepository,
	cardTxns ports.CardTransactionRepository,
) ports.HistoryService {
	return &historyService{
		deposits:  deposits,
		exchanges: exchanges,
		cardTxns:  cardTxns,
	}
}

// ListDeposits returns a page of the user's wallet fundings, newest first.
func (s *historyService) ListDeposits(ctx context.Context, userID uuid.UUID, page ports.PageParams) ([]domain.Deposit, int64, error) {
	items, total, err := s.deposits.ListByUser(ctx, userID, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return items, total, nil
}

// ListExchanges returns a page of the user's settled exchanges.
func (s *historyService) ListExchanges(ctx context.Context, userID uuid.UUID, page ports.PageParams) ([]domain.ExchangeTransaction, int64, error) {
	items, total, err := s.exchanges.ListByUser(ctx, userID, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return items, total, nil
}

// ListCardTransactions returns a page of the user's card top-ups.
func (s *historyService) ListCardTransactions(ctx context.Context, userID uuid.UUID, page ports.PageParams) ([]domain.VirtualCardTransaction, int64, error) {
	items, total, err := s.cardTxns.ListByUser(ctx, userID, page.Normalize())
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return items, total, nil
}
