package service

import (
	"context"
	"errors"
	"testing"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/internal/core/ports/mocks"
	"fx-wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistory_NormalizesPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	deposits := mocks.NewMockDepositRepository(ctrl)
	exchanges := mocks.NewMockExchangeRepository(ctrl)
	cardTxns := mocks.NewMockCardTransactionRepository(ctrl)
	svc := NewHistoryService(deposits, exchanges, cardTxns)
	user := uuid.New()
	want := ports.PageParams{Page: 1, PageSize: ports.DefaultPageSize}

	deposits.EXPECT().ListByUser(gomock.Any(), user, want).Return([]domain.Deposit{{Reference: "d1"}}, int64(1), nil)
	exchanges.EXPECT().ListByUser(gomock.Any(), user, want).Return([]domain.ExchangeTransaction{}, int64(0), nil)
	cardTxns.EXPECT().ListByUser(gomock.Any(), user, ports.PageParams{Page: 3, PageSize: 5}).
		Return([]domain.VirtualCardTransaction{{Reference: "t1"}}, int64(11), nil)

	items, total, err := svc.ListDeposits(context.Background(), user, ports.PageParams{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 1, total)

	_, total, err = svc.ListExchanges(context.Background(), user, ports.PageParams{Page: -2})
	require.NoError(t, err)
	assert.Zero(t, total)

	txns, total, err := svc.ListCardTransactions(context.Background(), user, ports.PageParams{Page: 3, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, "t1", txns[0].Reference)
	assert.EqualValues(t, 11, total)
}

func TestHistory_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	deposits := mocks.NewMockDepositRepository(ctrl)
	svc := NewHistoryService(deposits, mocks.NewMockExchangeRepository(ctrl), mocks.NewMockCardTransactionRepository(ctrl))

	deposits.EXPECT().ListByUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), errors.New("timeout"))

	_, _, err := svc.ListDeposits(context.Background(), uuid.New(), ports.PageParams{})
	assert.True(t, apperror.HasCode(err, "SYS_001"))
}
