package service

import (
	"context"
	"fmt"
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

type cardFixture struct {
	svc     *CardServiceImpl
	ledger  *memLedger
	gateway *mocks.MockCardGateway
	vault   *AESEncryptionService
	events  *recordingPublisher
}

func newCardFixture(t *testing.T) *cardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	vault, err := NewAESEncryptionService(testMasterKey)
	require.NoError(t, err)

	f := &cardFixture{
		ledger:  newMemLedger(),
		gateway: mocks.NewMockCardGateway(ctrl),
		vault:   vault,
		events:  &recordingPublisher{},
	}
	f.svc = NewCardService(
		memCardRepo{f.ledger}, memWalletRepo{f.ledger}, memPricingRepo{f.ledger},
		memTransactor{f.ledger}, f.gateway, vault, f.events,
		CardFee{Amount: dec("2"), Currency: domain.CurrencyUSD},
		newTestLogger(),
	)
	return f
}

func (f *cardFixture) addHolder(user uuid.UUID) {
	f.ledger.mu.Lock()
	defer f.ledger.mu.Unlock()
	f.ledger.holders[user] = &domain.CardHolder{UserID: user, CustomerID: "cus_" + user.String()[:6]}
}

func (f *cardFixture) request(t *testing.T, user uuid.UUID, cardRef string) *domain.CardRequest {
	t.Helper()
	f.gateway.EXPECT().CreateCard(gomock.Any(), gomock.Any()).Return(cardRef, nil)
	req, err := f.svc.RequestCard(context.Background(), ports.RequestCardInput{
		UserID: user, Currency: domain.CurrencyUSD, Brand: "visa", Pin: "1234",
	})
	require.NoError(t, err)
	return req
}

func TestRequestCard_ChargesDefaultFee(t *testing.T) {
	f := newCardFixture(t)
	user := uuid.New()
	f.addHolder(user)
	wallet := f.ledger.addWallet(user, domain.CurrencyUSD, "10")

	f.gateway.EXPECT().CreateCard(gomock.Any(), ports.CardIssueRequest{
		CustomerID: "cus_" + user.String()[:6], Currency: domain.CurrencyUSD, Brand: "VISA", Pin: "1234",
	}).Return("cref-1", nil)

	req, err := f.svc.RequestCard(context.Background(), ports.RequestCardInput{
		UserID: user, Currency: domain.CurrencyUSD, Brand: "visa", Pin: "1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "cref-1", req.CardReference)
	assert.Equal(t, domain.CardRequestStatusPending, req.Status)
	assert.Equal(t, "VISA", req.Brand)
	assert.True(t, dec("8").Equal(f.ledger.balance(wallet.ID)))
}

func TestRequestCard_PricingTableFee(t *testing.T) {
	f := newCardFixture(t)
	user := uuid.New()
	f.addHolder(user)
	ngn := f.ledger.addWallet(user, domain.CurrencyNGN, "5000")
	f.ledger.fees[CardCreationFeeName] = CardFee{Amount: dec("1500"), Currency: domain.CurrencyNGN}

	req := f.request(t, user, "cref-ngn")

	assert.True(t, dec("1500").Equal(req.FeeAmount))
	assert.Equal(t, ngn.ID, req.FeeWalletID)
	assert.True(t, dec("3500").Equal(f.ledger.balance(ngn.ID)))
}

func TestRequestCard_Guards(t *testing.T) {
	f := newCardFixture(t)
	f.gateway.EXPECT().CreateCard(gomock.Any(), gomock.Any()).Times(0)
	ctx := context.Background()

	noHolder := uuid.New()
	f.ledger.addWallet(noHolder, domain.CurrencyUSD, "10")
	_, err := f.svc.RequestCard(ctx, ports.RequestCardInput{UserID: noHolder, Currency: domain.CurrencyUSD})
	assert.True(t, apperror.HasCode(err, "LED_004"))

	poor := uuid.New()
	f.addHolder(poor)
	wallet := f.ledger.addWallet(poor, domain.CurrencyUSD, "1.99")
	_, err = f.svc.RequestCard(ctx, ports.RequestCardInput{UserID: poor, Currency: domain.CurrencyUSD})
	assert.True(t, apperror.HasCode(err, "LED_001"))
	assert.True(t, dec("1.99").Equal(f.ledger.balance(wallet.ID)))

	_, err = f.svc.RequestCard(ctx, ports.RequestCardInput{UserID: poor, Currency: domain.Currency("JPY")})
	assert.True(t, apperror.HasCode(err, "LED_003"))
}

func TestRequestCard_IssuerFailureChargesNothing(t *testing.T) {
	f := newCardFixture(t)
	user := uuid.New()
	f.addHolder(user)
	wallet := f.ledger.addWallet(user, domain.CurrencyUSD, "10")

	f.gateway.EXPECT().CreateCard(gomock.Any(), gomock.Any()).Return("", ports.ErrGatewayRejected)

	_, err := f.svc.RequestCard(context.Background(), ports.RequestCardInput{UserID: user, Currency: domain.CurrencyUSD})
	assert.True(t, apperror.HasCode(err, "EXT_001"))
	assert.True(t, dec("10").Equal(f.ledger.balance(wallet.ID)))
}

func TestHandleCardCreated_EncryptsAndIsIdempotent(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	user := uuid.New()
	f.addHolder(user)
	f.ledger.addWallet(user, domain.CurrencyUSD, "10")
	f.request(t, user, "cref-2")

	f.gateway.EXPECT().GetCard(gomock.Any(), "cref-2").Return(&ports.IssuedCard{
		ID: "mpl-77", Name: "ADA L", MaskedPAN: "4111********1111", Number: "4111111111111111",
		Expiry: "12/29", CVV: "123", Type: "VIRTUAL", Issuer: "VISA", Currency: domain.CurrencyUSD,
	}, nil).Times(1)

	card, err := f.svc.HandleCardCreated(ctx, "cref-2")
	require.NoError(t, err)

	assert.Equal(t, "mpl-77", card.ProviderID)
	assert.Equal(t, domain.CardStatusActive, card.Status)
	assert.True(t, card.Balance.IsZero())
	assert.NotContains(t, card.NumberEnc, "4111111111111111")
	number, err := f.vault.Decrypt(card.NumberEnc)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", number)
	cvv, err := f.vault.Decrypt(card.CVVEnc)
	require.NoError(t, err)
	assert.Equal(t, "123", cvv)

	again, err := f.svc.HandleCardCreated(ctx, "cref-2")
	require.NoError(t, err)
	assert.Equal(t, card.ID, again.ID)

	req, _ := memCardRepo{f.ledger}.GetRequestByReference(ctx, "cref-2")
	assert.Equal(t, domain.CardRequestStatusSuccess, req.Status)
	assert.Equal(t, []string{domain.EventCardCreated}, f.events.types())
}

func TestHandleCardCreated_UnknownRequest(t *testing.T) {
	f := newCardFixture(t)
	_, err := f.svc.HandleCardCreated(context.Background(), "nope")
	assert.True(t, apperror.HasCode(err, "LED_004"))
}

func issuerHasNoCard() error {
	return fmt.Errorf("%w: %w", ports.ErrGatewayRejected, ports.ErrUnknownResource)
}

func TestHandleCardCreationFailed_RefundsFeeOnce(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	user := uuid.New()
	f.addHolder(user)
	wallet := f.ledger.addWallet(user, domain.CurrencyUSD, "10")
	f.request(t, user, "cref-3")
	require.True(t, dec("8").Equal(f.ledger.balance(wallet.ID)))

	f.gateway.EXPECT().GetCard(gomock.Any(), "cref-3").Return(nil, issuerHasNoCard()).Times(1)

	require.NoError(t, f.svc.HandleCardCreationFailed(ctx, "cref-3"))
	require.NoError(t, f.svc.HandleCardCreationFailed(ctx, "cref-3"))

	assert.True(t, dec("10").Equal(f.ledger.balance(wallet.ID)), "fee refunded exactly once")
	req, _ := memCardRepo{f.ledger}.GetRequestByReference(ctx, "cref-3")
	assert.Equal(t, domain.CardRequestStatusFailed, req.Status)
}

func TestHandleCardCreationFailed_IssuerReportsFailedCard(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	user := uuid.New()
	f.addHolder(user)
	wallet := f.ledger.addWallet(user, domain.CurrencyUSD, "10")
	f.request(t, user, "cref-3b")

	f.gateway.EXPECT().GetCard(gomock.Any(), "cref-3b").Return(&ports.IssuedCard{Status: "failed"}, nil)

	require.NoError(t, f.svc.HandleCardCreationFailed(ctx, "cref-3b"))

	assert.True(t, dec("10").Equal(f.ledger.balance(wallet.ID)))
	card, _ := memCardRepo{f.ledger}.GetCardByReference(ctx, "cref-3b")
	assert.Nil(t, card)
}

func TestHandleCardCreationFailed_IssuerHoldsCard(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	user := uuid.New()
	f.addHolder(user)
	wallet := f.ledger.addWallet(user, domain.CurrencyUSD, "10")
	f.request(t, user, "cref-4")

	f.gateway.EXPECT().GetCard(gomock.Any(), "cref-4").Return(&ports.IssuedCard{
		ID: "mpl-88", MaskedPAN: "4111********2222", Number: "4111111111112222",
		Expiry: "12/29", CVV: "321", Currency: domain.CurrencyUSD, Status: "ACTIVE",
	}, nil).Times(1)

	require.NoError(t, f.svc.HandleCardCreationFailed(ctx, "cref-4"))

	assert.True(t, dec("8").Equal(f.ledger.balance(wallet.ID)), "fee kept for an issued card")
	req, _ := memCardRepo{f.ledger}.GetRequestByReference(ctx, "cref-4")
	assert.Equal(t, domain.CardRequestStatusSuccess, req.Status)
	card, _ := memCardRepo{f.ledger}.GetCardByReference(ctx, "cref-4")
	require.NotNil(t, card)
	assert.Equal(t, "mpl-88", card.ProviderID)
	assert.Equal(t, []string{domain.EventCardCreated}, f.events.types())

	// The created event that follows finds the card already recorded.
	again, err := f.svc.HandleCardCreated(ctx, "cref-4")
	require.NoError(t, err)
	assert.Equal(t, card.ID, again.ID)
}

func TestHandleCardCreationFailed_IssuerUnreachable(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	user := uuid.New()
	f.addHolder(user)
	wallet := f.ledger.addWallet(user, domain.CurrencyUSD, "10")
	f.request(t, user, "cref-5")

	f.gateway.EXPECT().GetCard(gomock.Any(), "cref-5").Return(nil, ports.ErrOutcomeUnknown)

	err := f.svc.HandleCardCreationFailed(ctx, "cref-5")
	assert.True(t, apperror.HasCode(err, "EXT_003"))

	assert.True(t, dec("8").Equal(f.ledger.balance(wallet.ID)))
	req, _ := memCardRepo{f.ledger}.GetRequestByReference(ctx, "cref-5")
	assert.Equal(t, domain.CardRequestStatusPending, req.Status)
}

func TestHandleCardCreated_AfterFailureIsAcknowledged(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	user := uuid.New()
	f.addHolder(user)
	wallet := f.ledger.addWallet(user, domain.CurrencyUSD, "10")
	f.request(t, user, "cref-6")

	// Only the failure path asks the issuer; the late created event does not.
	f.gateway.EXPECT().GetCard(gomock.Any(), "cref-6").Return(nil, issuerHasNoCard()).Times(1)
	require.NoError(t, f.svc.HandleCardCreationFailed(ctx, "cref-6"))

	card, err := f.svc.HandleCardCreated(ctx, "cref-6")
	require.NoError(t, err, "redelivery cannot resolve the conflict")
	assert.Nil(t, card)

	stored, _ := memCardRepo{f.ledger}.GetCardByReference(ctx, "cref-6")
	assert.Nil(t, stored)
	assert.True(t, dec("10").Equal(f.ledger.balance(wallet.ID)))
	assert.Equal(t, []string{domain.EventCardIssueConflict}, f.events.types())
}

func TestFreezeAndUnfreezeCard(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()
	user := uuid.New()
	card := &domain.VirtualCard{
		ID: uuid.New(), UserID: user, CardReference: "cref-f", ProviderID: "mpl-f",
		Currency: domain.CurrencyUSD, Balance: dec("0"), Status: domain.CardStatusActive,
	}
	f.ledger.cards[card.ID] = card

	f.gateway.EXPECT().FreezeCard(gomock.Any(), "mpl-f").Return(nil).Times(1)
	frozen, err := f.svc.FreezeCard(ctx, user, card.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CardStatusDisabled, frozen.Status)

	// Already frozen: no second issuer call.
	_, err = f.svc.FreezeCard(ctx, user, card.ID)
	require.NoError(t, err)

	_, err = f.svc.UnfreezeCard(ctx, uuid.New(), card.ID)
	assert.True(t, apperror.HasCode(err, "LED_004"))

	f.gateway.EXPECT().UnfreezeCard(gomock.Any(), "mpl-f").Return(ports.ErrOutcomeUnknown)
	_, err = f.svc.UnfreezeCard(ctx, user, card.ID)
	assert.True(t, apperror.HasCode(err, "EXT_002"))
	stored, _ := memCardRepo{f.ledger}.GetCardByID(ctx, card.ID)
	assert.Equal(t, domain.CardStatusDisabled, stored.Status, "local status follows the issuer")

	f.gateway.EXPECT().UnfreezeCard(gomock.Any(), "mpl-f").Return(nil)
	active, err := f.svc.UnfreezeCard(ctx, user, card.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CardStatusActive, active.Status)
}
