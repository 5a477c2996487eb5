package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CardCreationFeeName is the pricing row holding the issuance fee.
const CardCreationFeeName = "Card Creation Fee"

// CardFee is the fallback issuance fee when the pricing table has none.
type CardFee struct {
	Amount   decimal.Decimal
	Currency domain.Currency
}

// cardIssueFailedStatus is the issuer's status for a card it gave up on.
const cardIssueFailedStatus = "FAILED"

// CardServiceImpl implements ports.CardService.
type CardServiceImpl struct {
	cards      ports.CardRepository
	wallets    ports.WalletRepository
	pricing    ports.PricingRepository
	transactor ports.DBTransactor
	gateway    ports.CardGateway
	vault      ports.EncryptionService
	publisher  ports.EventPublisher
	defaultFee CardFee
	log        zerolog.Logger
}

// NewCardService creates a new CardServiceImpl.
func NewCardService(
	cards ports.CardRepository,
	wallets ports.WalletRepository,
	pricing ports.PricingRepository,
	transactor ports.DBTransactor,
	gateway ports.CardGateway,
	vault ports.EncryptionService,
	publisher ports.EventPublisher,
	defaultFee CardFee,
	log zerolog.Logger,
) *CardServiceImpl {
	return &CardServiceImpl{
		cards:      cards,
		wallets:    wallets,
		pricing:    pricing,
		transactor: transactor,
		gateway:    gateway,
		vault:      vault,
		publisher:  publisher,
		defaultFee: defaultFee,
		log:        log.With().Str("component", "cards").Logger(),
	}
}

var _ ports.CardService = (*CardServiceImpl)(nil)

// RequestCard asks the issuer for a card and charges the creation fee. The
// card itself is recorded when the issuer's webhook arrives.
func (s *CardServiceImpl) RequestCard(ctx context.Context, req ports.RequestCardInput) (*domain.CardRequest, error) {
	if !req.Currency.IsSupported() {
		return nil, apperror.ErrUnsupportedCurrency()
	}

	holder, err := s.cards.GetHolder(ctx, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card holder: %w", err))
	}
	if holder == nil {
		return nil, apperror.ErrNotFound("Card holder")
	}

	fee, err := s.creationFee(ctx)
	if err != nil {
		return nil, err
	}
	wallet, err := s.wallets.GetByUserAndCurrency(ctx, req.UserID, fee.Currency)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get fee wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound(fmt.Sprintf("%s wallet", fee.Currency))
	}
	if !wallet.HasSufficient(fee.Amount) {
		return nil, apperror.ErrInsufficientBalance()
	}

	cardRef, err := s.gateway.CreateCard(ctx, ports.CardIssueRequest{
		CustomerID: holder.CustomerID,
		Currency:   req.Currency,
		Brand:      strings.ToUpper(req.Brand),
		Pin:        req.Pin,
	})
	if err != nil {
		return nil, gatewayFailure(err)
	}

	now := time.Now().UTC()
	cardReq := &domain.CardRequest{
		ID:            uuid.New(),
		UserID:        req.UserID,
		CardReference: cardRef,
		Currency:      req.Currency,
		Brand:         strings.ToUpper(req.Brand),
		FeeAmount:     fee.Amount,
		FeeWalletID:   wallet.ID,
		Status:        domain.CardRequestStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = runInTx(ctx, s.transactor, func(tx pgx.Tx) error {
		if err := s.cards.CreateRequest(ctx, tx, cardReq); err != nil {
			return fmt.Errorf("create card request: %w", err)
		}
		if fee.Amount.IsZero() {
			return nil
		}
		ok, err := s.wallets.IncrementBalance(ctx, tx, wallet.ID, fee.Amount.Neg())
		if err != nil {
			return fmt.Errorf("charge creation fee: %w", err)
		}
		if !ok {
			return errDebitRefused
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("card_reference", cardRef).Msg("card requested at issuer but not recorded")
		if errors.Is(err, errDebitRefused) {
			return nil, apperror.ErrInsufficientBalance()
		}
		return nil, apperror.InternalError(err)
	}

	s.log.Info().Str("card_reference", cardRef).Str("user_id", req.UserID.String()).Msg("card requested")
	return cardReq, nil
}

func (s *CardServiceImpl) creationFee(ctx context.Context) (CardFee, error) {
	amount, currency, found, err := s.pricing.GetFee(ctx, CardCreationFeeName)
	if err != nil {
		return CardFee{}, apperror.InternalError(fmt.Errorf("get card creation fee: %w", err))
	}
	if !found {
		return s.defaultFee, nil
	}
	return CardFee{Amount: amount, Currency: currency}, nil
}

// ListCards returns the user's cards.
func (s *CardServiceImpl) ListCards(ctx context.Context, userID uuid.UUID) ([]domain.VirtualCard, error) {
	cards, err := s.cards.ListCardsByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list cards: %w", err))
	}
	return cards, nil
}

func (s *CardServiceImpl) FreezeCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.VirtualCard, error) {
	return s.setCardStatus(ctx, userID, cardID, domain.CardStatusDisabled)
}

func (s *CardServiceImpl) UnfreezeCard(ctx context.Context, userID, cardID uuid.UUID) (*domain.VirtualCard, error) {
	return s.setCardStatus(ctx, userID, cardID, domain.CardStatusActive)
}

// setCardStatus changes the card at the issuer first; the local status only
// follows a confirmed change.
func (s *CardServiceImpl) setCardStatus(ctx context.Context, userID, cardID uuid.UUID, status domain.CardStatus) (*domain.VirtualCard, error) {
	card, err := s.cards.GetCardByID(ctx, cardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card: %w", err))
	}
	if card == nil || card.UserID != userID {
		return nil, apperror.ErrNotFound("Card")
	}
	if card.Status == status {
		return card, nil
	}

	if status == domain.CardStatusDisabled {
		err = s.gateway.FreezeCard(ctx, card.ProviderID)
	} else {
		err = s.gateway.UnfreezeCard(ctx, card.ProviderID)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("card_id", card.ID.String()).Str("status", string(status)).Msg("issuer refused card status change")
		return nil, gatewayFailure(err)
	}

	if err := s.cards.UpdateCardStatus(ctx, card.ID, status); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update card status: %w", err))
	}
	card.Status = status
	card.UpdatedAt = time.Now().UTC()

	s.log.Info().Str("card_id", card.ID.String()).Str("status", string(status)).Msg("card status changed")
	return card, nil
}

// HandleCardCreated records a card the issuer reports as created. The card
// details are fetched from the issuer rather than trusted from the webhook.
func (s *CardServiceImpl) HandleCardCreated(ctx context.Context, cardReference string) (*domain.VirtualCard, error) {
	req, err := s.cards.GetRequestByReference(ctx, cardReference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card request: %w", err))
	}
	if req == nil {
		return nil, apperror.ErrNotFound("Card request")
	}

	existing, err := s.cards.GetCardByReference(ctx, cardReference)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get card: %w", err))
	}
	if existing != nil {
		return existing, nil
	}

	switch req.Status {
	case domain.CardRequestStatusPending:
	case domain.CardRequestStatusFailed:
		// The fee was already refunded. Redelivery cannot fix this, so the
		// event is acknowledged and handed to operators.
		s.log.Error().
			Str("card_reference", cardReference).
			Str("user_id", req.UserID.String()).
			Msg("issuer reports a card for a failed card request")
		publishLedgerEvent(ctx, s.publisher, s.log,
			domain.NewLedgerEvent(domain.EventCardIssueConflict, cardReference, req.UserID, req, time.Now().UTC()))
		return nil, nil
	default:
		return nil, apperror.Validation(fmt.Sprintf("Card request is %s", req.Status))
	}

	issued, err := s.gateway.GetCard(ctx, cardReference)
	if err != nil {
		return nil, gatewayFailure(err)
	}
	return s.recordIssuedCard(ctx, req, issued)
}

// recordIssuedCard vaults the issued card and completes its request.
func (s *CardServiceImpl) recordIssuedCard(ctx context.Context, req *domain.CardRequest, issued *ports.IssuedCard) (*domain.VirtualCard, error) {
	cardReference := req.CardReference
	numberEnc, err := s.vault.Encrypt(issued.Number)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt card number: %w", err))
	}
	cvvEnc, err := s.vault.Encrypt(issued.CVV)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt cvv: %w", err))
	}

	currency := issued.Currency
	if currency == "" {
		currency = req.Currency
	}
	now := time.Now().UTC()
	card := &domain.VirtualCard{
		ID:            uuid.New(),
		UserID:        req.UserID,
		CardReference: cardReference,
		ProviderID:    issued.ID,
		Name:          issued.Name,
		MaskedPAN:     issued.MaskedPAN,
		NumberEnc:     numberEnc,
		CVVEnc:        cvvEnc,
		Expiry:        issued.Expiry,
		Type:          issued.Type,
		Issuer:        issued.Issuer,
		Currency:      currency,
		Balance:       decimal.Zero,
		Status:        domain.CardStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = runInTx(ctx, s.transactor, func(tx pgx.Tx) error {
		moved, err := s.cards.TransitionRequest(ctx, tx, req.ID, domain.CardRequestStatusPending, domain.CardRequestStatusSuccess)
		if err != nil {
			return fmt.Errorf("complete card request: %w", err)
		}
		if !moved {
			return errAlreadySettled
		}
		if err := s.cards.CreateCard(ctx, tx, card); err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		return nil
	})
	if errors.Is(err, errAlreadySettled) {
		winner, getErr := s.cards.GetCardByReference(ctx, cardReference)
		if getErr != nil || winner == nil {
			return nil, apperror.InternalError(errors.Join(err, getErr))
		}
		return winner, nil
	}
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	s.log.Info().Str("card_reference", cardReference).Str("card_id", card.ID.String()).Msg("virtual card created")
	publishLedgerEvent(ctx, s.publisher, s.log,
		domain.NewLedgerEvent(domain.EventCardCreated, cardReference, card.UserID, card, now))
	return card, nil
}

// HandleCardCreationFailed fails a PENDING request and refunds its fee once
// the issuer confirms it holds no such card. If the issuer did create the
// card, it is recorded instead.
func (s *CardServiceImpl) HandleCardCreationFailed(ctx context.Context, cardReference string) error {
	req, err := s.cards.GetRequestByReference(ctx, cardReference)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get card request: %w", err))
	}
	if req == nil {
		return apperror.ErrNotFound("Card request")
	}
	if req.Status != domain.CardRequestStatusPending {
		return nil
	}

	issued, err := s.gateway.GetCard(ctx, cardReference)
	switch {
	case err == nil && !strings.EqualFold(issued.Status, cardIssueFailedStatus):
		s.log.Warn().Str("card_reference", cardReference).Msg("creation-failed webhook for a card the issuer holds")
		_, err := s.recordIssuedCard(ctx, req, issued)
		return err
	case err == nil, errors.Is(err, ports.ErrUnknownResource):
	default:
		s.log.Warn().Err(err).Str("card_reference", cardReference).Msg("could not confirm card creation failure")
		return apperror.ErrPaymentUnverified()
	}

	err = runInTx(ctx, s.transactor, func(tx pgx.Tx) error {
		moved, err := s.cards.TransitionRequest(ctx, tx, req.ID, domain.CardRequestStatusPending, domain.CardRequestStatusFailed)
		if err != nil {
			return fmt.Errorf("fail card request: %w", err)
		}
		if !moved {
			return errAlreadySettled
		}
		if req.FeeAmount.IsZero() {
			return nil
		}
		ok, err := s.wallets.IncrementBalance(ctx, tx, req.FeeWalletID, req.FeeAmount)
		if err != nil {
			return fmt.Errorf("refund creation fee: %w", err)
		}
		if !ok {
			return fmt.Errorf("refund creation fee: wallet %s missing", req.FeeWalletID)
		}
		return nil
	})
	if errors.Is(err, errAlreadySettled) {
		return nil
	}
	if err != nil {
		return apperror.InternalError(err)
	}

	s.log.Info().Str("card_reference", cardReference).Msg("card creation failed, fee refunded")
	return nil
}
