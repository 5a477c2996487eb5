package postgres

import (
	"context"
	"errors"
	"fmt"

	"fx-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	cardRequestColumns = `id, user_id, card_reference, currency, brand, fee_amount::text, fee_wallet_id,
	status, created_at, updated_at`
	cardColumns = `id, user_id, card_reference, provider_id, name, masked_pan, number_enc, cvv_enc,
	expiry, type, issuer, currency, balance::text, status, created_at, updated_at`
)

// CardRepo implements ports.CardRepository.
type CardRepo struct {
	pool Pool
}

// NewCardRepo creates a new CardRepo.
func NewCardRepo(pool Pool) *CardRepo {
	return &CardRepo{pool: pool}
}

// GetHolder fetches the user's account at the card issuer.
func (r *CardRepo) GetHolder(ctx context.Context, userID uuid.UUID) (*domain.CardHolder, error) {
	query := `SELECT user_id, customer_id, tier, created_at FROM card_holders WHERE user_id = $1`

	h := &domain.CardHolder{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(&h.UserID, &h.CustomerID, &h.Tier, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card holder: %w", err)
	}
	return h, nil
}

// CreateRequest records an issuance request, normally in the same
// transaction as the fee debit.
func (r *CardRepo) CreateRequest(ctx context.Context, tx pgx.Tx, req *domain.CardRequest) error {
	query := `INSERT INTO card_requests (id, user_id, card_reference, currency, brand, fee_amount,
		fee_wallet_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9, $10)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		req.ID, req.UserID, req.CardReference, req.Currency, req.Brand, req.FeeAmount.String(),
		req.FeeWalletID, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card request: %w", err)
	}
	return nil
}

// GetRequestByReference fetches an issuance request by the issuer's reference.
func (r *CardRepo) GetRequestByReference(ctx context.Context, cardReference string) (*domain.CardRequest, error) {
	query := `SELECT ` + cardRequestColumns + ` FROM card_requests WHERE card_reference = $1`

	req := &domain.CardRequest{}
	var fee string
	err := r.pool.QueryRow(ctx, query, cardReference).Scan(
		&req.ID, &req.UserID, &req.CardReference, &req.Currency, &req.Brand, &fee,
		&req.FeeWalletID, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get card request: %w", err)
	}
	if req.FeeAmount, err = parseNumeric("fee_amount", fee); err != nil {
		return nil, err
	}
	return req, nil
}

// TransitionRequest is a compare-and-set on the request status.
func (r *CardRepo) TransitionRequest(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.CardRequestStatus) (bool, error) {
	query := `UPDATE card_requests SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`

	tag, err := on(r.pool, tx).Exec(ctx, query, to, id, from)
	if err != nil {
		return false, fmt.Errorf("transition card request: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CreateCard inserts an issued card. card_reference is unique.
func (r *CardRepo) CreateCard(ctx context.Context, tx pgx.Tx, c *domain.VirtualCard) error {
	query := `INSERT INTO virtual_cards (id, user_id, card_reference, provider_id, name, masked_pan,
		number_enc, cvv_enc, expiry, type, issuer, currency, balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::numeric, $14, $15, $16)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		c.ID, c.UserID, c.CardReference, c.ProviderID, c.Name, c.MaskedPAN,
		c.NumberEnc, c.CVVEnc, c.Expiry, c.Type, c.Issuer, c.Currency, c.Balance.String(),
		c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert virtual card: %w", err)
	}
	return nil
}

// GetCardByID fetches a card by its local ID.
func (r *CardRepo) GetCardByID(ctx context.Context, id uuid.UUID) (*domain.VirtualCard, error) {
	query := `SELECT ` + cardColumns + ` FROM virtual_cards WHERE id = $1`
	return scanCard(r.pool.QueryRow(ctx, query, id))
}

// GetCardByReference fetches a card by the issuer's card reference.
func (r *CardRepo) GetCardByReference(ctx context.Context, cardReference string) (*domain.VirtualCard, error) {
	query := `SELECT ` + cardColumns + ` FROM virtual_cards WHERE card_reference = $1`
	return scanCard(r.pool.QueryRow(ctx, query, cardReference))
}

// ListCardsByUser returns the user's cards, newest first.
func (r *CardRepo) ListCardsByUser(ctx context.Context, userID uuid.UUID) ([]domain.VirtualCard, error) {
	query := `SELECT ` + cardColumns + ` FROM virtual_cards WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list virtual cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.VirtualCard
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate card rows: %w", err)
	}
	return cards, nil
}

// IncrementCardBalance adds delta to the card's mirrored balance.
func (r *CardRepo) IncrementCardBalance(ctx context.Context, tx pgx.Tx, cardID uuid.UUID, delta decimal.Decimal) error {
	query := `UPDATE virtual_cards SET balance = balance + $1::numeric, updated_at = NOW() WHERE id = $2`

	tag, err := on(r.pool, tx).Exec(ctx, query, delta.String(), cardID)
	if err != nil {
		return fmt.Errorf("increment card balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("virtual card not found: %s", cardID)
	}
	return nil
}

// UpdateCardStatus records a freeze or unfreeze that the issuer accepted.
func (r *CardRepo) UpdateCardStatus(ctx context.Context, cardID uuid.UUID, status domain.CardStatus) error {
	query := `UPDATE virtual_cards SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, status, cardID)
	if err != nil {
		return fmt.Errorf("update card status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("virtual card not found: %s", cardID)
	}
	return nil
}

func scanCard(row pgx.Row) (*domain.VirtualCard, error) {
	c := &domain.VirtualCard{}
	var balance string
	err := row.Scan(
		&c.ID, &c.UserID, &c.CardReference, &c.ProviderID, &c.Name, &c.MaskedPAN,
		&c.NumberEnc, &c.CVVEnc, &c.Expiry, &c.Type, &c.Issuer, &c.Currency, &balance,
		&c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan virtual card: %w", err)
	}
	if c.Balance, err = parseNumeric("balance", balance); err != nil {
		return nil, err
	}
	return c, nil
}
