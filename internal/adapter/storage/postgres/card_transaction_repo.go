package postgres

import (
	"context"
	"errors"
	"fmt"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const cardTxnColumns = `id, card_id, user_id, wallet_id, amount::text, currency, description,
	reference, status, created_at, updated_at`

// CardTransactionRepo implements ports.CardTransactionRepository.
type CardTransactionRepo struct {
	pool Pool
}

// NewCardTransactionRepo creates a new CardTransactionRepo.
func NewCardTransactionRepo(pool Pool) *CardTransactionRepo {
	return &CardTransactionRepo{pool: pool}
}

// Create inserts a PENDING top-up before the issuer is called.
func (r *CardTransactionRepo) Create(ctx context.Context, t *domain.VirtualCardTransaction) error {
	query := `INSERT INTO card_transactions (id, card_id, user_id, wallet_id, amount, currency,
		description, reference, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.CardID, t.UserID, t.WalletID, t.Amount.String(), t.Currency,
		t.Description, t.Reference, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert card transaction: %w", err)
	}
	return nil
}

// GetByReference fetches a top-up by its reference.
func (r *CardTransactionRepo) GetByReference(ctx context.Context, reference string) (*domain.VirtualCardTransaction, error) {
	query := `SELECT ` + cardTxnColumns + ` FROM card_transactions WHERE reference = $1`
	return scanCardTxn(r.pool.QueryRow(ctx, query, reference))
}

// TransitionStatus settles a PENDING top-up. Only the first caller sees true.
func (r *CardTransactionRepo) TransitionStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, to domain.CardTransactionStatus) (bool, error) {
	query := `UPDATE card_transactions SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`

	tag, err := on(r.pool, tx).Exec(ctx, query, to, id, domain.CardTransactionStatusPending)
	if err != nil {
		return false, fmt.Errorf("transition card transaction: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByUser returns a page of the user's card top-ups, newest first.
func (r *CardTransactionRepo) ListByUser(ctx context.Context, userID uuid.UUID, page ports.PageParams) ([]domain.VirtualCardTransaction, int64, error) {
	page = page.Normalize()

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM card_transactions WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count card transactions: %w", err)
	}

	query := `SELECT ` + cardTxnColumns + ` FROM card_transactions WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list card transactions: %w", err)
	}
	defer rows.Close()

	var out []domain.VirtualCardTransaction
	for rows.Next() {
		t, err := scanCardTxn(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate card transaction rows: %w", err)
	}
	return out, total, nil
}

func scanCardTxn(row pgx.Row) (*domain.VirtualCardTransaction, error) {
	t := &domain.VirtualCardTransaction{}
	var amount string
	err := row.Scan(
		&t.ID, &t.CardID, &t.UserID, &t.WalletID, &amount, &t.Currency,
		&t.Description, &t.Reference, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan card transaction: %w", err)
	}
	if t.Amount, err = parseNumeric("amount", amount); err != nil {
		return nil, err
	}
	return t, nil
}
