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

const depositColumns = `id, user_id, wallet_id, currency, sub_total::text, fee::text, total::text,
	reference, status, created_at, updated_at`

// DepositRepo implements ports.DepositRepository.
type DepositRepo struct {
	pool Pool
}

// NewDepositRepo creates a new DepositRepo.
func NewDepositRepo(pool Pool) *DepositRepo {
	return &DepositRepo{pool: pool}
}

// Create inserts a PENDING deposit.
func (r *DepositRepo) Create(ctx context.Context, d *domain.Deposit) error {
	query := `INSERT INTO deposits (id, user_id, wallet_id, currency, sub_total, fee, total,
		reference, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.UserID, d.WalletID, d.Currency, d.SubTotal.String(), d.Fee.String(), d.Total.String(),
		d.Reference, d.Status, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert deposit: %w", err)
	}
	return nil
}

// GetByReference fetches a deposit by its provider-correlatable reference.
func (r *DepositRepo) GetByReference(ctx context.Context, reference string) (*domain.Deposit, error) {
	query := `SELECT ` + depositColumns + ` FROM deposits WHERE reference = $1`
	return scanDeposit(r.pool.QueryRow(ctx, query, reference))
}

// MarkCompleted flips PENDING to COMPLETED. Only the first caller sees true.
func (r *DepositRepo) MarkCompleted(ctx context.Context, tx pgx.Tx, id uuid.UUID) (bool, error) {
	query := `UPDATE deposits SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`

	tag, err := on(r.pool, tx).Exec(ctx, query, domain.DepositStatusCompleted, id, domain.DepositStatusPending)
	if err != nil {
		return false, fmt.Errorf("complete deposit: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByUser returns a page of the user's deposits, newest first.
func (r *DepositRepo) ListByUser(ctx context.Context, userID uuid.UUID, page ports.PageParams) ([]domain.Deposit, int64, error) {
	page = page.Normalize()

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM deposits WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count deposits: %w", err)
	}

	query := `SELECT ` + depositColumns + ` FROM deposits WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list deposits: %w", err)
	}
	defer rows.Close()

	var out []domain.Deposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate deposit rows: %w", err)
	}
	return out, total, nil
}

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	d := &domain.Deposit{}
	var subTotal, fee, total string
	err := row.Scan(
		&d.ID, &d.UserID, &d.WalletID, &d.Currency, &subTotal, &fee, &total,
		&d.Reference, &d.Status, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan deposit: %w", err)
	}
	if d.SubTotal, err = parseNumeric("sub_total", subTotal); err != nil {
		return nil, err
	}
	if d.Fee, err = parseNumeric("fee", fee); err != nil {
		return nil, err
	}
	if d.Total, err = parseNumeric("total", total); err != nil {
		return nil, err
	}
	return d, nil
}
