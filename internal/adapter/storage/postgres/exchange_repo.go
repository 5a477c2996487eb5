package postgres

import (
	"context"
	"errors"
	"fmt"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const exchangeColumns = `id, user_id, source_currency, source_amount::text, target_currency,
	target_amount::text, exchange_rate::text, status, reference, created_at`

// ExchangeRepo implements ports.ExchangeRepository.
type ExchangeRepo struct {
	pool Pool
}

// NewExchangeRepo creates a new ExchangeRepo.
func NewExchangeRepo(pool Pool) *ExchangeRepo {
	return &ExchangeRepo{pool: pool}
}

// Create inserts an exchange inside the ledger transaction. The reference is
// unique, so a quote can settle at most once.
func (r *ExchangeRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.ExchangeTransaction) error {
	query := `INSERT INTO exchanges (id, user_id, source_currency, source_amount, target_currency,
		target_amount, exchange_rate, status, reference, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6::numeric, $7::numeric, $8, $9, $10)`

	_, err := on(r.pool, tx).Exec(ctx, query,
		e.ID, e.UserID, e.SourceCurrency, e.SourceAmount.String(), e.TargetCurrency,
		e.TargetAmount.String(), e.ExchangeRate.String(), e.Status, e.Reference, e.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("insert exchange: %w", err)
	}
	return nil
}

// GetByReference fetches the exchange settled from a quote reference.
func (r *ExchangeRepo) GetByReference(ctx context.Context, reference string) (*domain.ExchangeTransaction, error) {
	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE reference = $1`
	return scanExchange(r.pool.QueryRow(ctx, query, reference))
}

// ListByUser returns a page of the user's exchanges, newest first.
func (r *ExchangeRepo) ListByUser(ctx context.Context, userID uuid.UUID, page ports.PageParams) ([]domain.ExchangeTransaction, int64, error) {
	page = page.Normalize()

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM exchanges WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count exchanges: %w", err)
	}

	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list exchanges: %w", err)
	}
	defer rows.Close()

	var out []domain.ExchangeTransaction
	for rows.Next() {
		e, err := scanExchange(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate exchange rows: %w", err)
	}
	return out, total, nil
}

func scanExchange(row pgx.Row) (*domain.ExchangeTransaction, error) {
	e := &domain.ExchangeTransaction{}
	var source, target, rate string
	err := row.Scan(
		&e.ID, &e.UserID, &e.SourceCurrency, &source, &e.TargetCurrency,
		&target, &rate, &e.Status, &e.Reference, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan exchange: %w", err)
	}
	if e.SourceAmount, err = parseNumeric("source_amount", source); err != nil {
		return nil, err
	}
	if e.TargetAmount, err = parseNumeric("target_amount", target); err != nil {
		return nil, err
	}
	if e.ExchangeRate, err = parseNumeric("exchange_rate", rate); err != nil {
		return nil, err
	}
	return e, nil
}
