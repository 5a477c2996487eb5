package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fx-wallet-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const journalColumns = `id, user_id, reference, source_wallet_id, target_wallet_id, source_currency,
	target_currency, source_amount::text, target_amount::text, exchange_rate::text, status,
	last_error, created_at, updated_at`

// JournalRepo implements ports.JournalRepository over settlement_journal.
type JournalRepo struct {
	pool Pool
}

// NewJournalRepo creates a new JournalRepo.
func NewJournalRepo(pool Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

// Create inserts an INITIATED entry. It commits on its own, before the
// provider is called.
func (r *JournalRepo) Create(ctx context.Context, j *domain.JournalEntry) error {
	query := `INSERT INTO settlement_journal (id, user_id, reference, source_wallet_id, target_wallet_id,
		source_currency, target_currency, source_amount, target_amount, exchange_rate, status,
		last_error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9::numeric, $10::numeric, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		j.ID, j.UserID, j.Reference, j.SourceWalletID, j.TargetWalletID,
		j.SourceCurrency, j.TargetCurrency, j.SourceAmount.String(), j.TargetAmount.String(),
		j.ExchangeRate.String(), j.Status, j.LastError, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// GetByID fetches a journal entry.
func (r *JournalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM settlement_journal WHERE id = $1`
	return scanJournal(r.pool.QueryRow(ctx, query, id))
}

// Transition moves an entry from one status to another, recording lastError.
func (r *JournalRepo) Transition(ctx context.Context, tx pgx.Tx, id uuid.UUID, from, to domain.JournalStatus, lastError string) (bool, error) {
	query := `UPDATE settlement_journal SET status = $1, last_error = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4`

	tag, err := on(r.pool, tx).Exec(ctx, query, to, lastError, id, from)
	if err != nil {
		return false, fmt.Errorf("transition journal entry: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByStatus returns up to limit entries in status not touched since olderThan.
func (r *JournalRepo) ListByStatus(ctx context.Context, status domain.JournalStatus, olderThan time.Time, limit int) ([]domain.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM settlement_journal
		WHERE status = $1 AND updated_at < $2 ORDER BY updated_at LIMIT $3`

	rows, err := r.pool.Query(ctx, query, status, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var out []domain.JournalEntry
	for rows.Next() {
		j, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal rows: %w", err)
	}
	return out, nil
}

// CountByStatus counts entries in status.
func (r *JournalRepo) CountByStatus(ctx context.Context, status domain.JournalStatus) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM settlement_journal WHERE status = $1`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count journal entries: %w", err)
	}
	return n, nil
}

func scanJournal(row pgx.Row) (*domain.JournalEntry, error) {
	j := &domain.JournalEntry{}
	var source, target, rate string
	err := row.Scan(
		&j.ID, &j.UserID, &j.Reference, &j.SourceWalletID, &j.TargetWalletID,
		&j.SourceCurrency, &j.TargetCurrency, &source, &target, &rate, &j.Status,
		&j.LastError, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan journal entry: %w", err)
	}
	if j.SourceAmount, err = parseNumeric("source_amount", source); err != nil {
		return nil, err
	}
	if j.TargetAmount, err = parseNumeric("target_amount", target); err != nil {
		return nil, err
	}
	if j.ExchangeRate, err = parseNumeric("exchange_rate", rate); err != nil {
		return nil, err
	}
	return j, nil
}
