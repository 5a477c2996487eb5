package postgres

import (
	"context"
	"errors"
	"fmt"

	"fx-wallet-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PricingFXMargin is the pricing row holding the FX margin fraction.
const PricingFXMargin = "fx_margin"

// PricingRepo implements ports.PricingRepository.
type PricingRepo struct {
	pool Pool
}

// NewPricingRepo creates a new PricingRepo.
func NewPricingRepo(pool Pool) *PricingRepo {
	return &PricingRepo{pool: pool}
}

// GetExchangeMargin reads the fx_margin row.
func (r *PricingRepo) GetExchangeMargin(ctx context.Context) (decimal.Decimal, bool, error) {
	margin, _, found, err := r.get(ctx, PricingFXMargin)
	return margin, found, err
}

// GetFee reads a named fee and its currency.
func (r *PricingRepo) GetFee(ctx context.Context, name string) (decimal.Decimal, domain.Currency, bool, error) {
	return r.get(ctx, name)
}

func (r *PricingRepo) get(ctx context.Context, name string) (decimal.Decimal, domain.Currency, bool, error) {
	query := `SELECT amount::text, COALESCE(currency, '') FROM pricing WHERE name = $1`

	var amount string
	var currency domain.Currency
	err := r.pool.QueryRow(ctx, query, name).Scan(&amount, &currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, "", false, nil
		}
		return decimal.Zero, "", false, fmt.Errorf("get pricing %q: %w", name, err)
	}
	v, err := parseNumeric(name, amount)
	if err != nil {
		return decimal.Zero, "", false, err
	}
	return v, currency, true, nil
}
