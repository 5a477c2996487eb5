package service

import (
	"fmt"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

// FeeModel is a capped percentage-plus-flat provider fee:
// fee(gross) = min(Rate*gross + Flat, Cap).
type FeeModel struct {
	Rate decimal.Decimal
	Flat decimal.Decimal
	Cap  decimal.Decimal
}

// FeeEstimator inverts a FeeModel: given what the wallet should receive, it
// finds what to charge so the provider's fee on the charge leaves exactly
// that amount.
type FeeEstimator struct {
	model         FeeModel
	maxIterations int
}

// NewFeeEstimator creates an estimator that gives up after maxIterations.
func NewFeeEstimator(model FeeModel, maxIterations int) *FeeEstimator {
	if maxIterations < 1 {
		maxIterations = 1
	}
	return &FeeEstimator{model: model, maxIterations: maxIterations}
}

// Fee is the provider's fee on gross, rounded up to the minor unit.
func (e *FeeEstimator) Fee(gross decimal.Decimal) decimal.Decimal {
	fee := e.model.Rate.Mul(gross).Add(e.model.Flat)
	if fee.GreaterThan(e.model.Cap) {
		fee = e.model.Cap
	}
	return domain.RoundMoneyUp(fee)
}

// PayableAmount returns the gross g with g == net + Fee(g), found by
// fixed-point iteration from g0 = net. The fee is non-decreasing and capped,
// so the sequence is monotone and bounded and converges whenever Rate < 1.
func (e *FeeEstimator) PayableAmount(net decimal.Decimal) (decimal.Decimal, error) {
	if net.IsNegative() {
		return decimal.Zero, apperror.Validation("Amount must not be negative")
	}

	gross := domain.RoundMoneyUp(net)
	for i := 0; i < e.maxIterations; i++ {
		next := net.Add(e.Fee(gross))
		if next.Equal(gross) {
			return gross, nil
		}
		gross = next
	}
	return decimal.Zero, apperror.ErrFeeNotConverged(
		fmt.Errorf("payable amount for %s did not converge in %d iterations", net, e.maxIterations))
}
