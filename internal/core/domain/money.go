package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of decimal places in one major unit.
// Every supported currency (cents, kobo, pesewas) uses two.
const MinorUnitExponent = 2

var minorUnitsPerMajor = decimal.New(1, MinorUnitExponent)

// ToMinorUnits converts a major-unit amount to the provider's integer minor
// unit. Amounts with sub-minor precision are rejected rather than rounded.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	minor := amount.Mul(minorUnitsPerMajor)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than %d decimal places", amount, MinorUnitExponent)
	}
	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s overflows minor units", amount)
	}
	return minor.IntPart(), nil
}

// FromMinorUnits converts an integer minor-unit amount back to major units.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -MinorUnitExponent)
}

// RoundMoney truncates toward zero at minor-unit precision.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundDown(MinorUnitExponent)
}

// RoundMoneyUp rounds away from zero at minor-unit precision.
func RoundMoneyUp(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundUp(MinorUnitExponent)
}
