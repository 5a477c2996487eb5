package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const quoteKeyPrefix = "fx_"

// Quote is a single-use locked exchange rate. It lives only in the quote
// cache and is never persisted.
type Quote struct {
	Reference      string          `json:"reference"`
	UserID         uuid.UUID       `json:"userId"`
	SourceCurrency Currency        `json:"sourceCurrency"`
	TargetCurrency Currency        `json:"targetCurrency"`
	SourceAmount   decimal.Decimal `json:"sourceAmount"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	ExchangeRate   decimal.Decimal `json:"exchangeRate"`
}

// QuoteCacheKey returns the cache key a quote is stored under.
func QuoteCacheKey(reference string) string {
	return quoteKeyPrefix + reference
}

// EffectiveRate removes margin (a fraction of the rate) from the provider rate.
func EffectiveRate(providerRate, margin decimal.Decimal) decimal.Decimal {
	return providerRate.Sub(margin.Mul(providerRate))
}
