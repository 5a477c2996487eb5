package dto

import "encoding/json"

// Amounts are json.Number so clients may send 12.5 or "12.5" and no value
// ever passes through float64.

// QuoteRequest is the request body for POST /fx/quotes.
type QuoteRequest struct {
	SourceCurrency string      `json:"source_currency" binding:"required,currency"`
	TargetCurrency string      `json:"target_currency" binding:"required,currency"`
	Amount         json.Number `json:"amount" binding:"required,money"`
}

// ExchangeRequest redeems a quote.
type ExchangeRequest struct {
	Reference string `json:"reference" binding:"required,max=100,safe_id"`
}

// CreateWalletRequest is the request body for POST /wallets.
type CreateWalletRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
}

// FundWalletRequest starts a hosted collection for the net amount.
type FundWalletRequest struct {
	Currency string      `json:"currency" binding:"required,currency"`
	Amount   json.Number `json:"amount" binding:"required,money"`
}

// RequestCardRequest asks the issuer for a virtual card.
type RequestCardRequest struct {
	Currency string `json:"currency" binding:"required,currency"`
	Brand    string `json:"brand" binding:"required,oneof=VISA MASTERCARD visa mastercard"`
	Pin      string `json:"pin" binding:"required,len=4,numeric"`
}

// FundCardRequest tops a card up from the wallet of the card's currency.
type FundCardRequest struct {
	Amount json.Number `json:"amount" binding:"required,money"`
}

// ResolveSettlementRequest records the operator's finding for an UNKNOWN
// settlement.
type ResolveSettlementRequest struct {
	Executed *bool `json:"executed" binding:"required"`
}

// PageQuery binds ?page=&per_page= on history listings.
type PageQuery struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}
