package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"fx-wallet-ledger/config"
	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Maplerad implements ports.RateGateway and ports.CardGateway.
type Maplerad struct {
	api *apiClient
}

// NewMaplerad creates a Maplerad client. A nil doer uses an *http.Client with
// the configured timeout.
func NewMaplerad(cfg config.ProviderConfig, doer Doer, observer CallObserver, log zerolog.Logger) *Maplerad {
	return &Maplerad{
		api: newAPIClient("maplerad", cfg.BaseURL, cfg.SecretKey, cfg.Timeout, doer, observer, log),
	}
}

type mapleradQuote struct {
	Reference string          `json:"reference"`
	Rate      decimal.Decimal `json:"rate"`
}

// QuoteRate locks a provider rate for amountMinor of source.
func (m *Maplerad) QuoteRate(ctx context.Context, source, target domain.Currency, amountMinor int64) (*ports.RateQuote, error) {
	body := map[string]any{
		"source_currency": source,
		"target_currency": target,
		"amount":          amountMinor,
	}
	var q mapleradQuote
	if err := m.api.call(ctx, "quote", http.MethodPost, "/fx/quote", body, &q); err != nil {
		return nil, err
	}
	if q.Reference == "" || !q.Rate.IsPositive() {
		return nil, m.api.fail("quote", http.StatusOK, ports.ErrGatewayRejected, "quote has no reference or rate", nil)
	}
	return &ports.RateQuote{Rate: q.Rate, Reference: q.Reference}, nil
}

// ExecuteExchange redeems a provider quote.
func (m *Maplerad) ExecuteExchange(ctx context.Context, reference string) error {
	return m.api.call(ctx, "exchange", http.MethodPost, "/fx", map[string]string{"quote_reference": reference}, nil)
}

type mapleradCardRequest struct {
	Reference string `json:"reference"`
}

// CreateCard asks for a virtual card. The card is delivered by webhook.
func (m *Maplerad) CreateCard(ctx context.Context, req ports.CardIssueRequest) (string, error) {
	body := map[string]any{
		"customer_id":  req.CustomerID,
		"currency":     req.Currency,
		"brand":        strings.ToUpper(req.Brand),
		"card_pin":     req.Pin,
		"type":         "VIRTUAL",
		"auto_approve": true,
	}
	var out mapleradCardRequest
	if err := m.api.call(ctx, "create_card", http.MethodPost, "/issuing", body, &out); err != nil {
		return "", err
	}
	if out.Reference == "" {
		// Accepted but unidentifiable; the request may still complete.
		return "", m.api.fail("create_card", http.StatusOK, ports.ErrOutcomeUnknown, "response has no card reference", nil)
	}
	return out.Reference, nil
}

type mapleradCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MaskedPAN  string `json:"masked_pan"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	Type       string `json:"type"`
	Issuer     string `json:"issuer"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
}

// GetCard fetches the issued card, including PAN and CVV.
func (m *Maplerad) GetCard(ctx context.Context, cardReference string) (*ports.IssuedCard, error) {
	var c mapleradCard
	if err := m.api.call(ctx, "get_card", http.MethodGet, "/issuing/"+url.PathEscape(cardReference), nil, &c); err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, m.api.fail("get_card", http.StatusOK, ports.ErrGatewayRejected, "card has no id", nil)
	}
	return &ports.IssuedCard{
		ID:        c.ID,
		Name:      c.Name,
		MaskedPAN: c.MaskedPAN,
		Number:    c.CardNumber,
		Expiry:    c.Expiry,
		CVV:       c.CVV,
		Type:      c.Type,
		Issuer:    c.Issuer,
		Currency:  domain.Currency(strings.ToUpper(c.Currency)),
		Status:    c.Status,
	}, nil
}

// FundCard moves amountMinor onto the card. reference lets the funding
// webhook and VerifyCardFunding find this top-up.
func (m *Maplerad) FundCard(ctx context.Context, providerCardID string, amountMinor int64, reference string) error {
	body := map[string]any{"amount": amountMinor, "reference": reference}
	return m.api.call(ctx, "fund_card", http.MethodPost, "/issuing/"+url.PathEscape(providerCardID)+"/fund", body, nil)
}

type mapleradTransaction struct {
	Status string `json:"status"`
}

// VerifyCardFunding asks the issuer for the final state of the top-up with
// reference. A top-up the issuer has no record of never executed.
func (m *Maplerad) VerifyCardFunding(ctx context.Context, reference string) (ports.FundingState, error) {
	var tx mapleradTransaction
	err := m.api.call(ctx, "verify_funding", http.MethodGet, "/transactions/"+url.PathEscape(reference), nil, &tx)
	if err != nil {
		if errors.Is(err, ports.ErrUnknownResource) {
			return ports.FundingFailed, nil
		}
		return "", err
	}
	switch strings.ToUpper(tx.Status) {
	case "SUCCESS", "SUCCESSFUL":
		return ports.FundingSucceeded, nil
	case "FAILED", "FAILURE", "DECLINED", "REVERSED", "CANCELLED":
		return ports.FundingFailed, nil
	default:
		return ports.FundingPending, nil
	}
}

// FreezeCard disables the card at the issuer.
func (m *Maplerad) FreezeCard(ctx context.Context, providerCardID string) error {
	return m.api.call(ctx, "freeze_card", http.MethodPatch, "/issuing/"+url.PathEscape(providerCardID)+"/freeze", nil, nil)
}

// UnfreezeCard re-enables the card at the issuer.
func (m *Maplerad) UnfreezeCard(ctx context.Context, providerCardID string) error {
	return m.api.call(ctx, "unfreeze_card", http.MethodPatch, "/issuing/"+url.PathEscape(providerCardID)+"/unfreeze", nil, nil)
}
