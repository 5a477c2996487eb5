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
)

// Paystack implements ports.CollectionGateway.
type Paystack struct {
	api         *apiClient
	callbackURL string
	channels    []string
}

// NewPaystack creates a Paystack client. A nil doer uses an *http.Client with
// the configured timeout.
func NewPaystack(cfg config.PaystackConfig, doer Doer, observer CallObserver, log zerolog.Logger) *Paystack {
	return &Paystack{
		api:         newAPIClient("paystack", cfg.BaseURL, cfg.SecretKey, cfg.Timeout, doer, observer, log),
		callbackURL: cfg.CallbackURL,
		channels:    cfg.Channels,
	}
}

type paystackInit struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// InitializeCollection opens a hosted payment page and returns its link.
func (p *Paystack) InitializeCollection(ctx context.Context, req ports.CollectionRequest) (string, error) {
	body := map[string]any{
		"email":     req.Email,
		"amount":    req.AmountMinor,
		"currency":  req.Currency,
		"reference": req.Reference,
	}
	if p.callbackURL != "" {
		body["callback_url"] = p.callbackURL
	}
	if len(p.channels) > 0 {
		body["channels"] = p.channels
	}

	var out paystackInit
	if err := p.api.call(ctx, "initialize", http.MethodPost, "/transaction/initialize", body, &out); err != nil {
		return "", err
	}
	if out.AuthorizationURL == "" {
		return "", p.api.fail("initialize", http.StatusOK, ports.ErrOutcomeUnknown, "response has no authorization_url", nil)
	}
	return out.AuthorizationURL, nil
}

type paystackVerify struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
}

// VerifyCollection fetches the provider's record of the collection with
// reference. Amounts are in minor units, as Paystack reports them.
func (p *Paystack) VerifyCollection(ctx context.Context, reference string) (*ports.CollectionReceipt, error) {
	var out paystackVerify
	err := p.api.call(ctx, "verify", http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &out)
	if err != nil {
		if errors.Is(err, ports.ErrGatewayRejected) {
			return &ports.CollectionReceipt{}, nil
		}
		return nil, err
	}
	return &ports.CollectionReceipt{
		Paid:        out.Status == "success" && (out.Reference == "" || out.Reference == reference),
		AmountMinor: out.Amount,
		Currency:    domain.Currency(strings.ToUpper(out.Currency)),
	}, nil
}
