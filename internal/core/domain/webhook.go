package domain

import "encoding/json"

// Provider webhook event names.
const (
	WebhookChargeSuccess         = "charge.success"
	WebhookCardCreatedSuccessful = "issuing.created.successful"
	WebhookCardCreatedFailed     = "issuing.created.failed"
	WebhookCardFundingSuccessful = "issuing.funding.successful"
	WebhookCardFundingFailed     = "issuing.funding.failed"
)

// WebhookEvent is an inbound provider notification. Payment events carry their
// reference under data, card events at the top level.
type WebhookEvent struct {
	Event     string          `json:"event"`
	Reference string          `json:"reference,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`

	// Set by the transport, not the payload.
	SourceIP  string `json:"-"`
	RawBody   []byte `json:"-"`
	Signature string `json:"-"`
}

// IsCardEvent reports whether the event comes from the card issuer.
func (e WebhookEvent) IsCardEvent() bool {
	switch e.Event {
	case WebhookCardCreatedSuccessful, WebhookCardCreatedFailed,
		WebhookCardFundingSuccessful, WebhookCardFundingFailed:
		return true
	}
	return false
}

// DataReference extracts data.reference from payment events.
func (e WebhookEvent) DataReference() string {
	if len(e.Data) == 0 {
		return ""
	}
	var d struct {
		Reference string `json:"reference"`
	}
	if err := json.Unmarshal(e.Data, &d); err != nil {
		return ""
	}
	return d.Reference
}
