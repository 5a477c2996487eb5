package handler

import (
	"encoding/json"
	"io"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"
	"fx-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderPaystackSignature carries the HMAC-SHA512 of the raw body.
const HeaderPaystackSignature = "x-paystack-signature"

// WebhookHandler receives provider notifications.
type WebhookHandler struct {
	webhooks ports.WebhookService
}

func NewWebhookHandler(webhooks ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// Receive handles POST /api/v1/webhooks. The raw body is kept for signature
// checks; source trust is decided by the reconciler. The source IP only
// honours forwarding headers from the router's trusted proxies.
func (h *WebhookHandler) Receive(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("Unreadable request body"))
		return
	}

	var event domain.WebhookEvent
	if err := json.Unmarshal(raw, &event); err != nil || event.Event == "" {
		response.Error(c, apperror.Validation("Malformed webhook payload"))
		return
	}
	event.RawBody = raw
	event.Signature = c.GetHeader(HeaderPaystackSignature)
	event.SourceIP = c.ClientIP()

	if err := h.webhooks.Handle(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"received": true})
}
