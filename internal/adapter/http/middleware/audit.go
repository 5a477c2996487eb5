package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful write operations after the handler runs.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		var userID *uuid.UUID
		if id, ok := UserID(c); ok {
			userID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			UserID:       userID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

// mapRouteToAction matches on the registered route pattern, so path
// parameters do not need parsing.
func mapRouteToAction(route, method string) (domain.AuditAction, string) {
	if method != http.MethodPost {
		return "", ""
	}
	switch route {
	case "/api/v1/fx/quotes":
		return domain.AuditActionQuote, "quote"
	case "/api/v1/fx/exchanges":
		return domain.AuditActionExchange, "exchange"
	case "/api/v1/wallets", "/api/v1/wallets/defaults":
		return domain.AuditActionCreateWallet, "wallet"
	case "/api/v1/wallets/fund":
		return domain.AuditActionFundWallet, "deposit"
	case "/api/v1/cards":
		return domain.AuditActionRequestCard, "card"
	case "/api/v1/cards/:id/fund":
		return domain.AuditActionFundCard, "card"
	case "/api/v1/admin/settlements/:id/resolve":
		return domain.AuditActionResolveJournal, "settlement"
	}
	return "", ""
}
