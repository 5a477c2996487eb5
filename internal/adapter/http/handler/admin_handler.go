package handler

import (
	"fx-wallet-ledger/internal/adapter/http/dto"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operator reconciliation.
type AdminHandler struct {
	settlement ports.SettlementService
}

func NewAdminHandler(settlement ports.SettlementService) *AdminHandler {
	return &AdminHandler{settlement: settlement}
}

// ResolveSettlement handles POST /api/v1/admin/settlements/:id/resolve.
func (h *AdminHandler) ResolveSettlement(c *gin.Context) {
	journalID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ResolveSettlementRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.settlement.ResolveUnknownOutcome(c.Request.Context(), journalID, *req.Executed)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}
