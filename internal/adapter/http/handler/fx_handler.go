package handler

import (
	"fx-wallet-ledger/internal/adapter/http/dto"
	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"
	"fx-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// FXHandler handles quote and exchange endpoints.
type FXHandler struct {
	settlement ports.SettlementService
	history    ports.HistoryService
}

// NewFXHandler creates a new FXHandler.
func NewFXHandler(settlement ports.SettlementService, history ports.HistoryService) *FXHandler {
	return &FXHandler{settlement: settlement, history: history}
}

// CreateQuote handles POST /api/v1/fx/quotes.
func (h *FXHandler) CreateQuote(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, err := dto.ParseMoney(req.Amount.String())
	if err != nil {
		response.Error(c, apperror.Validation("Invalid amount"))
		return
	}
	source, _ := domain.ParseCurrency(req.SourceCurrency)
	target, _ := domain.ParseCurrency(req.TargetCurrency)

	quote, err := h.settlement.GenerateQuote(c.Request.Context(), ports.QuoteRequest{
		UserID:         userID,
		SourceCurrency: source,
		TargetCurrency: target,
		Amount:         amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, quote)
}

// Exchange handles POST /api/v1/fx/exchanges.
func (h *FXHandler) Exchange(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.ExchangeRequest
	if !bindJSON(c, &req) {
		return
	}

	exchange, err := h.settlement.ExchangeCurrency(c.Request.Context(), userID, req.Reference)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exchange)
}

// ListExchanges handles GET /api/v1/fx/exchanges.
func (h *FXHandler) ListExchanges(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, ok := pageParams(c)
	if !ok {
		return
	}
	items, total, err := h.history.ListExchanges(c.Request.Context(), userID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, page.Page, page.PageSize, total)
}
