package handler

import (
	"context"

	"fx-wallet-ledger/internal/adapter/http/dto"
	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"
	"fx-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CardHandler handles virtual card endpoints.
type CardHandler struct {
	cards      ports.CardService
	settlement ports.SettlementService
	history    ports.HistoryService
}

func NewCardHandler(cards ports.CardService, settlement ports.SettlementService, history ports.HistoryService) *CardHandler {
	return &CardHandler{cards: cards, settlement: settlement, history: history}
}

// List handles GET /api/v1/cards.
func (h *CardHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cards, err := h.cards.ListCards(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cards)
}

// Request handles POST /api/v1/cards. Issuance completes asynchronously.
func (h *CardHandler) Request(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.RequestCardRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.SanitizeStruct(&req)
	currency, _ := domain.ParseCurrency(req.Currency)

	cardReq, err := h.cards.RequestCard(c.Request.Context(), ports.RequestCardInput{
		UserID:   userID,
		Currency: currency,
		Brand:    req.Brand,
		Pin:      req.Pin,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cardReq)
}

// Fund handles POST /api/v1/cards/:id/fund.
func (h *CardHandler) Fund(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.FundCardRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, err := dto.ParseMoney(req.Amount.String())
	if err != nil {
		response.Error(c, apperror.Validation("Invalid amount"))
		return
	}

	txn, err := h.settlement.FundCard(c.Request.Context(), ports.FundCardRequest{
		UserID: userID,
		CardID: cardID,
		Amount: amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, txn)
}

// Freeze handles PATCH /api/v1/cards/:id/freeze.
func (h *CardHandler) Freeze(c *gin.Context) {
	h.setStatus(c, h.cards.FreezeCard)
}

// Unfreeze handles PATCH /api/v1/cards/:id/unfreeze.
func (h *CardHandler) Unfreeze(c *gin.Context) {
	h.setStatus(c, h.cards.UnfreezeCard)
}

func (h *CardHandler) setStatus(c *gin.Context, apply func(ctx context.Context, userID, cardID uuid.UUID) (*domain.VirtualCard, error)) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	cardID, ok := pathID(c)
	if !ok {
		return
	}
	card, err := apply(c.Request.Context(), userID, cardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, card)
}

// ListTransactions handles GET /api/v1/cards/transactions.
func (h *CardHandler) ListTransactions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, ok := pageParams(c)
	if !ok {
		return
	}
	items, total, err := h.history.ListCardTransactions(c.Request.Context(), userID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, page.Page, page.PageSize, total)
}
