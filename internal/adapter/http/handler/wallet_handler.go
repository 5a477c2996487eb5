package handler

import (
	"fx-wallet-ledger/internal/adapter/http/dto"
	"fx-wallet-ledger/internal/adapter/http/middleware"
	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"
	"fx-wallet-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet-related endpoints.
type WalletHandler struct {
	wallets    ports.WalletService
	settlement ports.SettlementService
	history    ports.HistoryService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallets ports.WalletService, settlement ports.SettlementService, history ports.HistoryService) *WalletHandler {
	return &WalletHandler{wallets: wallets, settlement: settlement, history: history}
}

// List handles GET /api/v1/wallets.
func (h *WalletHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	wallets, err := h.wallets.ListWallets(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallets)
}

// Create handles POST /api/v1/wallets.
func (h *WalletHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateWalletRequest
	if !bindJSON(c, &req) {
		return
	}
	wallet, err := h.wallets.CreateWallet(c.Request.Context(), userID, req.Currency)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, wallet)
}

// CreateDefaults handles POST /api/v1/wallets/defaults.
func (h *WalletHandler) CreateDefaults(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	wallets, err := h.wallets.CreateDefaultWallets(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, wallets)
}

// Fund handles POST /api/v1/wallets/fund. The caller pays on the hosted
// page; the wallet is credited when the provider's webhook arrives.
func (h *WalletHandler) Fund(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.FundWalletRequest
	if !bindJSON(c, &req) {
		return
	}
	amount, err := dto.ParseMoney(req.Amount.String())
	if err != nil {
		response.Error(c, apperror.Validation("Invalid amount"))
		return
	}
	currency, _ := domain.ParseCurrency(req.Currency)

	result, err := h.settlement.FundWallet(c.Request.Context(), ports.FundWalletRequest{
		UserID:   userID,
		Email:    c.GetString(middleware.CtxEmail),
		Currency: currency,
		Amount:   amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListDeposits handles GET /api/v1/wallets/deposits.
func (h *WalletHandler) ListDeposits(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	page, ok := pageParams(c)
	if !ok {
		return
	}
	items, total, err := h.history.ListDeposits(c.Request.Context(), userID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, page.Page, page.PageSize, total)
}
