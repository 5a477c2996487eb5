package handler

import (
	"net/http"

	"fx-wallet-ledger/internal/adapter/http/middleware"
	redisStore "fx-wallet-ledger/internal/adapter/storage/redis"
	"fx-wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Settlement     ports.SettlementService
	Wallets        ports.WalletService
	History        ports.HistoryService
	Cards          ports.CardService
	Webhooks       ports.WebhookService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService      // nil = audit logging disabled
	HTTPMetrics    *middleware.HTTPMetrics // nil = no request metrics
	MetricsHandler http.Handler            // nil = no /metrics
	ServiceName    string
	Mode           string
	// TrustedProxies gates which peers may set client IP headers. Nil trusts
	// none, so the connection address is the client.
	TrustedProxies  []string
	TrustedPlatform string
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()
	r.RemoteIPHeaders = []string{"X-Real-IP", "True-Client-IP", "X-Forwarded-For"}
	r.TrustedPlatform = deps.TrustedPlatform
	if err := r.SetTrustedProxies(deps.TrustedProxies); err != nil {
		deps.Logger.Error().Err(err).Strs("trusted_proxies", deps.TrustedProxies).Msg("Invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	if deps.ServiceName != "" {
		r.Use(middleware.Tracing(deps.ServiceName))
	}
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware())
	}
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// Provider callbacks authenticate themselves inside the reconciler.
	webhookHandler := NewWebhookHandler(deps.Webhooks)
	v1.POST("/webhooks", rl("webhooks"), webhookHandler.Receive)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	fxHandler := NewFXHandler(deps.Settlement, deps.History)
	fx := v1.Group("/fx", jwtAuth)
	{
		fx.POST("/quotes", rl("fx_quotes"), fxHandler.CreateQuote)
		fx.POST("/exchanges", rl("fx_exchange"), fxHandler.Exchange)
		fx.GET("/exchanges", rl("history"), fxHandler.ListExchanges)
	}

	walletHandler := NewWalletHandler(deps.Wallets, deps.Settlement, deps.History)
	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.GET("", rl("wallets"), walletHandler.List)
		wallets.POST("", rl("wallets"), walletHandler.Create)
		wallets.POST("/defaults", rl("wallets"), walletHandler.CreateDefaults)
		wallets.POST("/fund", rl("wallets_fund"), walletHandler.Fund)
		wallets.GET("/deposits", rl("history"), walletHandler.ListDeposits)
	}

	cardHandler := NewCardHandler(deps.Cards, deps.Settlement, deps.History)
	cards := v1.Group("/cards", jwtAuth)
	{
		cards.GET("", rl("cards"), cardHandler.List)
		cards.POST("", rl("cards"), cardHandler.Request)
		cards.GET("/transactions", rl("history"), cardHandler.ListTransactions)
		cards.POST("/:id/fund", rl("cards"), cardHandler.Fund)
		cards.PATCH("/:id/freeze", rl("cards"), cardHandler.Freeze)
		cards.PATCH("/:id/unfreeze", rl("cards"), cardHandler.Unfreeze)
	}

	adminHandler := NewAdminHandler(deps.Settlement)
	admin := v1.Group("/admin", jwtAuth, middleware.RequireRole(ports.RoleAdmin))
	{
		admin.POST("/settlements/:id/resolve", adminHandler.ResolveSettlement)
	}

	return r
}
