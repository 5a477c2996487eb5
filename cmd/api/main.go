package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fx-wallet-ledger/config"
	"fx-wallet-ledger/internal/adapter/gateway"
	httpHandler "fx-wallet-ledger/internal/adapter/http/handler"
	"fx-wallet-ledger/internal/adapter/http/middleware"
	"fx-wallet-ledger/internal/adapter/messaging/kafka"
	pgStorage "fx-wallet-ledger/internal/adapter/storage/postgres"
	redisStorage "fx-wallet-ledger/internal/adapter/storage/redis"
	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/internal/service"
	"fx-wallet-ledger/pkg/logger"
	"fx-wallet-ledger/pkg/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load(os.Getenv("FWL_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting FX wallet ledger")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise tracing")
	}

	// PostgreSQL
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Redis
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := service.NewMetrics(registry)

	// Repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	exchangeRepo := pgStorage.NewExchangeRepo(pool)
	depositRepo := pgStorage.NewDepositRepo(pool)
	cardRepo := pgStorage.NewCardRepo(pool)
	cardTxnRepo := pgStorage.NewCardTransactionRepo(pool)
	journalRepo := pgStorage.NewJournalRepo(pool)
	pricingRepo := pgStorage.NewPricingRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis stores
	quoteCache := redisStorage.NewQuoteCache(rdb)
	eventMarkers := redisStorage.NewEventMarkerStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Providers. Timeouts live on the client; the gateways never retry.
	maplerad := gateway.NewMaplerad(cfg.Maplerad, &http.Client{Timeout: cfg.Maplerad.Timeout}, metrics, log)
	paystack := gateway.NewPaystack(cfg.Paystack, &http.Client{Timeout: cfg.Paystack.Timeout}, metrics, log)

	var publisher interface {
		ports.EventPublisher
		Close() error
	}
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := kafka.NewPublisher(cfg.Kafka, kafka.NewProducerMetrics(registry), log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		publisher = p
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka publisher ready")
	} else {
		publisher = kafka.NewNoopPublisher(log)
		log.Warn().Msg("No Kafka brokers configured, ledger events will only be logged")
	}
	defer publisher.Close()

	// Core services
	vault, err := service.NewAESEncryptionService(cfg.CardVault.MasterKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise card vault")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	feeEstimator := service.NewFeeEstimator(service.FeeModel{
		Rate: cfg.Fees.Rate,
		Flat: cfg.Fees.Flat,
		Cap:  cfg.Fees.Cap,
	}, cfg.Fees.MaxIterations)

	// Business services
	engine := service.NewSettlementEngine(service.SettlementDeps{
		Wallets:      walletRepo,
		Exchanges:    exchangeRepo,
		Deposits:     depositRepo,
		Cards:        cardRepo,
		CardTxns:     cardTxnRepo,
		Journal:      journalRepo,
		Pricing:      pricingRepo,
		Transactor:   transactor,
		Quotes:       quoteCache,
		Rates:        maplerad,
		Collections:  paystack,
		CardGateway:  maplerad,
		Publisher:    publisher,
		FeeEstimator: feeEstimator,
		Metrics:      metrics,
	}, service.SettlementConfig{
		QuoteTTL:       cfg.FX.QuoteTTL,
		DefaultMargin:  cfg.FX.DefaultMargin,
		SweepGrace:     cfg.Sweeper.Grace,
		SweepBatchSize: cfg.Sweeper.BatchSize,
	}, log)

	cardSvc := service.NewCardService(
		cardRepo, walletRepo, pricingRepo, transactor, maplerad, vault, publisher,
		service.CardFee{Amount: cfg.Card.CreationFee, Currency: domain.Currency(cfg.Card.CreationFeeCurrency)},
		log,
	)
	walletSvc := service.NewWalletService(walletRepo, log)
	historySvc := service.NewHistoryService(depositRepo, exchangeRepo, cardTxnRepo)
	auditSvc := service.NewAuditService(auditRepo, log)

	if !cfg.Webhook.VerifyPaystackSignature {
		log.Warn().Msg("Collection webhook signatures are not verified; enable webhook.verify_paystack_signature in production")
	}
	reconciler := service.NewWebhookReconciler(engine, cardSvc, eventMarkers, sigSvc, service.WebhookConfig{
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		PaystackSecret:  cfg.Paystack.SecretKey,
		VerifySignature: cfg.Webhook.VerifyPaystackSignature,
		MarkerTTL:       cfg.Webhook.MarkerTTL,
	}, metrics, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Settlement:      engine,
		Wallets:         walletSvc,
		History:         historySvc,
		Cards:           cardSvc,
		Webhooks:        reconciler,
		TokenSvc:        tokenSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		AuditSvc:        auditSvc,
		HTTPMetrics:     middleware.NewHTTPMetrics(registry),
		MetricsHandler:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		ServiceName:     cfg.Tracing.ServiceName,
		Mode:            cfg.Server.Mode,
		TrustedProxies:  cfg.Server.TrustedProxies,
		TrustedPlatform: cfg.Server.TrustedPlatform,
		Logger:          log,
	})

	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		service.NewJournalSweeper(engine, cfg.Sweeper.Interval, log).Run(ctx)
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	<-sweeperDone
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Tracer shutdown failed")
	}

	log.Info().Msg("Server exited")
}
