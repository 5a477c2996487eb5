package service

import (
	"context"
	"net"
	"strings"
	"time"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// WebhookConfig is the webhook trust configuration.
type WebhookConfig struct {
	// AllowedIPs gate card lifecycle events.
	AllowedIPs []string
	// PaystackSecret signs collection events when VerifySignature is set.
	PaystackSecret  string
	VerifySignature bool
	MarkerTTL       time.Duration
}

// WebhookReconciler implements ports.WebhookService. It authenticates
// provider events and routes them to the engine or the card service. Every
// handler is idempotent on its own; the processed-event marker only saves
// redeliveries the store and gateway round-trips.
type WebhookReconciler struct {
	settlement ports.SettlementService
	cards      ports.CardService
	markers    ports.ProcessedEventStore
	signatures ports.SignatureService
	allowed    map[string]struct{}
	cfg        WebhookConfig
	metrics    *Metrics
	log        zerolog.Logger
}

// NewWebhookReconciler creates a new WebhookReconciler.
func NewWebhookReconciler(
	settlement ports.SettlementService,
	cards ports.CardService,
	markers ports.ProcessedEventStore,
	signatures ports.SignatureService,
	cfg WebhookConfig,
	metrics *Metrics,
	log zerolog.Logger,
) *WebhookReconciler {
	allowed := make(map[string]struct{}, len(cfg.AllowedIPs))
	for _, ip := range cfg.AllowedIPs {
		allowed[normalizeIP(ip)] = struct{}{}
	}
	if cfg.MarkerTTL <= 0 {
		cfg.MarkerTTL = 24 * time.Hour
	}
	return &WebhookReconciler{
		settlement: settlement,
		cards:      cards,
		markers:    markers,
		signatures: signatures,
		allowed:    allowed,
		cfg:        cfg,
		metrics:    metrics,
		log:        log.With().Str("component", "webhooks").Logger(),
	}
}

var _ ports.WebhookService = (*WebhookReconciler)(nil)

// Handle authenticates and applies one provider event. Unrecognised events
// are acknowledged and ignored.
func (w *WebhookReconciler) Handle(ctx context.Context, event domain.WebhookEvent) (err error) {
	defer func() { w.metrics.IncWebhook(event.Event, outcomeLabel(err)) }()

	if err := w.authenticate(event); err != nil {
		return err
	}

	handler, reference := w.route(event)
	if handler == nil {
		w.log.Debug().Str("event", event.Event).Msg("ignoring unhandled webhook event")
		return nil
	}
	if reference == "" {
		return apperror.Validation("Webhook reference is required")
	}

	log := w.log.With().Str("event", event.Event).Str("reference", reference).Logger()
	key := event.Event + ":" + reference

	done, err := w.markers.IsProcessed(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("processed-event lookup failed, handling anyway")
	}
	if done {
		log.Debug().Msg("webhook already processed")
		return nil
	}

	if err := handler(ctx, reference); err != nil {
		log.Warn().Err(err).Msg("webhook handling failed")
		return err
	}

	if _, err := w.markers.MarkProcessed(ctx, key, w.cfg.MarkerTTL); err != nil {
		log.Warn().Err(err).Msg("failed to mark webhook processed")
	}
	log.Info().Msg("webhook processed")
	return nil
}

// authenticate runs before any store access.
func (w *WebhookReconciler) authenticate(event domain.WebhookEvent) error {
	if event.IsCardEvent() {
		ip := normalizeIP(event.SourceIP)
		if _, ok := w.allowed[ip]; !ok {
			w.log.Error().Str("ip", ip).Str("event", event.Event).Msg("card webhook from untrusted source")
			return apperror.ErrUntrustedSource()
		}
	}
	if event.Event == domain.WebhookChargeSuccess && w.cfg.VerifySignature {
		if !w.signatures.Verify(w.cfg.PaystackSecret, event.RawBody, event.Signature) {
			w.log.Error().Str("ip", normalizeIP(event.SourceIP)).Msg("collection webhook with invalid signature")
			return apperror.ErrInvalidSignature()
		}
	}
	return nil
}

func (w *WebhookReconciler) route(event domain.WebhookEvent) (func(context.Context, string) error, string) {
	cardRef := event.Reference
	if cardRef == "" {
		cardRef = event.DataReference()
	}

	switch event.Event {
	case domain.WebhookChargeSuccess:
		return w.settlement.ReconcileDeposit, event.DataReference()
	case domain.WebhookCardCreatedSuccessful:
		return func(ctx context.Context, ref string) error {
			_, err := w.cards.HandleCardCreated(ctx, ref)
			return err
		}, cardRef
	case domain.WebhookCardCreatedFailed:
		return w.cards.HandleCardCreationFailed, cardRef
	case domain.WebhookCardFundingSuccessful:
		return func(ctx context.Context, ref string) error {
			return w.settlement.SettleCardFunding(ctx, ref, true)
		}, cardRef
	case domain.WebhookCardFundingFailed:
		return func(ctx context.Context, ref string) error {
			return w.settlement.SettleCardFunding(ctx, ref, false)
		}, cardRef
	}
	return nil, ""
}

// normalizeIP strips a port and surrounding space from a source address.
func normalizeIP(raw string) string {
	raw = strings.TrimSpace(raw)
	if host, _, err := net.SplitHostPort(raw); err == nil {
		return host
	}
	return strings.Trim(raw, "[]")
}
