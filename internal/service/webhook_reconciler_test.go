package service

import (
	"context"
	"errors"
	"testing"

	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports/mocks"
	"fx-wallet-ledger/pkg/apperror"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testPaystackSecret = "sk_test_webhook"

type reconcilerFixture struct {
	reconciler *WebhookReconciler
	settlement *mocks.MockSettlementService
	cards      *mocks.MockCardService
	markers    *mocks.MockProcessedEventStore
	signatures *HMACSignatureService
	metrics    *Metrics
}

func newReconcilerFixture(t *testing.T, verify bool) *reconcilerFixture {
	ctrl := gomock.NewController(t)
	f := &reconcilerFixture{
		settlement: mocks.NewMockSettlementService(ctrl),
		cards:      mocks.NewMockCardService(ctrl),
		markers:    mocks.NewMockProcessedEventStore(ctrl),
		signatures: NewHMACSignatureService(),
		metrics:    NewMetrics(prometheus.NewRegistry()),
	}
	f.reconciler = NewWebhookReconciler(f.settlement, f.cards, f.markers, f.signatures, WebhookConfig{
		AllowedIPs:      []string{"52.31.139.75", " 3.8.3.133 "},
		PaystackSecret:  testPaystackSecret,
		VerifySignature: verify,
	}, f.metrics, newTestLogger())
	return f
}

func chargeEvent(reference string) domain.WebhookEvent {
	body := []byte(`{"event":"charge.success","data":{"reference":"` + reference + `"}}`)
	return domain.WebhookEvent{
		Event:    domain.WebhookChargeSuccess,
		Data:     []byte(`{"reference":"` + reference + `"}`),
		RawBody:  body,
		SourceIP: "203.0.113.9",
	}
}

func (f *reconcilerFixture) expectFresh(key string) {
	f.markers.EXPECT().IsProcessed(gomock.Any(), key).Return(false, nil)
	f.markers.EXPECT().MarkProcessed(gomock.Any(), key, gomock.Any()).Return(true, nil)
}

func TestWebhook_CardEventFromUntrustedIP(t *testing.T) {
	f := newReconcilerFixture(t, false)
	// No store or handler expectations: rejection happens before either.

	err := f.reconciler.Handle(context.Background(), domain.WebhookEvent{
		Event: domain.WebhookCardFundingSuccessful, Reference: "top-1", SourceIP: "198.51.100.4",
	})
	assert.True(t, apperror.HasCode(err, "SEC_001"))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.WebhooksTotal.WithLabelValues(domain.WebhookCardFundingSuccessful, "SEC_001")))
}

func TestWebhook_CardEventFromAllowedIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
	}{
		{"bare", "52.31.139.75"},
		{"with port", "52.31.139.75:44321"},
		{"configured with spaces", "3.8.3.133"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReconcilerFixture(t, false)
			f.expectFresh(domain.WebhookCardFundingSuccessful + ":top-1")
			f.settlement.EXPECT().SettleCardFunding(gomock.Any(), "top-1", true).Return(nil)

			err := f.reconciler.Handle(context.Background(), domain.WebhookEvent{
				Event: domain.WebhookCardFundingSuccessful, Reference: "top-1", SourceIP: tt.ip,
			})
			assert.NoError(t, err)
		})
	}
}

func TestWebhook_ChargeSuccessRoutesToDeposit(t *testing.T) {
	f := newReconcilerFixture(t, false)
	f.expectFresh("charge.success:dep-1")
	f.settlement.EXPECT().ReconcileDeposit(gomock.Any(), "dep-1").Return(nil)

	assert.NoError(t, f.reconciler.Handle(context.Background(), chargeEvent("dep-1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.WebhooksTotal.WithLabelValues("charge.success", "success")))
}

func TestWebhook_ProcessedMarkerShortCircuits(t *testing.T) {
	f := newReconcilerFixture(t, false)
	f.markers.EXPECT().IsProcessed(gomock.Any(), "charge.success:dep-2").Return(true, nil)
	f.settlement.EXPECT().ReconcileDeposit(gomock.Any(), gomock.Any()).Times(0)

	assert.NoError(t, f.reconciler.Handle(context.Background(), chargeEvent("dep-2")))
}

func TestWebhook_MarkerLookupFailureStillHandles(t *testing.T) {
	f := newReconcilerFixture(t, false)
	f.markers.EXPECT().IsProcessed(gomock.Any(), "charge.success:dep-3").Return(false, errors.New("redis down"))
	f.settlement.EXPECT().ReconcileDeposit(gomock.Any(), "dep-3").Return(nil)
	f.markers.EXPECT().MarkProcessed(gomock.Any(), "charge.success:dep-3", gomock.Any()).Return(false, errors.New("redis down"))

	assert.NoError(t, f.reconciler.Handle(context.Background(), chargeEvent("dep-3")))
}

func TestWebhook_HandlerErrorIsNotMarked(t *testing.T) {
	f := newReconcilerFixture(t, false)
	f.markers.EXPECT().IsProcessed(gomock.Any(), "charge.success:dep-4").Return(false, nil)
	f.settlement.EXPECT().ReconcileDeposit(gomock.Any(), "dep-4").Return(apperror.ErrPaymentUnverified())
	f.markers.EXPECT().MarkProcessed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := f.reconciler.Handle(context.Background(), chargeEvent("dep-4"))
	assert.True(t, apperror.HasCode(err, "EXT_003"))
}

func TestWebhook_Signature(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newReconcilerFixture(t, true)
		event := chargeEvent("dep-5")
		event.Signature = f.signatures.Sign(testPaystackSecret, event.RawBody)
		f.expectFresh("charge.success:dep-5")
		f.settlement.EXPECT().ReconcileDeposit(gomock.Any(), "dep-5").Return(nil)

		assert.NoError(t, f.reconciler.Handle(context.Background(), event))
	})

	t.Run("tampered", func(t *testing.T) {
		f := newReconcilerFixture(t, true)
		event := chargeEvent("dep-6")
		event.Signature = f.signatures.Sign(testPaystackSecret, []byte(`{"other":"body"}`))

		err := f.reconciler.Handle(context.Background(), event)
		assert.True(t, apperror.HasCode(err, "SEC_002"))
	})

	t.Run("missing when disabled", func(t *testing.T) {
		f := newReconcilerFixture(t, false)
		f.expectFresh("charge.success:dep-7")
		f.settlement.EXPECT().ReconcileDeposit(gomock.Any(), "dep-7").Return(nil)

		assert.NoError(t, f.reconciler.Handle(context.Background(), chargeEvent("dep-7")))
	})
}

func TestWebhook_UnknownEventIgnored(t *testing.T) {
	f := newReconcilerFixture(t, false)
	err := f.reconciler.Handle(context.Background(), domain.WebhookEvent{Event: "transfer.success", Reference: "x"})
	assert.NoError(t, err)
}

func TestWebhook_MissingReference(t *testing.T) {
	f := newReconcilerFixture(t, false)
	err := f.reconciler.Handle(context.Background(), domain.WebhookEvent{
		Event: domain.WebhookCardCreatedFailed, SourceIP: "52.31.139.75",
	})
	assert.True(t, apperror.HasCode(err, "LED_002"))
}

func TestWebhook_CardRoutes(t *testing.T) {
	const ip = "52.31.139.75"
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		f := newReconcilerFixture(t, false)
		f.expectFresh(domain.WebhookCardCreatedSuccessful + ":cref-1")
		f.cards.EXPECT().HandleCardCreated(gomock.Any(), "cref-1").Return(&domain.VirtualCard{}, nil)
		assert.NoError(t, f.reconciler.Handle(ctx, domain.WebhookEvent{
			Event: domain.WebhookCardCreatedSuccessful, Reference: "cref-1", SourceIP: ip,
		}))
	})

	t.Run("creation failed", func(t *testing.T) {
		f := newReconcilerFixture(t, false)
		f.expectFresh(domain.WebhookCardCreatedFailed + ":cref-2")
		f.cards.EXPECT().HandleCardCreationFailed(gomock.Any(), "cref-2").Return(nil)
		assert.NoError(t, f.reconciler.Handle(ctx, domain.WebhookEvent{
			Event: domain.WebhookCardCreatedFailed, Reference: "cref-2", SourceIP: ip,
		}))
	})

	t.Run("funding failed falls back to data reference", func(t *testing.T) {
		f := newReconcilerFixture(t, false)
		f.expectFresh(domain.WebhookCardFundingFailed + ":top-9")
		f.settlement.EXPECT().SettleCardFunding(gomock.Any(), "top-9", false).Return(nil)
		assert.NoError(t, f.reconciler.Handle(ctx, domain.WebhookEvent{
			Event: domain.WebhookCardFundingFailed, Data: []byte(`{"reference":"top-9"}`), SourceIP: ip,
		}))
	})
}

func TestNormalizeIP(t *testing.T) {
	assert.Equal(t, "10.0.0.1", normalizeIP(" 10.0.0.1 "))
	assert.Equal(t, "10.0.0.1", normalizeIP("10.0.0.1:8080"))
	assert.Equal(t, "::1", normalizeIP("[::1]:443"))
	assert.Equal(t, "::1", normalizeIP("[::1]"))
}
