package service

import (
	"context"
	"sync"
	"testing"
	"time"

	redisstore "fx-wallet-ledger/internal/adapter/storage/redis"
	"fx-wallet-ledger/internal/core/domain"
	"fx-wallet-ledger/internal/core/ports"
	"fx-wallet-ledger/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testQuoteTTL = 180 * time.Second

// recordingPublisher captures published ledger events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.LedgerEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// engineHarness wires a SettlementEngine to an in-memory ledger, a real
// Redis quote cache on miniredis and gomock gateways. Gateways without an
// EXPECT fail the test if called.
type engineHarness struct {
	engine      *SettlementEngine
	ledger      *memLedger
	redis       *miniredis.Miniredis
	quotes      *redisstore.QuoteCache
	rates       *mocks.MockRateGateway
	collections *mocks.MockCollectionGateway
	cardGateway *mocks.MockCardGateway
	events      *recordingPublisher
	metrics     *Metrics
}

func newEngineHarness(t *testing.T) *engineHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	h := &engineHarness{
		ledger:      newMemLedger(),
		redis:       mr,
		quotes:      redisstore.NewQuoteCache(client),
		rates:       mocks.NewMockRateGateway(ctrl),
		collections: mocks.NewMockCollectionGateway(ctrl),
		cardGateway: mocks.NewMockCardGateway(ctrl),
		events:      &recordingPublisher{},
		metrics:     NewMetrics(prometheus.NewRegistry()),
	}
	h.engine = NewSettlementEngine(SettlementDeps{
		Wallets:      memWalletRepo{h.ledger},
		Exchanges:    memExchangeRepo{h.ledger},
		Deposits:     memDepositRepo{h.ledger},
		Cards:        memCardRepo{h.ledger},
		CardTxns:     memCardTxnRepo{h.ledger},
		Journal:      memJournalRepo{h.ledger},
		Pricing:      memPricingRepo{h.ledger},
		Transactor:   memTransactor{h.ledger},
		Quotes:       h.quotes,
		Rates:        h.rates,
		Collections:  h.collections,
		CardGateway:  h.cardGateway,
		Publisher:    h.events,
		FeeEstimator: defaultFeeEstimator(),
		Metrics:      h.metrics,
	}, SettlementConfig{
		QuoteTTL:       testQuoteTTL,
		DefaultMargin:  dec("0.1"),
		SweepGrace:     2 * time.Minute,
		SweepBatchSize: 10,
	}, newTestLogger())
	return h
}

// issueQuote locks a quote for amount at providerRate with the default margin.
func (h *engineHarness) issueQuote(t *testing.T, userID uuid.UUID, source, target domain.Currency, amount, providerRate, reference string) *domain.Quote {
	t.Helper()
	minor, err := domain.ToMinorUnits(dec(amount))
	require.NoError(t, err)

	h.rates.EXPECT().
		QuoteRate(gomock.Any(), source, target, minor).
		Return(&ports.RateQuote{Rate: dec(providerRate), Reference: reference}, nil)

	quote, err := h.engine.GenerateQuote(context.Background(), ports.QuoteRequest{
		UserID:         userID,
		SourceCurrency: source,
		TargetCurrency: target,
		Amount:         dec(amount),
	})
	require.NoError(t, err)
	return quote
}

func (h *engineHarness) quoteCached(t *testing.T, reference string) bool {
	t.Helper()
	raw, err := h.quotes.Get(context.Background(), domain.QuoteCacheKey(reference))
	require.NoError(t, err)
	return raw != nil
}
