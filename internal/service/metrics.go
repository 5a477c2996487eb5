package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the settlement engine's Prometheus collectors. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	QuotesIssued       *prometheus.CounterVec
	SettlementsTotal   *prometheus.CounterVec
	SettlementDuration *prometheus.HistogramVec
	GatewayCalls       *prometheus.CounterVec
	GatewayDuration    *prometheus.HistogramVec
	WebhooksTotal      *prometheus.CounterVec
	JournalUnknown     prometheus.Gauge
	JournalSwept       prometheus.Counter
}

// NewMetrics registers the engine's collectors on registry.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		QuotesIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_fx_quotes_issued_total",
				Help: "Total FX quotes issued.",
			},
			[]string{"source", "target"},
		),
		SettlementsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_settlements_total",
				Help: "Total settlements by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		SettlementDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_settlement_duration_seconds",
				Help:    "Settlement processing duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
		GatewayCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_gateway_calls_total",
				Help: "Total provider calls by outcome.",
			},
			[]string{"provider", "op", "outcome"},
		),
		GatewayDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_gateway_call_duration_seconds",
				Help:    "Provider call duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "op"},
		),
		WebhooksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_webhooks_total",
				Help: "Total provider webhooks by event and result.",
			},
			[]string{"event", "result"},
		),
		JournalUnknown: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_journal_unknown_outcome",
				Help: "Settlement journal entries awaiting manual reconciliation.",
			},
		),
		JournalSwept: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_journal_swept_total",
				Help: "Executed journal entries applied by the sweeper.",
			},
		),
	}

	registry.MustRegister(
		m.QuotesIssued,
		m.SettlementsTotal,
		m.SettlementDuration,
		m.GatewayCalls,
		m.GatewayDuration,
		m.WebhooksTotal,
		m.JournalUnknown,
		m.JournalSwept,
	)
	return m
}

func (m *Metrics) IncQuote(source, target string) {
	if m == nil {
		return
	}
	m.QuotesIssued.WithLabelValues(source, target).Inc()
}

// ObserveSettlement records one settlement attempt of kind (fx, deposit,
// card_funding) ending in outcome.
func (m *Metrics) ObserveSettlement(kind, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.SettlementsTotal.WithLabelValues(kind, outcome).Inc()
	m.SettlementDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveGatewayCall implements gateway.CallObserver.
func (m *Metrics) ObserveGatewayCall(provider, op, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.GatewayCalls.WithLabelValues(provider, op, outcome).Inc()
	m.GatewayDuration.WithLabelValues(provider, op).Observe(d.Seconds())
}

func (m *Metrics) IncWebhook(event, result string) {
	if m == nil {
		return
	}
	m.WebhooksTotal.WithLabelValues(event, result).Inc()
}

func (m *Metrics) SetJournalUnknown(n int64) {
	if m == nil {
		return
	}
	m.JournalUnknown.Set(float64(n))
}

func (m *Metrics) AddJournalSwept(n int) {
	if m == nil {
		return
	}
	m.JournalSwept.Add(float64(n))
}
