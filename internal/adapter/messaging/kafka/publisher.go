// Package kafka publishes committed ledger events.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fx-wallet-ledger/config"
	"fx-wallet-ledger/internal/core/domain"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// ProducerMetrics counts publish attempts by topic and status.
type ProducerMetrics struct {
	PublishTotal   *prometheus.CounterVec
	PublishLatency prometheus.Histogram
}

// NewProducerMetrics registers producer metrics on registry.
func NewProducerMetrics(registry prometheus.Registerer) *ProducerMetrics {
	m := &ProducerMetrics{
		PublishTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_event_publish_total",
				Help: "Total ledger event publish attempts.",
			},
			[]string{"topic", "status"},
		),
		PublishLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_event_publish_latency_seconds",
				Help:    "Ledger event publish latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	registry.MustRegister(m.PublishTotal, m.PublishLatency)
	return m
}

func (m *ProducerMetrics) observe(topic string, err error, d time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.PublishTotal.WithLabelValues(topic, status).Inc()
	m.PublishLatency.Observe(d.Seconds())
}

// Publisher implements ports.EventPublisher on a sarama SyncProducer.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	metrics  *ProducerMetrics
	log      zerolog.Logger
}

// NewProducerConfig returns an idempotent, ack-all producer configuration.
func NewProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V3_6_0_0
	cfg.ClientID = "fx-wallet-ledger"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Retry.Backoff = 250 * time.Millisecond
	return cfg
}

// NewPublisher connects to the configured brokers.
func NewPublisher(cfg config.KafkaConfig, metrics *ProducerMetrics, log zerolog.Logger) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers required")
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	log.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("Kafka producer connected")
	return NewPublisherWithProducer(producer, cfg.Topic, metrics, log), nil
}

// NewPublisherWithProducer wraps an existing producer.
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, metrics *ProducerMetrics, log zerolog.Logger) *Publisher {
	return &Publisher{producer: producer, topic: topic, metrics: metrics, log: log}
}

// Publish sends event keyed by its reference, so all events for one
// settlement land on one partition in order.
func (p *Publisher) Publish(ctx context.Context, event domain.LedgerEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal ledger event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Reference),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_id"), Value: []byte(event.ID.String())},
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	}

	start := time.Now()
	partition, offset, err := p.producer.SendMessage(msg)
	p.metrics.observe(p.topic, err, time.Since(start))
	if err != nil {
		return fmt.Errorf("kafka publish %s: %w", event.Type, err)
	}

	p.log.Debug().
		Str("event_type", event.Type).
		Str("reference", event.Reference).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Ledger event published")
	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}

// NoopPublisher drops events. It is used when no brokers are configured.
type NoopPublisher struct {
	log zerolog.Logger
}

// NewNoopPublisher creates a publisher that only logs at debug level.
func NewNoopPublisher(log zerolog.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

// Publish discards event.
func (p *NoopPublisher) Publish(_ context.Context, event domain.LedgerEvent) error {
	p.log.Debug().Str("event_type", event.Type).Str("reference", event.Reference).Msg("Ledger event not published (kafka disabled)")
	return nil
}

// Close is a no-op.
func (p *NoopPublisher) Close() error { return nil }
