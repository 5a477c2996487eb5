package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// EventMarkerStore implements ports.ProcessedEventStore with SET NX markers.
// Markers are an optimisation for webhook redeliveries; the database status
// transitions remain the source of truth.
type EventMarkerStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewEventMarkerStore creates a Redis-backed processed-event store.
func NewEventMarkerStore(client goredis.UniversalClient) *EventMarkerStore {
	return &EventMarkerStore{
		client: client,
		prefix: "webhook:processed:",
	}
}

// IsProcessed reports whether key has been marked.
func (s *EventMarkerStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis marker exists: %w", err)
	}
	return n > 0, nil
}

// MarkProcessed sets the marker if absent. It returns false when another
// delivery already marked the key.
func (s *EventMarkerStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	err := s.client.SetArgs(ctx, s.prefix+key, time.Now().UTC().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Err()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis marker set: %w", err)
	}
	return true, nil
}
