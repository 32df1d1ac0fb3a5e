package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const channelPrefix = "brandkit:events:" // brandkit:events:{user_id}

const (
	TypeKitGenerated = "kit.generated"
	TypeKitFailed    = "kit.failed"
)

// Event is published for every pipeline outcome after a project exists.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	UserID    string    `json:"user_id"`
	ProjectID string    `json:"project_id"`
	KitID     string    `json:"kit_id,omitempty"`
	BrandName string    `json:"brand_name"`
	Profile   string    `json:"profile"`
	Category  string    `json:"category,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher delivers events. Implementations must not block the pipeline on failure.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}

// RedisPublisher publishes events on a per-user Redis Pub/Sub channel.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, Channel(ev.UserID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Channel returns the Pub/Sub channel for a user's events.
func Channel(userID string) string {
	return channelPrefix + userID
}

// Noop drops every event. It is used when Redis is not configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
