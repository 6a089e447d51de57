package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

const channelPrefix = "demo:notifications:"

// Publisher fans notifications out over Redis pub/sub so other processes can
// follow a session. Channel format: demo:notifications:<session_id>
type Publisher struct {
	client *redis.Client
}

// NewPublisher creates a Publisher wrapping the given Redis client.
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// Deliver publishes n as JSON on the session channel.
func (p *Publisher) Deliver(ctx context.Context, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	if err := p.client.Publish(ctx, Channel(n.SessionID), payload).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Channel returns the pub/sub channel of a session.
func Channel(sessionID string) string {
	return channelPrefix + sessionID
}
