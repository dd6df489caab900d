package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const alertQueueKey = "alert_webhook_events"

// AlertEvent is the payload forwarded to the configured webhook when the
// simulation creates a new alert.
type AlertEvent struct {
	AlertID          uuid.UUID `json:"alert_id"`
	ForestName       string    `json:"forest_name"`
	ForestLocationID string    `json:"forest_location_id"`
	ImageLocation    string    `json:"image_location"`
	DetectionStatus  string    `json:"detection_status"`
	Timestamp        time.Time `json:"timestamp"`
}

// AlertPublisher enqueues alert events for asynchronous delivery.
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher queues alert events through a Redis list.
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{redisClient: client}
}

// Publish pushes one alert event onto the delivery queue.
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
