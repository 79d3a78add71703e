package messaging

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	maxConnectAttempts = 5
	connectRetryDelay  = 5 * time.Second
)

// Dial connects to RabbitMQ, retrying a few times while the broker starts up.
func Dial(ctx context.Context, url string, logger *zap.Logger) (*amqp.Connection, error) {
	log := logger.Named("RabbitMQ")
	var lastErr error
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		conn, err := amqp.Dial(url)
		if err == nil {
			log.Info("RabbitMQ connected", zap.Int("attempt", attempt))
			return conn, nil
		}
		lastErr = err
		log.Warn("Failed to connect to RabbitMQ", zap.Int("attempt", attempt), zap.Error(err))
		if attempt == maxConnectAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("rabbitmq connection aborted: %w", ctx.Err())
		case <-time.After(connectRetryDelay):
		}
	}
	return nil, fmt.Errorf("failed to connect to rabbitmq after %d attempts: %w", maxConnectAttempts, lastErr)
}

// declareTaskQueue declares the durable image task queue. Publisher and
// consumer must agree on its arguments.
func declareTaskQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
}
