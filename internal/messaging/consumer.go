package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const consumerRestartDelay = 2 * time.Second

// ImageTaskConsumer feeds queued image tasks to an ImageTaskHandler.
// Every delivery is acked, successful or not: a failed illustration is
// simply left empty.
type ImageTaskConsumer struct {
	conn        *amqp.Connection
	queueName   string
	consumerTag string
	prefetch    int
	handler     interfaces.ImageTaskHandler
	logger      *zap.Logger
}

func NewImageTaskConsumer(
	conn *amqp.Connection,
	queueName, consumerTag string,
	prefetch int,
	handler interfaces.ImageTaskHandler,
	logger *zap.Logger,
) *ImageTaskConsumer {
	if prefetch <= 0 {
		prefetch = 1
	}
	return &ImageTaskConsumer{
		conn:        conn,
		queueName:   queueName,
		consumerTag: consumerTag,
		prefetch:    prefetch,
		handler:     handler,
		logger:      logger.Named("ImageTaskConsumer"),
	}
}

// Run consumes until ctx is done or the connection closes. A closed channel
// on a live connection is reopened.
func (c *ImageTaskConsumer) Run(ctx context.Context) error {
	for {
		err := c.consume(ctx)
		if ctx.Err() != nil {
			c.logger.Info("Consumer stopped")
			return nil
		}
		if c.conn.IsClosed() {
			return fmt.Errorf("rabbitmq connection closed: %w", err)
		}
		c.logger.Warn("Consumer interrupted, restarting", zap.Error(err))
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(consumerRestartDelay):
		}
	}
}

func (c *ImageTaskConsumer) consume(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	q, err := declareTaskQueue(ch, c.queueName)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", c.queueName, err)
	}
	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}
	msgs, err := ch.Consume(q.Name, c.consumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}
	c.logger.Info("Consumer started", zap.String("queue", q.Name), zap.Int("pending", q.Messages))

	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.HandleDelivery(ctx, msg)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// HandleDelivery decodes one message, runs the handler and acks.
func (c *ImageTaskConsumer) HandleDelivery(ctx context.Context, msg amqp.Delivery) {
	logFields := []zap.Field{zap.Uint64("deliveryTag", msg.DeliveryTag), zap.String("correlationID", msg.CorrelationId)}
	defer func() {
		if err := msg.Ack(false); err != nil {
			c.logger.Error("Failed to ack message", append(logFields, zap.Error(err))...)
		}
	}()

	var task models.ImageTask
	if err := json.Unmarshal(msg.Body, &task); err != nil {
		c.logger.Error("Dropping undecodable image task", append(logFields, zap.Error(err))...)
		return
	}
	if err := c.handler.HandleImageTask(ctx, task); err != nil {
		c.logger.Warn("Image task failed", append(logFields,
			zap.String("taskID", task.TaskID), zap.Stringer("gameID", task.GameID), zap.Error(err))...)
	}
}
