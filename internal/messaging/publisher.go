package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var errPublisherClosed = errors.New("publisher channel is closed")

// ImageTaskPublisher publishes image tasks to a RabbitMQ queue.
type ImageTaskPublisher struct {
	mu        sync.Mutex
	ch        *amqp.Channel
	queueName string
	logger    *zap.Logger
}

var _ interfaces.ImageTaskPublisher = (*ImageTaskPublisher)(nil)

// NewImageTaskPublisher opens a channel on conn and declares queueName.
func NewImageTaskPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (*ImageTaskPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("image task publisher: failed to open channel: %w", err)
	}
	if _, err := declareTaskQueue(ch, queueName); err != nil {
		ch.Close()
		return nil, fmt.Errorf("image task publisher: failed to declare queue '%s': %w", queueName, err)
	}
	log := logger.Named("ImageTaskPublisher")
	log.Info("Image task queue declared", zap.String("queue", queueName))
	return &ImageTaskPublisher{ch: ch, queueName: queueName, logger: log}, nil
}

func (p *ImageTaskPublisher) PublishImageTask(ctx context.Context, task models.ImageTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal image task %s: %w", task.TaskID, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return errPublisherClosed
	}
	err = p.ch.PublishWithContext(ctx,
		"",          // default exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: task.TaskID,
			DeliveryMode:  amqp.Persistent,
			Body:          body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish image task %s: %w", task.TaskID, err)
	}
	p.logger.Debug("Image task published",
		zap.String("taskID", task.TaskID), zap.String("subject", string(task.Subject)), zap.Stringer("subjectID", task.SubjectID))
	return nil
}

// Close closes the publisher channel. Further publishes fail.
func (p *ImageTaskPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return nil
	}
	err := p.ch.Close()
	p.ch = nil
	return err
}
