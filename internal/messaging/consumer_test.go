package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gameforge/internal/messaging"
	"gameforge/internal/mocks"
	"gameforge/internal/models"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingAcker counts acknowledgements of a delivery.
type recordingAcker struct {
	acks, nacks, rejects int
}

func (a *recordingAcker) Ack(tag uint64, multiple bool) error { a.acks++; return nil }

func (a *recordingAcker) Nack(tag uint64, multiple, requeue bool) error { a.nacks++; return nil }

func (a *recordingAcker) Reject(tag uint64, requeue bool) error { a.rejects++; return nil }

func delivery(t *testing.T, acker amqp.Acknowledger, v interface{}) amqp.Delivery {
	t.Helper()
	body, ok := v.([]byte)
	if !ok {
		var err error
		body, err = json.Marshal(v)
		require.NoError(t, err)
	}
	return amqp.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: body}
}

func TestHandleDelivery(t *testing.T) {
	task := models.ImageTask{
		TaskID:    uuid.NewString(),
		OwnerID:   uuid.New(),
		GameID:    uuid.New(),
		Subject:   models.ImageSubjectCharacter,
		SubjectID: uuid.New(),
		Name:      "Mara",
		Prompt:    "Portrait of Mara",
	}

	t.Run("success acks", func(t *testing.T) {
		handler := mocks.NewMockImageTaskHandler(t)
		handler.On("HandleImageTask", mock.Anything, task).Return(nil).Once()
		consumer := messaging.NewImageTaskConsumer(nil, "images", "test", 1, handler, zap.NewNop())

		acker := &recordingAcker{}
		consumer.HandleDelivery(context.Background(), delivery(t, acker, task))
		assert.Equal(t, 1, acker.acks)
		assert.Zero(t, acker.nacks)
	})

	t.Run("handler failure still acks", func(t *testing.T) {
		handler := mocks.NewMockImageTaskHandler(t)
		handler.On("HandleImageTask", mock.Anything, task).Return(errors.New("quota")).Once()
		consumer := messaging.NewImageTaskConsumer(nil, "images", "test", 1, handler, zap.NewNop())

		acker := &recordingAcker{}
		consumer.HandleDelivery(context.Background(), delivery(t, acker, task))
		assert.Equal(t, 1, acker.acks)
		assert.Zero(t, acker.nacks+acker.rejects)
	})

	t.Run("garbage is dropped", func(t *testing.T) {
		handler := mocks.NewMockImageTaskHandler(t)
		consumer := messaging.NewImageTaskConsumer(nil, "images", "test", 1, handler, zap.NewNop())

		acker := &recordingAcker{}
		consumer.HandleDelivery(context.Background(), delivery(t, acker, []byte("not json")))
		assert.Equal(t, 1, acker.acks)
		handler.AssertNotCalled(t, "HandleImageTask", mock.Anything, mock.Anything)
	})
}
