package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"giya-service/internal/app/models"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPublisher struct {
	mock.Mock
	seq uint64
}

func (m *MockPublisher) GetNextPublishSeqNo() uint64 {
	return m.seq
}

func (m *MockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, msg)
	return args.Error(0)
}

func TestService_Publish(t *testing.T) {
	event := &models.NotificationEvent{
		Event:      models.EventAppointmentBooked,
		ActorID:    3,
		TargetID:   9,
		OccurredAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("persistent json message on the queue", func(t *testing.T) {
		pub := &MockPublisher{seq: 1}
		confirms := make(chan amqp.Confirmation, 1)
		confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}
		svc := &Service{ch: pub, log: zap.NewNop(), queueName: "giya_notifications", confirms: confirms}

		pub.On("PublishWithContext", mock.Anything, "", "giya_notifications", mock.MatchedBy(func(msg amqp.Publishing) bool {
			var decoded models.NotificationEvent
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return msg.DeliveryMode == amqp.Persistent && decoded.Event == models.EventAppointmentBooked && decoded.TargetID == 9
		})).Return(nil)

		require.NoError(t, svc.Publish(context.Background(), event))
		pub.AssertExpectations(t)
	})

	t.Run("nack is an error", func(t *testing.T) {
		pub := &MockPublisher{seq: 1}
		confirms := make(chan amqp.Confirmation, 1)
		confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: false}
		svc := &Service{ch: pub, log: zap.NewNop(), queueName: "q", confirms: confirms}
		pub.On("PublishWithContext", mock.Anything, "", "q", mock.Anything).Return(nil)

		assert.Error(t, svc.Publish(context.Background(), event))
	})

	t.Run("a late confirmation of an earlier publish is skipped", func(t *testing.T) {
		pub := &MockPublisher{seq: 2}
		confirms := make(chan amqp.Confirmation, 2)
		confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}
		confirms <- amqp.Confirmation{DeliveryTag: 2, Ack: false}
		svc := &Service{ch: pub, log: zap.NewNop(), queueName: "q", confirms: confirms}
		pub.On("PublishWithContext", mock.Anything, "", "q", mock.Anything).Return(nil)

		assert.Error(t, svc.Publish(context.Background(), event))
		assert.Empty(t, confirms)
	})

	t.Run("waiting for a confirmation stops at the deadline", func(t *testing.T) {
		pub := &MockPublisher{seq: 1}
		svc := &Service{ch: pub, log: zap.NewNop(), queueName: "q", confirms: make(chan amqp.Confirmation, 1)}
		pub.On("PublishWithContext", mock.Anything, "", "q", mock.Anything).Return(nil)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, svc.Publish(ctx, event), context.DeadlineExceeded)

		// the timed out publish is confirmed late; the next one must not take it
		svc.confirms <- amqp.Confirmation{DeliveryTag: 1, Ack: true}
		pub.seq = 2
		go func() {
			time.Sleep(10 * time.Millisecond)
			svc.confirms <- amqp.Confirmation{DeliveryTag: 2, Ack: true}
		}()
		require.NoError(t, svc.Publish(context.Background(), event))
	})

	t.Run("broker error is wrapped", func(t *testing.T) {
		pub := new(MockPublisher)
		svc := &Service{ch: pub, log: zap.NewNop(), queueName: "q"}
		pub.On("PublishWithContext", mock.Anything, "", "q", mock.Anything).Return(errors.New("closed"))

		err := svc.Publish(context.Background(), event)
		assert.ErrorContains(t, err, "closed")
	})
}
