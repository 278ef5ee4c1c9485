package notifier

import (
	"context"
	"fmt"
	"giya-service/internal/app/contracts"
	"giya-service/internal/app/models"
	"giya-service/internal/pkg/constvars"
	"giya-service/internal/pkg/exceptions"
	"giya-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const notificationPublishTimeout = 5 * time.Second

// publisher is the part of *amqp.Channel the service needs.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	GetNextPublishSeqNo() uint64
}

// Service publishes notification events to a durable queue and waits for
// the broker to confirm each one.
type Service struct {
	ch        publisher
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewService opens a channel, declares the queue and enables publisher
// confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.Notifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *Service) Publish(ctx context.Context, event *models.NotificationEvent) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("NotificationQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.Event,
		Timestamp:    event.OccurredAt,
	}

	deliveryTag := s.ch.GetNextPublishSeqNo()
	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	if s.confirms == nil {
		return nil
	}
	if err := s.awaitConfirm(ctx, deliveryTag); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	s.log.Info("NotificationQueue.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.queueName),
	)
	return nil
}

// awaitConfirm waits for the confirmation of deliveryTag. Confirmations of
// earlier publishes that gave up waiting are skipped.
func (s *Service) awaitConfirm(ctx context.Context, deliveryTag uint64) error {
	for {
		select {
		case confirmed, ok := <-s.confirms:
			if !ok {
				return fmt.Errorf("confirmation channel closed")
			}
			if confirmed.DeliveryTag < deliveryTag {
				continue
			}
			if confirmed.DeliveryTag > deliveryTag || !confirmed.Ack {
				return fmt.Errorf("message %d not confirmed", deliveryTag)
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// PublishAsync publishes in the background with its own deadline. A failed
// publish is logged and never reaches the caller.
func PublishAsync(ctx context.Context, notifier contracts.Notifier, log *zap.Logger, event *models.NotificationEvent) {
	if notifier == nil {
		return
	}
	requestID := utils.GetRequestID(ctx)
	go func() {
		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationPublishTimeout)
		defer cancel()
		if err := notifier.Publish(publishCtx, event); err != nil {
			log.Warn("notification publish failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEventKey, event.Event),
				zap.Error(err),
			)
		}
	}()
}
