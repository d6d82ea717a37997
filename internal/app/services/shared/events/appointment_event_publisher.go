package events

import (
	"context"
	"doctor-appointment-service/internal/app/contracts"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/constvars"
	"doctor-appointment-service/internal/pkg/exceptions"
	"doctor-appointment-service/internal/pkg/utils"
	"fmt"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishChannel is the part of *amqp.Channel the publisher needs.
type publishChannel interface {
	PublishWithDeferredConfirm(ctx context.Context, queue string, msg amqp.Publishing) (deliveryConfirmation, error)
	Close() error
}

// deliveryConfirmation resolves to the broker ack of exactly one publishing.
type deliveryConfirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type amqpPublishChannel struct {
	ch *amqp.Channel
}

func (c *amqpPublishChannel) PublishWithDeferredConfirm(ctx context.Context, queue string, msg amqp.Publishing) (deliveryConfirmation, error) {
	confirmation, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", queue, false, false, msg)
	if err != nil {
		return nil, err
	}
	return confirmation, nil
}

func (c *amqpPublishChannel) Close() error {
	return c.ch.Close()
}

type rabbitMQPublisher struct {
	ch        publishChannel
	log       *zap.Logger
	queueName string
}

// NewRabbitMQPublisher declares a durable queue and publishes with confirms.
func NewRabbitMQPublisher(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.AppointmentEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return newRabbitMQPublisher(&amqpPublishChannel{ch: ch}, log, queueName), nil
}

func newRabbitMQPublisher(ch publishChannel, log *zap.Logger, queueName string) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event models.AppointmentEvent) error {
	requestID := utils.GetRequestID(ctx)
	p.log.Info("rabbitMQPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	confirmation, err := p.ch.PublishWithDeferredConfirm(ctx, p.queueName, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	// an abandoned confirmation is resolved by the library, not by the next publish
	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queueName)
	}

	p.log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queueName),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.ch.Close()
}

type noopPublisher struct {
	log *zap.Logger
}

// NewNoopPublisher is used when RabbitMQ is disabled.
func NewNoopPublisher(log *zap.Logger) contracts.AppointmentEventPublisher {
	return &noopPublisher{log: log}
}

func (p *noopPublisher) Publish(ctx context.Context, event models.AppointmentEvent) error {
	p.log.Debug("noopPublisher.Publish dropping event",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
